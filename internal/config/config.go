// Package config holds the inputs the demos run against. The defaults
// reproduce the classic snippets; a YAML file can replace any section.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/charmingruby/fgp-interop/result"
	"github.com/charmingruby/fgp-interop/seq"
	"github.com/charmingruby/fgp-interop/validated"
)

// MaxDraws bounds Random.Draws.
const MaxDraws = 1000

// Scenarios is the full demo configuration.
type Scenarios struct {
	Exceptions ExceptionsConfig `yaml:"exceptions"`
	Random     RandomConfig     `yaml:"random"`
	Search     SearchConfig     `yaml:"search"`
}

// ExceptionsConfig lists the texts handed to the JSON parser. Invalid JSON is
// welcome here; it exercises the failure path.
type ExceptionsConfig struct {
	Inputs []string `yaml:"inputs"`
}

// RandomConfig controls the random values demo. A nil Seed means the
// process-wide source.
type RandomConfig struct {
	Draws int     `yaml:"draws"`
	Seed  *uint64 `yaml:"seed,omitempty"`
}

// SearchConfig drives both search demos: each target is looked up in Names.
type SearchConfig struct {
	Names   []string `yaml:"names"`
	Targets []string `yaml:"targets"`
}

// Default returns the scenarios of the original snippets.
func Default() Scenarios {
	return Scenarios{
		Exceptions: ExceptionsConfig{
			Inputs: []string{`{"a":"a"}`, ""},
		},
		Random: RandomConfig{Draws: 1},
		Search: SearchConfig{
			Names:   []string{"aaa", "bbb", "ccc"},
			Targets: []string{"aaa", "ddd"},
		},
	}
}

// Load reads path on top of Default. Sections missing from the file keep
// their defaults. An empty path returns Default.
func Load(path string) (Scenarios, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenarios{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data).Unwrap()
}

// Parse decodes YAML on top of Default and validates the outcome.
func Parse(data []byte) result.Result[Scenarios] {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return result.Err[Scenarios](fmt.Errorf("failed to parse config: %w", err))
	}
	return s.Validate()
}

// Validate reports every problem in s at once.
func (s Scenarios) Validate() result.Result[Scenarios] {
	checks := []validated.Validated[error, struct{}]{
		validated.Ensure(len(s.Exceptions.Inputs) > 0, errors.New("exceptions.inputs: at least one input is required")),
		validated.Ensure(s.Random.Draws > 0, fmt.Errorf("random.draws: must be positive, got %d", s.Random.Draws)),
		validated.Ensure(s.Random.Draws <= MaxDraws, fmt.Errorf("random.draws: must be at most %d, got %d", MaxDraws, s.Random.Draws)),
		validated.Ensure(len(s.Search.Names) > 0, errors.New("search.names: at least one name is required")),
		validated.Ensure(len(s.Search.Targets) > 0, errors.New("search.targets: at least one target is required")),
		validated.Ensure(len(seq.Filter(s.Search.Targets, isBlank)) == 0, errors.New("search.targets: targets must not be blank")),
	}
	checked := validated.Map(validated.Sequence(checks), func([]struct{}) Scenarios {
		return s
	})
	return result.MapErr(validated.ToResult(checked), func(err error) error {
		return fmt.Errorf("invalid config: %w", err)
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
