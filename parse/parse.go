// Package parse turns parsers that report failure out of band into functions
// returning a result.Result.
//
// Example:
//
//	fmt.Println(parse.Parse(`{"a":"a"}`)(parse.JSON)) // Ok(map[a:a])
//	fmt.Println(parse.Parse("")(parse.JSON))          // Err(...)
package parse

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/charmingruby/fgp-interop/result"
)

// Parser is the capability to decode a textual encoding into a value. An
// implementation may signal failure by returning an error or by panicking;
// Parse handles both.
type Parser interface {
	Parse(s string) (any, error)
}

// Func adapts a plain function to Parser.
type Func func(s string) (any, error)

// Parse implements Parser.
func (f Func) Parse(s string) (any, error) {
	return f(s)
}

// JSON decodes JSON text into the generic shapes of encoding/json: maps,
// slices, strings, float64, bool and nil.
var JSON Parser = Func(decodeJSON)

func decodeJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Parse returns a function that runs the given parser on s. Every failure of
// the parser, returned or panicked, comes back as Err holding the reason's
// text; the returned function never panics.
func Parse(s string) func(Parser) result.Result[any] {
	return func(p Parser) result.Result[any] {
		if p == nil {
			return result.Err[any](errors.New("parse: nil parser"))
		}
		return result.TryCatch(func() (any, error) {
			return p.Parse(s)
		}, reasonToError)
	}
}

// reasonToError keeps only the text of the failure so callers see the same
// shape of error whether the parser returned or panicked.
func reasonToError(reason any) error {
	return errors.New(fmt.Sprint(reason))
}
