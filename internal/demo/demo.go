// Package demo prints the four conversions side by side: first the
// conventional Go form of each call, then the same call wrapped in a Result,
// an Option or an IO.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/charmingruby/fgp-interop/internal/config"
	"github.com/charmingruby/fgp-interop/parse"
	"github.com/charmingruby/fgp-interop/random"
	"github.com/charmingruby/fgp-interop/seq"
	"github.com/charmingruby/fgp-interop/task"
)

// Name identifies one demo.
type Name string

const (
	Exceptions       Name = "exceptions"
	RandomValues     Name = "random"
	Sentinel         Name = "sentinel"
	UndefinedAndNull Name = "nullable"
)

// Names lists the demos in the order All runs them.
var Names = []Name{Exceptions, RandomValues, Sentinel, UndefinedAndNull}

// printer remembers the first write error so the demos can print freely. It
// stops writing once ctx is done and reports ctx.Err() instead.
type printer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newPrinter(ctx context.Context, w io.Writer) *printer {
	return &printer{ctx: ctx, w: w}
}

func (p *printer) ok() bool {
	if p.err == nil {
		p.err = p.ctx.Err()
	}
	return p.err == nil
}

func (p *printer) printf(format string, args ...any) {
	if !p.ok() {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// RunExceptions parses every input with parse.JSON, first through the
// (value, error) API and then through parse.Parse.
func RunExceptions(ctx context.Context, w io.Writer, cfg config.ExceptionsConfig) error {
	p := newPrinter(ctx, w)
	for _, in := range cfg.Inputs {
		v, err := parse.JSON.Parse(in)
		if err != nil {
			p.printf("JSON.Parse('%s') failed: %v\n", in, err)
			continue
		}
		p.printf("JSON.Parse('%s') = %v\n", in, v)
	}
	for _, in := range cfg.Inputs {
		p.printf("parse.Parse('%s')(JSON) = %v\n", in, parse.Parse(in)(parse.JSON))
	}
	return p.err
}

// RunRandomValues invokes draw cfg.Draws times, stopping early when ctx is
// done.
func RunRandomValues(ctx context.Context, w io.Writer, cfg config.RandomConfig, draw task.IO[float64]) error {
	p := newPrinter(ctx, w)
	for i := 0; i < cfg.Draws && p.ok(); i++ {
		p.printf("random() #%d = %v\n", i+1, draw())
	}
	return p.err
}

// RunSentinel contrasts seq.IndexOf, which answers -1, with seq.FindIndex.
func RunSentinel(ctx context.Context, w io.Writer, cfg config.SearchConfig) error {
	p := newPrinter(ctx, w)
	for _, target := range cfg.Targets {
		p.printf("IndexOf(%v, is %s) = %d\n", cfg.Names, target, seq.IndexOf(cfg.Names, seq.Equals(target)))
	}
	for _, target := range cfg.Targets {
		p.printf("FindIndex(%v, is %s) = %v\n", cfg.Names, target, seq.FindIndex(cfg.Names, seq.Equals(target)))
	}
	return p.err
}

// RunUndefinedAndNull contrasts seq.FindPtr, which answers nil, with seq.Find.
func RunUndefinedAndNull(ctx context.Context, w io.Writer, cfg config.SearchConfig) error {
	p := newPrinter(ctx, w)
	for _, target := range cfg.Targets {
		p.printf("FindPtr(%v, is %s) = %s\n", cfg.Names, target, deref(seq.FindPtr(cfg.Names, seq.Equals(target))))
	}
	for _, target := range cfg.Targets {
		p.printf("Find(%v, is %s) = %v\n", cfg.Names, target, seq.Find(cfg.Names, seq.Equals(target)))
	}
	return p.err
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

// Draw picks the random source configured in cfg.
func Draw(cfg config.RandomConfig) task.IO[float64] {
	if cfg.Seed != nil {
		return random.FromSeed(*cfg.Seed)
	}
	return random.Float64()
}

// Run executes the demo called name.
func Run(ctx context.Context, name Name, w io.Writer, s config.Scenarios) error {
	switch name {
	case Exceptions:
		return RunExceptions(ctx, w, s.Exceptions)
	case RandomValues:
		return RunRandomValues(ctx, w, s.Random, Draw(s.Random))
	case Sentinel:
		return RunSentinel(ctx, w, s.Search)
	case UndefinedAndNull:
		return RunUndefinedAndNull(ctx, w, s.Search)
	default:
		return fmt.Errorf("unknown demo %q", name)
	}
}

// All runs every demo in Names order and stops at the first failure.
func All(ctx context.Context, w io.Writer, s config.Scenarios) error {
	for _, name := range Names {
		if err := Run(ctx, name, w, s); err != nil {
			return fmt.Errorf("demo %s: %w", name, err)
		}
	}
	return nil
}
