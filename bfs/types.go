// Package bfs provides tunable options and error definitions
// for breadth-first search over the road network of a core.Realm.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/realm/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrRealmNil is returned if a nil realm pointer is passed.
	ErrRealmNil = errors.New("bfs: realm is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a town is dequeued. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(id core.TownID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many roads.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.TownID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id core.TownID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to towns at most d roads away.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a full Walk:
//   - Order: towns in visit sequence.
//   - Depth: number of roads from the start to each reached town.
type Result struct {
	Order []core.TownID
	Depth map[core.TownID]int
}
