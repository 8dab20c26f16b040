// Package dfs defines options and sentinel errors for depth-first search
// over the road network of a core.Realm.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrRealmNil is returned when a nil *core.Realm is passed to FindCycle,
	// AnyRoute or HasCycle.
	ErrRealmNil = errors.New("dfs: realm is nil")
)

// Option configures optional behavior of a search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
