// Package astar defines options and sentinel errors for weighted routing
// over the road network of a core.Realm.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/realm/geo"
	"github.com/katalvlaran/realm/traversal"
)

// Sentinel errors returned by the routing functions.
var (
	// ErrRealmNil indicates that a nil *core.Realm was passed.
	ErrRealmNil = errors.New("astar: realm is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("astar: MaxDistance must be non-negative")
)

// Options configures the search.
//
// MaxDistance – routes longer than this are not explored. Must be ≥ 0.
// Default is traversal.Infinity (no cap).
type Options struct {
	MaxDistance geo.Distance

	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance caps the explored route length. Towns whose shortest
// distance would exceed max are treated as unreachable.
// A negative value is reported as ErrBadMaxDistance when the search runs.
func WithMaxDistance(max geo.Distance) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: traversal.Infinity}
}
