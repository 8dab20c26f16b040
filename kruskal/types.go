// Package kruskal defines sentinel errors for spanning-forest reduction.
package kruskal

import "errors"

// ErrRealmNil indicates that a nil *core.Realm was passed.
var ErrRealmNil = errors.New("kruskal: realm is nil")
