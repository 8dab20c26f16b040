// Package geo holds the coordinate and distance types shared by the realm
// packages, plus the floored Euclidean distance used everywhere distances are
// compared.
//
// Flooring rule:
//
//	Between(a, b) = ⌊ √((a.X-b.X)² + (a.Y-b.Y)²) ⌋
//
// The floor is taken after the square root, never before. Two different
// real distances may floor to the same Distance, so every ordering query and
// every road length in the module goes through Between to stay consistent.
package geo
