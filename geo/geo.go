package geo

import (
	"fmt"
	"math"
	"math/big"
)

// NoValue marks an integer value that is not known.
const NoValue = math.MinInt

// Coord is an integer point on the map.
type Coord struct {
	X int
	Y int
}

// NoCoord is returned where a coordinate was not found.
var NoCoord = Coord{X: NoValue, Y: NoValue}

// MaxCoord bounds the absolute value of a town coordinate. Within it every
// distance, and any route summing fewer than 2^30 of them, fits in a Distance.
const MaxCoord = 1 << 30

// Origin is the (0,0) reference point for distance ordering.
var Origin = Coord{}

// Valid reports whether c is a real coordinate rather than NoCoord.
func (c Coord) Valid() bool { return c != NoCoord }

// InRange reports whether both components lie within ±MaxCoord.
// NoCoord is never in range.
func (c Coord) InRange() bool {
	return c.X >= -MaxCoord && c.X <= MaxCoord && c.Y >= -MaxCoord && c.Y <= MaxCoord
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	if !c.Valid() {
		return "(--,--)"
	}

	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance is a floored, non-negative length in map units.
type Distance int

// NoDistance is returned where a distance is unknown.
const NoDistance = Distance(NoValue)

// MaxDistance is the largest Distance; Between saturates at it.
const MaxDistance = Distance(math.MaxInt)

// exactLimit keeps dx*dx + dy*dy below 2^63 on the integer path.
const exactLimit = 1<<31 - 1

// Between returns the floored Euclidean distance between a and b.
//
// For differences up to exactLimit the squared length is computed in uint64
// and the float square root is corrected by at most one step in either
// direction, so the result is the exact integer floor even when float
// rounding lands just above or below a perfect square. Larger differences
// take an exact math/big path; a result beyond MaxDistance saturates.
// The result is never negative.
func Between(a, b Coord) Distance {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	if dx > exactLimit || dy > exactLimit {
		return betweenBig(a, b)
	}
	sq := dx*dx + dy*dy

	r := uint64(math.Sqrt(float64(sq)))
	for r > 0 && r*r > sq {
		r--
	}
	for (r+1)*(r+1) <= sq {
		r++
	}

	return Distance(r)
}

// absDiff returns |x - y| without overflowing.
func absDiff(x, y int) uint64 {
	if x < y {
		x, y = y, x
	}

	return uint64(x) - uint64(y)
}

func betweenBig(a, b Coord) Distance {
	dx := new(big.Int).Sub(big.NewInt(int64(a.X)), big.NewInt(int64(b.X)))
	dy := new(big.Int).Sub(big.NewInt(int64(a.Y)), big.NewInt(int64(b.Y)))
	sq := new(big.Int).Mul(dx, dx)
	sq.Add(sq, dy.Mul(dy, dy))

	r := sq.Sqrt(sq)
	if !r.IsInt64() || r.Int64() > int64(MaxDistance) {
		return MaxDistance
	}

	return Distance(r.Int64())
}

// FromOrigin returns the floored distance of c from Origin.
func FromOrigin(c Coord) Distance {
	return Between(c, Origin)
}
