package vassal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTenth checks floor division, including negative values.
func TestTenth(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0}, {9, 0}, {10, 1}, {55, 5}, {105, 10},
		{-1, -1}, {-10, -1}, {-11, -2}, {-55, -6},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tenth(c.in), "tenth(%d)", c.in)
	}
}
