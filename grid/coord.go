// Package grid provides the 2D integer coordinate and direction types shared
// by the puzzle solvers.  Y grows downward: Up decreases Y.
package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Coord is a position on the grid.
type Coord struct {
	X, Y int64
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Add returns c + o, component-wise.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns c - o, component-wise.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int64 {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Distance returns the Euclidean distance between c and o.
func (c Coord) Distance(o Coord) float64 {
	d := c.Sub(o)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}

// UnitDifference returns the sign of c - o in each component, i.e. the
// single step (possibly diagonal) that moves o towards c.
func (c Coord) UnitDifference(o Coord) Coord {
	return Coord{sign(c.X - o.X), sign(c.Y - o.Y)}
}

// Move returns c moved n steps in direction d.
func (c Coord) Move(d Direction, n int64) Coord {
	switch d {
	case Up:
		return Coord{c.X, c.Y - n}
	case Down:
		return Coord{c.X, c.Y + n}
	case Left:
		return Coord{c.X - n, c.Y}
	case Right:
		return Coord{c.X + n, c.Y}
	}
	panic(fmt.Sprintf("grid.Coord.Move: bad direction %d", d))
}

// Neighbors returns the eight surrounding coordinates, clockwise starting
// from the one directly above c.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X - 1, c.Y - 1},
	}
}

// Compare orders coordinates row-major: by Y, then X.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Y != o.Y:
		return int(sign(c.Y - o.Y))
	default:
		return int(sign(c.X - o.X))
	}
}

// String renders c as "x,y".
func (c Coord) String() string {
	return strconv.FormatInt(c.X, 10) + "," + strconv.FormatInt(c.Y, 10)
}

// ParseCoord parses "x,y".  Whitespace around either number is ignored.
func ParseCoord(s string) (Coord, error) {
	commaPos := strings.IndexByte(s, ',')
	if commaPos == -1 {
		return Coord{}, errors.E(errors.Invalid, fmt.Sprintf("grid.ParseCoord: missing second piece of coordinate: %q", s))
	}
	x, err := strconv.ParseInt(strings.TrimSpace(s[:commaPos]), 10, 64)
	if err != nil {
		return Coord{}, errors.E(errors.Invalid, err, fmt.Sprintf("grid.ParseCoord: invalid first piece of coordinate: %q", s))
	}
	y, err := strconv.ParseInt(strings.TrimSpace(s[commaPos+1:]), 10, 64)
	if err != nil {
		return Coord{}, errors.E(errors.Invalid, err, fmt.Sprintf("grid.ParseCoord: invalid second piece of coordinate: %q", s))
	}
	return Coord{x, y}, nil
}
