package grid

import (
	"fmt"
	"unicode/utf8"

	"github.com/grailbio/base/errors"
)

// Direction is one of the four axis-aligned moves on the grid.
type Direction uint8

const (
	// Up is towards smaller Y.
	Up Direction = iota
	// Down is towards larger Y.
	Down
	// Left is towards smaller X.
	Left
	// Right is towards larger X.
	Right
)

var directions = []Direction{Up, Down, Left, Right}

// Directions lists every Direction.  The result must not be modified.
func Directions() []Direction { return directions }

// String renders d as one of ^ v < >.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirectionRune accepts U, D, L, R or ^, v, <, >.
func ParseDirectionRune(c rune) (Direction, error) {
	switch c {
	case 'U', '^':
		return Up, nil
	case 'D', 'v':
		return Down, nil
	case 'L', '<':
		return Left, nil
	case 'R', '>':
		return Right, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("grid: invalid direction %q", c))
}

// ParseDirection parses the first rune of s; see ParseDirectionRune.
func ParseDirection(s string) (Direction, error) {
	c, _ := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("grid: invalid direction %q", s))
	}
	return ParseDirectionRune(c)
}
