// Package operation implements the four integer arithmetic operations used
// by expression-tree puzzles, including solving for an unknown operand.
package operation

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Op is an arithmetic operation.
type Op uint8

const (
	// Add is lhs + rhs.
	Add Op = iota
	// Subtract is lhs - rhs.
	Subtract
	// Multiply is lhs * rhs.
	Multiply
	// Divide is lhs / rhs, truncated.
	Divide
)

// Parse accepts "+", "-", "*" or "/".
func Parse(s string) (Op, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*":
		return Multiply, nil
	case "/":
		return Divide, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("operation.Parse: invalid operation %q", s))
}

// String renders the operator symbol.
func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

func divide(x, y int64) (int64, error) {
	if y == 0 {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("operation: %d / 0", x))
	}
	return x / y, nil
}

// Perform computes lhs o rhs.
func (o Op) Perform(lhs, rhs int64) (int64, error) {
	switch o {
	case Add:
		return lhs + rhs, nil
	case Subtract:
		return lhs - rhs, nil
	case Multiply:
		return lhs * rhs, nil
	case Divide:
		return divide(lhs, rhs)
	}
	panic(fmt.Sprintf("operation.Perform: bad op %d", o))
}

// SolveLHS returns the x for which x o rhs == result.
func (o Op) SolveLHS(result, rhs int64) (int64, error) {
	switch o {
	case Add:
		return result - rhs, nil
	case Subtract:
		return result + rhs, nil
	case Multiply:
		return divide(result, rhs)
	case Divide:
		return result * rhs, nil
	}
	panic(fmt.Sprintf("operation.SolveLHS: bad op %d", o))
}

// SolveRHS returns the x for which lhs o x == result.
func (o Op) SolveRHS(result, lhs int64) (int64, error) {
	switch o {
	case Add:
		return result - lhs, nil
	case Subtract:
		return lhs - result, nil
	case Multiply:
		return divide(result, lhs)
	case Divide:
		return divide(lhs, result)
	}
	panic(fmt.Sprintf("operation.SolveRHS: bad op %d", o))
}
