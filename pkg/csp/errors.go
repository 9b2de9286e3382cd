package csp

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned by a solver that has proven no solution
// exists: backtracking exhausted the search space, or a consistency
// pass emptied a domain. It is a verdict, not an internal failure.
var ErrUnsatisfiable = errors.New("no solution exists")

// ErrBudgetExceeded is returned by bounded local search when the step
// budget ran out before a solution was found. Unlike ErrUnsatisfiable
// it proves nothing; the caller may retry with a larger budget or
// switch solvers.
var ErrBudgetExceeded = errors.New("step budget exceeded before a solution was found")

// ErrIncomplete is returned when solving was cancelled before a
// solution could be found.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// DuplicateValueError reports a value that appears more than once in a
// domain.
type DuplicateValueError string

func (e DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %q in domain", string(e))
}

// DuplicateVariableError reports a variable that appears more than once
// in a problem's variable list.
type DuplicateVariableError string

func (e DuplicateVariableError) Error() string {
	return fmt.Sprintf("duplicate variable %q in problem", string(e))
}

// UnknownVariableError reports a reference to a variable that is not a
// member of the problem's variable list.
type UnknownVariableError string

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("variable %q is not part of the problem", string(e))
}

// StructureError reports a solver precondition violation: the problem's
// constraint graph does not have the shape the solver requires (for
// example, the tree solver applied to a cyclic graph). It is distinct
// from ErrUnsatisfiable because it indicates a solver/problem mismatch
// rather than an absence of solutions.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("constraint graph is not tree-structured: %s", e.Reason)
}
