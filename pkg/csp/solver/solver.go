// Package solver provides the solving strategies for finite-domain
// constraint problems: systematic backtracking with pluggable
// heuristics and inference, min-conflicts local search, the linear-time
// tree solver, and a complete SAT-backed solver.
//
// All solvers run synchronously on the caller's goroutine and report
// progress through registered csp.Listeners, invoked in registration
// order once per step. Cancellation is cooperative via the
// context.Context passed to Solve, checked before each step.
package solver

import (
	"context"
	"fmt"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// Solver is implemented by every solving strategy in this package.
//
// Solve returns a complete satisfying assignment, or an error
// describing why none was produced: csp.ErrUnsatisfiable when the
// absence of a solution was proven, csp.ErrBudgetExceeded when bounded
// search ran out of steps, csp.ErrIncomplete when the context was
// cancelled, or a *csp.StructureError when the problem violates a
// solver precondition.
type Solver interface {
	Solve(ctx context.Context, problem *csp.CSP) (*csp.Assignment, error)
	AddListener(l csp.Listener)
}

// emitter holds the registered listeners of a solver and fires events
// to them in registration order.
type emitter struct {
	listeners []csp.Listener
}

func (e *emitter) AddListener(l csp.Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *emitter) fire(problem *csp.CSP, v *csp.Variable, a *csp.Assignment) {
	for _, l := range e.listeners {
		l.StateChanged(problem, v, a)
	}
}

// cancelled wraps a context error in csp.ErrIncomplete, or returns nil
// when the context is still live.
func cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s", csp.ErrIncomplete, err)
	}
	return nil
}

// unassigned returns the problem variables not bound by a, in
// declaration order.
func unassigned(problem *csp.CSP, a *csp.Assignment) []csp.Variable {
	var vars []csp.Variable
	for _, v := range problem.Variables() {
		if !a.Has(v) {
			vars = append(vars, v)
		}
	}
	return vars
}
