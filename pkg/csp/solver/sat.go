package solver

import (
	"context"
	"fmt"

	"github.com/go-air/gini"

	"github.com/fdsolve/fdsolve/internal/sat"
	"github.com/fdsolve/fdsolve/pkg/csp"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// SAT is a complete solver that encodes the problem into CNF and hands
// it to the gini SAT engine. It emits no search progress of its own —
// the engine's internals are opaque — only one event per decoded
// assignment once a model is found, and a final solution event.
type SAT struct {
	emitter
}

// NewSAT returns a SAT-backed solver.
func NewSAT() *SAT {
	return &SAT{}
}

// Solve encodes problem, solves the formula, and decodes the model into
// an assignment. Unsatisfiable formulas are reported as
// csp.ErrUnsatisfiable.
func (s *SAT) Solve(ctx context.Context, problem *csp.CSP) (*csp.Assignment, error) {
	if err := cancelled(ctx); err != nil {
		return nil, err
	}
	m, err := sat.NewLitMapping(problem)
	if err != nil {
		return nil, err
	}

	g := gini.New()
	m.AddConstraints(g)
	m.AssumeConstraints(g)
	if g.Solve() != satisfiable {
		return nil, csp.ErrUnsatisfiable
	}

	a := csp.NewAssignment()
	for _, v := range problem.Variables() {
		v := v
		value, ok := m.ValueOf(g, v)
		if !ok {
			return nil, fmt.Errorf("no value decoded for variable %s", v)
		}
		a.Assign(v, value)
		s.fire(problem, &v, a)
	}
	s.fire(problem, nil, a)
	return a, nil
}
