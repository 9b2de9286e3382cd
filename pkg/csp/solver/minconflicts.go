package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// MinConflicts is the incomplete, anytime local-search solver. It
// builds a greedy initial assignment and then repairs randomly chosen
// conflicted variables, up to a fixed step budget. Suited to large,
// mostly-satisfiable problems; exhausting the budget proves nothing.
type MinConflicts struct {
	emitter
	maxSteps int
	rng      *rand.Rand
}

// MinConflictsOption configures a MinConflicts solver.
type MinConflictsOption func(*MinConflicts)

// WithRand installs r as the solver's random source, so tests can fix a
// seed and obtain deterministic runs.
func WithRand(r *rand.Rand) MinConflictsOption {
	return func(m *MinConflicts) {
		m.rng = r
	}
}

// NewMinConflicts returns a min-conflicts solver with the given step
// budget.
func NewMinConflicts(maxSteps int, opts ...MinConflictsOption) *MinConflicts {
	m := &MinConflicts{
		maxSteps: maxSteps,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Solve runs greedy initialization followed by up to maxSteps repair
// steps. On budget exhaustion it returns csp.ErrBudgetExceeded carrying
// the number of constraints still violated.
func (m *MinConflicts) Solve(ctx context.Context, problem *csp.CSP) (*csp.Assignment, error) {
	a := csp.NewAssignment()
	for _, v := range problem.Variables() {
		v := v
		if err := cancelled(ctx); err != nil {
			return nil, err
		}
		value, ok := m.minConflictValue(problem, a, v)
		if !ok {
			return nil, fmt.Errorf("%w: variable %s has an empty domain", csp.ErrUnsatisfiable, v)
		}
		a.Assign(v, value)
		m.fire(problem, &v, a)
	}

	for step := 0; step < m.maxSteps; step++ {
		if err := cancelled(ctx); err != nil {
			return nil, err
		}
		if a.IsSolution(problem) {
			m.fire(problem, nil, a)
			return a, nil
		}
		conflicted := conflictedVariables(problem, a)
		v := conflicted[m.rng.Intn(len(conflicted))]
		value, _ := m.minConflictValue(problem, a, v)
		a.Assign(v, value)
		m.fire(problem, &v, a)
	}
	if a.IsSolution(problem) {
		m.fire(problem, nil, a)
		return a, nil
	}
	return nil, fmt.Errorf("%w: %d constraints still violated", csp.ErrBudgetExceeded, a.Conflicts(problem.Constraints()))
}

// minConflictValue returns the domain value of v minimizing the number
// of violated constraints involving v, ties broken uniformly at random.
// It reports false when v's domain is empty. Any previous binding of v
// is restored before returning.
func (m *MinConflicts) minConflictValue(problem *csp.CSP, a *csp.Assignment, v csp.Variable) (string, bool) {
	previous, wasAssigned := a.Value(v)
	var best []string
	bestConflicts := -1
	for _, value := range problem.Domain(v).Values() {
		a.Assign(v, value)
		conflicts := a.Conflicts(problem.ConstraintsOf(v))
		switch {
		case bestConflicts < 0 || conflicts < bestConflicts:
			bestConflicts = conflicts
			best = append(best[:0], value)
		case conflicts == bestConflicts:
			best = append(best, value)
		}
	}
	if wasAssigned {
		a.Assign(v, previous)
	} else {
		a.Unassign(v)
	}
	if len(best) == 0 {
		return "", false
	}
	return best[m.rng.Intn(len(best))], true
}

// conflictedVariables returns, in first-seen order, every variable in
// the scope of at least one violated constraint.
func conflictedVariables(problem *csp.CSP, a *csp.Assignment) []csp.Variable {
	seen := make(map[csp.Variable]struct{})
	var vars []csp.Variable
	for _, con := range problem.Constraints() {
		if con.IsSatisfied(a) {
			continue
		}
		for _, v := range con.Scope() {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vars = append(vars, v)
			}
		}
	}
	return vars
}
