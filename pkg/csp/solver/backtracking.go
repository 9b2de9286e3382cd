package solver

import (
	"context"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// Backtracking is the systematic, sound, and complete solver. Built
// bare it performs plain chronological backtracking; options decorate
// the core loop with variable ordering, value ordering, and inference,
// each called at its fixed extension point: variable choice before
// value choice, inference after each tentative assignment.
type Backtracking struct {
	emitter
	variables VariableOrdering
	values    ValueOrdering
	inference Inference
}

// Option configures a Backtracking solver. Re-applying an option
// replaces the strategy in its slot, so applying the same decoration
// twice behaves like applying it once.
type Option func(*Backtracking)

// WithVariableOrdering installs h as the variable selection heuristic.
func WithVariableOrdering(h VariableOrdering) Option {
	return func(b *Backtracking) {
		b.variables = h
	}
}

// WithValueOrdering installs h as the value ordering heuristic.
func WithValueOrdering(h ValueOrdering) Option {
	return func(b *Backtracking) {
		b.values = h
	}
}

// WithInference installs inf to run after each tentative assignment.
func WithInference(inf Inference) Option {
	return func(b *Backtracking) {
		b.inference = inf
	}
}

// WithAllStrategies installs every known strategy at once: MRV with
// degree tie-break, least-constraining-value, and arc consistency.
func WithAllStrategies() Option {
	return func(b *Backtracking) {
		b.variables = MRVDegree()
		b.values = LCV()
		b.inference = AC3()
	}
}

// NewBacktracking returns a backtracking solver decorated with the
// given options.
func NewBacktracking(opts ...Option) *Backtracking {
	b := &Backtracking{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Solve searches for a complete satisfying assignment. It returns
// csp.ErrUnsatisfiable after exhausting the search space, or
// csp.ErrIncomplete if ctx is cancelled mid-search. Domains narrowed by
// inference are restored on every backtrack.
func (b *Backtracking) Solve(ctx context.Context, problem *csp.CSP) (*csp.Assignment, error) {
	result, err := b.backtrack(ctx, problem, csp.NewAssignment())
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, csp.ErrUnsatisfiable
	}
	return result, nil
}

// backtrack extends a by one variable and recurses. It returns
// (nil, nil) when every candidate value failed, signalling the caller
// to retract its own tentative assignment.
func (b *Backtracking) backtrack(ctx context.Context, problem *csp.CSP, a *csp.Assignment) (*csp.Assignment, error) {
	if a.IsComplete(problem.Variables()) {
		b.fire(problem, nil, a)
		return a, nil
	}
	v := b.selectVariable(problem, a)
	for _, value := range b.orderValues(problem, a, v) {
		if err := cancelled(ctx); err != nil {
			return nil, err
		}
		a.Assign(v, value)
		b.fire(problem, &v, a)
		if !a.IsConsistent(problem.ConstraintsOf(v)) {
			a.Unassign(v)
			continue
		}

		var log *Log
		dead := false
		if b.inference != nil {
			log = b.inference.Infer(problem, a, v)
			dead = log.EmptyDomainFound()
			if !dead && !log.Empty() {
				b.fire(problem, nil, nil)
			}
		}
		if !dead {
			result, err := b.backtrack(ctx, problem, a)
			if err != nil {
				if log != nil {
					log.Undo(problem)
				}
				a.Unassign(v)
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		if log != nil {
			log.Undo(problem)
		}
		a.Unassign(v)
	}
	return nil, nil
}

// selectVariable picks the next variable to assign: the first
// unassigned variable in declaration order, or the first survivor of
// the installed variable ordering.
func (b *Backtracking) selectVariable(problem *csp.CSP, a *csp.Assignment) csp.Variable {
	candidates := unassigned(problem, a)
	if b.variables != nil {
		candidates = b.variables(problem, a, candidates)
	}
	return candidates[0]
}

// orderValues returns v's candidate values in try order: domain order,
// or the order produced by the installed value ordering.
func (b *Backtracking) orderValues(problem *csp.CSP, a *csp.Assignment, v csp.Variable) []string {
	if b.values != nil {
		return b.values(problem, a, v)
	}
	return problem.Domain(v).Values()
}
