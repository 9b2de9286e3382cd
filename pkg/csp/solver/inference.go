package solver

import (
	"github.com/fdsolve/fdsolve/pkg/csp"
)

// Inference narrows the domains of variables affected by the tentative
// assignment of v. Every change is recorded in the returned Log so the
// backtracking solver can restore the exact pre-step domains, value
// order included, before trying the next candidate.
type Inference interface {
	Infer(problem *csp.CSP, a *csp.Assignment, v csp.Variable) *Log
}

type savedDomain struct {
	v csp.Variable
	d *csp.Domain
}

// Log records the domains replaced by one inference step.
type Log struct {
	saved       []savedDomain
	emptyDomain bool
}

func (l *Log) save(problem *csp.CSP, v csp.Variable, narrowed *csp.Domain) {
	l.saved = append(l.saved, savedDomain{v: v, d: problem.Domain(v)})
	problem.SetDomain(v, narrowed)
	if narrowed.IsEmpty() {
		l.emptyDomain = true
	}
}

// Empty reports whether the step changed no domain.
func (l *Log) Empty() bool {
	return len(l.saved) == 0
}

// EmptyDomainFound reports whether some domain was emptied, meaning the
// tentative assignment cannot lead to a solution.
func (l *Log) EmptyDomainFound() bool {
	return l.emptyDomain
}

// Undo restores every replaced domain, newest first.
func (l *Log) Undo(problem *csp.CSP) {
	for i := len(l.saved) - 1; i >= 0; i-- {
		problem.SetDomain(l.saved[i].v, l.saved[i].d)
	}
	l.saved = nil
	l.emptyDomain = false
}

type forwardChecking struct{}

// ForwardChecking returns the lightweight inference strategy that
// prunes only the domains of unassigned variables directly constrained
// with the just-assigned one.
func ForwardChecking() Inference {
	return forwardChecking{}
}

func (forwardChecking) Infer(problem *csp.CSP, a *csp.Assignment, v csp.Variable) *Log {
	log := &Log{}
	for _, con := range problem.ConstraintsOf(v) {
		neighbor, ok := problem.Neighbor(con, v)
		if !ok || a.Has(neighbor) {
			continue
		}
		domain := problem.Domain(neighbor)
		narrowed := domain.Retain(func(value string) bool {
			a.Assign(neighbor, value)
			satisfied := con.IsSatisfied(a)
			a.Unassign(neighbor)
			return satisfied
		})
		if narrowed.Size() < domain.Size() {
			log.save(problem, neighbor, narrowed)
			if log.EmptyDomainFound() {
				return log
			}
		}
	}
	return log
}

type ac3 struct{}

// AC3 returns the arc-consistency inference strategy. After narrowing
// the assigned variable's domain to its value, it re-examines arcs
// until a fixpoint, so it prunes transitively affected domains and
// detects dead ends earlier than forward checking.
func AC3() Inference {
	return ac3{}
}

// arc pairs the variable to revise with the binary constraint whose
// other end triggered the revision.
type arc struct {
	x   csp.Variable
	con csp.Constraint
}

func (ac3) Infer(problem *csp.CSP, a *csp.Assignment, v csp.Variable) *Log {
	log := &Log{}
	value, ok := a.Value(v)
	if !ok {
		return log
	}
	if d := problem.Domain(v); d.Size() > 1 || !d.Contains(value) {
		log.save(problem, v, d.Retain(func(dv string) bool { return dv == value }))
		if log.EmptyDomainFound() {
			return log
		}
	}

	var queue []arc
	enqueue := func(changed csp.Variable, skip csp.Variable) {
		for _, con := range problem.ConstraintsOf(changed) {
			neighbor, ok := problem.Neighbor(con, changed)
			if !ok || neighbor == skip || a.Has(neighbor) {
				continue
			}
			queue = append(queue, arc{x: neighbor, con: con})
		}
	}
	enqueue(v, v)

	scratch := csp.NewAssignment()
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		y, ok := problem.Neighbor(next.con, next.x)
		if !ok {
			continue
		}
		domain := problem.Domain(next.x)
		narrowed := domain.Retain(func(xv string) bool {
			scratch.Assign(next.x, xv)
			supported := false
			for _, yv := range problem.Domain(y).Values() {
				scratch.Assign(y, yv)
				if next.con.IsSatisfied(scratch) {
					supported = true
				}
				scratch.Unassign(y)
				if supported {
					break
				}
			}
			scratch.Unassign(next.x)
			return supported
		})
		if narrowed.Size() < domain.Size() {
			log.save(problem, next.x, narrowed)
			if log.EmptyDomainFound() {
				return log
			}
			enqueue(next.x, y)
		}
	}
	return log
}
