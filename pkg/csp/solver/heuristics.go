package solver

import (
	"sort"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// VariableOrdering narrows the set of candidate variables for the next
// assignment. Orderings compose: the output of one is a legal input to
// another, so MRVDegree is Degree applied to the survivors of MRV. The
// backtracking solver assigns the first variable of the final result.
type VariableOrdering func(problem *csp.CSP, a *csp.Assignment, candidates []csp.Variable) []csp.Variable

// ValueOrdering returns the candidate values for v in the order the
// backtracking solver should try them.
type ValueOrdering func(problem *csp.CSP, a *csp.Assignment, v csp.Variable) []string

// MRV returns the minimum-remaining-values ordering: it keeps the
// candidates whose current domain is smallest.
func MRV() VariableOrdering {
	return func(problem *csp.CSP, a *csp.Assignment, candidates []csp.Variable) []csp.Variable {
		var best []csp.Variable
		bestSize := -1
		for _, v := range candidates {
			size := problem.Domain(v).Size()
			switch {
			case bestSize < 0 || size < bestSize:
				bestSize = size
				best = append(best[:0], v)
			case size == bestSize:
				best = append(best, v)
			}
		}
		return best
	}
}

// Degree returns the degree ordering: it keeps the candidates involved
// in the most constraints with other unassigned variables.
func Degree() VariableOrdering {
	return func(problem *csp.CSP, a *csp.Assignment, candidates []csp.Variable) []csp.Variable {
		var best []csp.Variable
		bestDegree := -1
		for _, v := range candidates {
			degree := 0
			for _, con := range problem.ConstraintsOf(v) {
				for _, w := range con.Scope() {
					if w != v && !a.Has(w) {
						degree++
						break
					}
				}
			}
			switch {
			case degree > bestDegree:
				bestDegree = degree
				best = append(best[:0], v)
			case degree == bestDegree:
				best = append(best, v)
			}
		}
		return best
	}
}

// MRVDegree returns minimum-remaining-values with the degree heuristic
// as tie-breaker.
func MRVDegree() VariableOrdering {
	mrv, degree := MRV(), Degree()
	return func(problem *csp.CSP, a *csp.Assignment, candidates []csp.Variable) []csp.Variable {
		return degree(problem, a, mrv(problem, a, candidates))
	}
}

// LCV returns the least-constraining-value ordering: values are sorted
// by ascending count of values they would eliminate from the domains of
// unassigned neighbors, ties keeping the original domain order.
func LCV() ValueOrdering {
	return func(problem *csp.CSP, a *csp.Assignment, v csp.Variable) []string {
		values := problem.Domain(v).Values()
		ordered := make([]string, len(values))
		copy(ordered, values)
		eliminated := make(map[string]int, len(values))
		for _, value := range values {
			eliminated[value] = countEliminated(problem, a, v, value)
		}
		sort.SliceStable(ordered, func(i, j int) bool {
			return eliminated[ordered[i]] < eliminated[ordered[j]]
		})
		return ordered
	}
}

// countEliminated counts how many values assigning v=value would rule
// out across the domains of unassigned neighbors. The tentative
// bindings are removed before returning.
func countEliminated(problem *csp.CSP, a *csp.Assignment, v csp.Variable, value string) int {
	n := 0
	a.Assign(v, value)
	for _, con := range problem.ConstraintsOf(v) {
		neighbor, ok := problem.Neighbor(con, v)
		if !ok || a.Has(neighbor) {
			continue
		}
		for _, nv := range problem.Domain(neighbor).Values() {
			a.Assign(neighbor, nv)
			if !con.IsSatisfied(a) {
				n++
			}
			a.Unassign(neighbor)
		}
	}
	a.Unassign(v)
	return n
}
