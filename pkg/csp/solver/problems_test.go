package solver_test

import (
	"fmt"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/constraint"
)

const (
	red   = "red"
	green = "green"
	blue  = "blue"
)

func mustDomain(values ...string) *csp.Domain {
	d, err := csp.NewDomain(values...)
	if err != nil {
		panic(err)
	}
	return d
}

func mustProblem(vars ...csp.Variable) *csp.CSP {
	problem, err := csp.New(vars)
	if err != nil {
		panic(err)
	}
	return problem
}

func setDomain(problem *csp.CSP, v csp.Variable, values ...string) {
	if err := problem.SetDomain(v, mustDomain(values...)); err != nil {
		panic(err)
	}
}

func notEqual(problem *csp.CSP, a, b csp.Variable) {
	if err := problem.AddConstraint(constraint.NotEqual(a, b)); err != nil {
		panic(err)
	}
}

// newAustralia builds the seven-region, three-color Australia map with
// its nine not-equal border constraints. Tasmania is constraint-free.
func newAustralia() (*csp.CSP, map[string]csp.Variable) {
	names := []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	byName := make(map[string]csp.Variable, len(names))
	vars := make([]csp.Variable, len(names))
	for i, name := range names {
		vars[i] = csp.NewVariable(name)
		byName[name] = vars[i]
	}
	problem := mustProblem(vars...)
	for _, v := range vars {
		setDomain(problem, v, red, green, blue)
	}
	for _, border := range [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "Q"}, {"NT", "SA"},
		{"Q", "NSW"}, {"Q", "SA"}, {"NSW", "SA"}, {"NSW", "V"}, {"SA", "V"},
	} {
		notEqual(problem, byName[border[0]], byName[border[1]])
	}
	return problem, byName
}

// newTreeProblem builds the eight-variable tree-structured coloring
// problem with four variables pre-fixed to a single color.
func newTreeProblem() (*csp.CSP, []csp.Variable) {
	vars := make([]csp.Variable, 8)
	for i := range vars {
		vars[i] = csp.NewVariable(fmt.Sprintf("V%d", i))
	}
	problem := mustProblem(vars...)
	domains := [][]string{
		{red, green, blue},
		{red, green, blue},
		{red},
		{red, green, blue},
		{green},
		{red, green, blue},
		{red},
		{blue},
	}
	for i, values := range domains {
		setDomain(problem, vars[i], values...)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}, {1, 4}, {3, 5}, {5, 6}, {5, 7}} {
		notEqual(problem, vars[e[0]], vars[e[1]])
	}
	return problem, vars
}

// snapshotDomains records every variable's current domain values.
func snapshotDomains(problem *csp.CSP) map[csp.Variable][]string {
	snap := make(map[csp.Variable][]string, len(problem.Variables()))
	for _, v := range problem.Variables() {
		values := problem.Domain(v).Values()
		snap[v] = append([]string(nil), values...)
	}
	return snap
}
