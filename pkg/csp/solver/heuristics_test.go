package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/solver"
)

func TestMRVKeepsSmallestDomains(t *testing.T) {
	x, y, z := csp.NewVariable("X"), csp.NewVariable("Y"), csp.NewVariable("Z")
	problem := mustProblem(x, y, z)
	setDomain(problem, x, red, green, blue)
	setDomain(problem, y, red)
	setDomain(problem, z, red, green)

	got := solver.MRV()(problem, csp.NewAssignment(), problem.Variables())
	assert.Equal(t, []csp.Variable{y}, got)
}

func TestMRVKeepsTies(t *testing.T) {
	x, y, z := csp.NewVariable("X"), csp.NewVariable("Y"), csp.NewVariable("Z")
	problem := mustProblem(x, y, z)
	setDomain(problem, x, red, green)
	setDomain(problem, y, red, green, blue)
	setDomain(problem, z, green, blue)

	got := solver.MRV()(problem, csp.NewAssignment(), problem.Variables())
	assert.Equal(t, []csp.Variable{x, z}, got)
}

func TestDegreePicksMostConstrainedRegion(t *testing.T) {
	problem, byName := newAustralia()

	// SA borders five regions, more than any other.
	got := solver.Degree()(problem, csp.NewAssignment(), problem.Variables())
	assert.Equal(t, []csp.Variable{byName["SA"]}, got)
}

func TestDegreeIgnoresAssignedNeighbors(t *testing.T) {
	x, y, z := csp.NewVariable("X"), csp.NewVariable("Y"), csp.NewVariable("Z")
	problem := mustProblem(x, y, z)
	for _, v := range problem.Variables() {
		setDomain(problem, v, red, green)
	}
	notEqual(problem, x, y)
	notEqual(problem, x, z)
	notEqual(problem, y, z)

	a := csp.NewAssignment()
	a.Assign(z, red)

	// with Z assigned, X and Y each keep one live constraint
	got := solver.Degree()(problem, a, []csp.Variable{x, y})
	assert.Equal(t, []csp.Variable{x, y}, got)
}

func TestMRVDegreeBreaksTiesByDegree(t *testing.T) {
	problem, byName := newAustralia()

	// all domains equal, so MRV keeps everything and degree decides
	got := solver.MRVDegree()(problem, csp.NewAssignment(), problem.Variables())
	assert.Equal(t, []csp.Variable{byName["SA"]}, got)
}

func TestLCVPrefersLeastEliminatingValue(t *testing.T) {
	a, b, c := csp.NewVariable("A"), csp.NewVariable("B"), csp.NewVariable("C")
	problem := mustProblem(a, b, c)
	setDomain(problem, a, red)
	setDomain(problem, b, red, green)
	setDomain(problem, c, red)
	notEqual(problem, a, b)
	notEqual(problem, b, c)

	// B=red eliminates the only value of both neighbors, B=green none.
	got := solver.LCV()(problem, csp.NewAssignment(), b)
	assert.Equal(t, []string{green, red}, got)
}

func TestLCVKeepsDomainOrderOnTies(t *testing.T) {
	problem, byName := newAustralia()

	// with nothing assigned, every color eliminates the same count
	got := solver.LCV()(problem, csp.NewAssignment(), byName["SA"])
	assert.Equal(t, []string{red, green, blue}, got)
}

func TestLCVLeavesAssignmentUntouched(t *testing.T) {
	problem, byName := newAustralia()
	a := csp.NewAssignment()
	a.Assign(byName["WA"], red)

	solver.LCV()(problem, a, byName["SA"])
	assert.Equal(t, []csp.Variable{byName["WA"]}, a.Variables())
	value, _ := a.Value(byName["WA"])
	assert.Equal(t, red, value)
}
