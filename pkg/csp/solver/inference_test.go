package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/solver"
)

func TestForwardCheckingPrunesDirectNeighbors(t *testing.T) {
	problem, byName := newAustralia()
	wa, nt, sa, q := byName["WA"], byName["NT"], byName["SA"], byName["Q"]

	a := csp.NewAssignment()
	a.Assign(wa, red)
	log := solver.ForwardChecking().Infer(problem, a, wa)

	assert.False(t, log.Empty())
	assert.False(t, log.EmptyDomainFound())
	assert.Equal(t, []string{green, blue}, problem.Domain(nt).Values())
	assert.Equal(t, []string{green, blue}, problem.Domain(sa).Values())
	// Q is not adjacent to WA, so forward checking leaves it alone
	assert.Equal(t, []string{red, green, blue}, problem.Domain(q).Values())
}

func TestForwardCheckingDetectsEmptyDomain(t *testing.T) {
	x, y := csp.NewVariable("X"), csp.NewVariable("Y")
	problem := mustProblem(x, y)
	setDomain(problem, x, red)
	setDomain(problem, y, red)
	notEqual(problem, x, y)

	a := csp.NewAssignment()
	a.Assign(x, red)
	log := solver.ForwardChecking().Infer(problem, a, x)

	assert.True(t, log.EmptyDomainFound())
}

func TestUndoRestoresExactDomains(t *testing.T) {
	problem, byName := newAustralia()
	wa := byName["WA"]
	before := snapshotDomains(problem)

	a := csp.NewAssignment()
	a.Assign(wa, red)
	log := solver.ForwardChecking().Infer(problem, a, wa)
	assert.False(t, log.Empty())
	log.Undo(problem)

	for v, values := range before {
		assert.Equal(t, values, problem.Domain(v).Values(), "domain of %s", v)
	}
}

// A=red with A!=B, B!=C, B={red,green}, C={green}: forward checking
// only prunes B, while arc consistency follows the arc into C and
// proves the dead end.
func TestAC3PrunesTransitively(t *testing.T) {
	build := func() (*csp.CSP, csp.Variable) {
		x, y, z := csp.NewVariable("A"), csp.NewVariable("B"), csp.NewVariable("C")
		problem := mustProblem(x, y, z)
		setDomain(problem, x, red, green, blue)
		setDomain(problem, y, red, green)
		setDomain(problem, z, green)
		notEqual(problem, x, y)
		notEqual(problem, y, z)
		return problem, x
	}

	problem, x := build()
	a := csp.NewAssignment()
	a.Assign(x, red)
	fcLog := solver.ForwardChecking().Infer(problem, a, x)
	assert.False(t, fcLog.EmptyDomainFound())

	problem, x = build()
	a = csp.NewAssignment()
	a.Assign(x, red)
	ac3Log := solver.AC3().Infer(problem, a, x)
	assert.True(t, ac3Log.EmptyDomainFound())
}

func TestAC3NarrowsAssignedVariableAndRestores(t *testing.T) {
	problem, byName := newAustralia()
	wa := byName["WA"]
	before := snapshotDomains(problem)

	a := csp.NewAssignment()
	a.Assign(wa, red)
	log := solver.AC3().Infer(problem, a, wa)

	assert.Equal(t, []string{red}, problem.Domain(wa).Values())
	assert.False(t, log.EmptyDomainFound())

	log.Undo(problem)
	for v, values := range before {
		assert.Equal(t, values, problem.Domain(v).Values(), "domain of %s", v)
	}
}
