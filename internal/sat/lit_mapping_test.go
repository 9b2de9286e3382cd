package sat_test

import (
	"testing"

	"github.com/go-air/gini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdsolve/fdsolve/internal/sat"
	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/constraint"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

func buildPair(t *testing.T, xValues, yValues []string) (*csp.CSP, csp.Variable, csp.Variable) {
	x, y := csp.NewVariable("X"), csp.NewVariable("Y")
	problem, err := csp.New([]csp.Variable{x, y})
	require.NoError(t, err)

	dx, err := csp.NewDomain(xValues...)
	require.NoError(t, err)
	require.NoError(t, problem.SetDomain(x, dx))
	dy, err := csp.NewDomain(yValues...)
	require.NoError(t, err)
	require.NoError(t, problem.SetDomain(y, dy))

	require.NoError(t, problem.AddConstraint(constraint.NotEqual(x, y)))
	return problem, x, y
}

func TestEncodeAndDecode(t *testing.T) {
	problem, x, y := buildPair(t, []string{"red", "blue"}, []string{"red", "blue"})

	m, err := sat.NewLitMapping(problem)
	require.NoError(t, err)

	g := gini.New()
	m.AddConstraints(g)
	m.AssumeConstraints(g)
	require.Equal(t, satisfiable, g.Solve())

	xv, ok := m.ValueOf(g, x)
	assert.True(t, ok)
	yv, ok := m.ValueOf(g, y)
	assert.True(t, ok)
	assert.NotEqual(t, xv, yv)
}

func TestEncodeUnsatisfiable(t *testing.T) {
	problem, _, _ := buildPair(t, []string{"red"}, []string{"red"})

	m, err := sat.NewLitMapping(problem)
	require.NoError(t, err)

	g := gini.New()
	m.AddConstraints(g)
	m.AssumeConstraints(g)
	assert.Equal(t, unsatisfiable, g.Solve())
}

func TestEmptyDomainIsRejected(t *testing.T) {
	x := csp.NewVariable("X")
	problem, err := csp.New([]csp.Variable{x})
	require.NoError(t, err)

	_, err = sat.NewLitMapping(problem)
	assert.ErrorIs(t, err, csp.ErrUnsatisfiable)
}
