package mapcoloring

import (
	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/constraint"
)

// The three colors available for every region.
const (
	Red   = "red"
	Green = "green"
	Blue  = "blue"
)

// The regions of the Australia map, Tasmania included even though no
// constraint touches it.
var (
	WA  = csp.NewVariable("WA")
	NT  = csp.NewVariable("NT")
	SA  = csp.NewVariable("SA")
	Q   = csp.NewVariable("Q")
	NSW = csp.NewVariable("NSW")
	V   = csp.NewVariable("V")
	T   = csp.NewVariable("T")
)

// NewAustralia returns the classic map-coloring problem over the seven
// Australian regions with three colors and nine not-equal constraints
// between adjacent regions.
func NewAustralia() (*csp.CSP, error) {
	problem, err := csp.New([]csp.Variable{NSW, WA, NT, Q, SA, V, T})
	if err != nil {
		return nil, err
	}
	for _, v := range problem.Variables() {
		d, err := csp.NewDomain(Red, Green, Blue)
		if err != nil {
			return nil, err
		}
		if err := problem.SetDomain(v, d); err != nil {
			return nil, err
		}
	}
	borders := [][2]csp.Variable{
		{WA, NT}, {WA, SA}, {NT, Q}, {NT, SA},
		{Q, NSW}, {Q, SA}, {NSW, SA}, {NSW, V}, {SA, V},
	}
	for _, b := range borders {
		if err := problem.AddConstraint(constraint.NotEqual(b[0], b[1])); err != nil {
			return nil, err
		}
	}
	return problem, nil
}

// FixRegion narrows one region's domain to a single color, as the
// heuristic calibration variants of the problem do (NSW=blue, WA=red).
func FixRegion(problem *csp.CSP, region csp.Variable, color string) error {
	d, err := csp.NewDomain(color)
	if err != nil {
		return err
	}
	return problem.SetDomain(region, d)
}

// NewTreeProblem returns the eight-variable tree-structured coloring
// problem: a tree of not-equal constraints with four variables
// pre-fixed to a single color, solvable without backtracking by the
// tree solver.
func NewTreeProblem() (*csp.CSP, error) {
	vars := make([]csp.Variable, 8)
	for i := range vars {
		vars[i] = csp.NewVariable("V" + string(rune('0'+i)))
	}
	problem, err := csp.New(vars)
	if err != nil {
		return nil, err
	}
	domains := [][]string{
		{Red, Green, Blue},
		{Red, Green, Blue},
		{Red},
		{Red, Green, Blue},
		{Green},
		{Red, Green, Blue},
		{Red},
		{Blue},
	}
	for i, values := range domains {
		d, err := csp.NewDomain(values...)
		if err != nil {
			return nil, err
		}
		if err := problem.SetDomain(vars[i], d); err != nil {
			return nil, err
		}
	}
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}, {1, 4}, {3, 5}, {5, 6}, {5, 7}}
	for _, e := range edges {
		if err := problem.AddConstraint(constraint.NotEqual(vars[e[0]], vars[e[1]])); err != nil {
			return nil, err
		}
	}
	return problem, nil
}
