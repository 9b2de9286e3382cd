package nqueens

import (
	"fmt"
	"strconv"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/constraint"
)

// NewNQueens returns the n-queens puzzle as a constraint problem: one
// variable per column whose value is the row of that column's queen,
// with pairwise predicate constraints forbidding shared rows and
// diagonals.
func NewNQueens(n int) (*csp.CSP, error) {
	vars := make([]csp.Variable, n)
	for i := range vars {
		vars[i] = csp.NewVariable(fmt.Sprintf("Q%d", i+1))
	}
	problem, err := csp.New(vars)
	if err != nil {
		return nil, err
	}

	rows := make([]string, n)
	for i := range rows {
		rows[i] = strconv.Itoa(i + 1)
	}
	for _, v := range vars {
		d, err := csp.NewDomain(rows...)
		if err != nil {
			return nil, err
		}
		if err := problem.SetDomain(v, d); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			distance := j - i
			con := constraint.NewPredicate(
				fmt.Sprintf("%s does not attack %s", vars[i], vars[j]),
				func(values []string) bool {
					ri, _ := strconv.Atoi(values[0])
					rj, _ := strconv.Atoi(values[1])
					if ri == rj {
						return false
					}
					diff := ri - rj
					if diff < 0 {
						diff = -diff
					}
					return diff != distance
				},
				vars[i], vars[j],
			)
			if err := problem.AddConstraint(con); err != nil {
				return nil, err
			}
		}
	}
	return problem, nil
}

// Board renders a solution as an n-line text board.
func Board(problem *csp.CSP, a *csp.Assignment) string {
	vars := problem.Variables()
	n := len(vars)
	out := make([]byte, 0, n*(2*n))
	for row := n; row >= 1; row-- {
		for col := 0; col < n; col++ {
			value, _ := a.Value(vars[col])
			if value == strconv.Itoa(row) {
				out = append(out, 'Q')
			} else {
				out = append(out, '.')
			}
			if col != n-1 {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
