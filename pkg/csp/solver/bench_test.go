package solver_test

import (
	"context"
	"testing"

	"github.com/fdsolve/fdsolve/pkg/csp/solver"
)

func BenchmarkBacktrackingPlain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		problem, _ := newAustralia()
		if _, err := solver.NewBacktracking().Solve(context.Background(), problem); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBacktrackingAllStrategies(b *testing.B) {
	for i := 0; i < b.N; i++ {
		problem, _ := newAustralia()
		if _, err := solver.NewBacktracking(solver.WithAllStrategies()).Solve(context.Background(), problem); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		problem, _ := newTreeProblem()
		if _, err := solver.NewTree().Solve(context.Background(), problem); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSAT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		problem, _ := newAustralia()
		if _, err := solver.NewSAT().Solve(context.Background(), problem); err != nil {
			b.Fatal(err)
		}
	}
}
