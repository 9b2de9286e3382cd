package nqueens

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/solver"
)

func NewNQueensCommand() *cobra.Command {
	var (
		n        int
		strategy string
		steps    int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "nqueens",
		Short: "Places n non-attacking queens on an n by n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(n, strategy, steps, seed)
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size")
	cmd.Flags().StringVar(&strategy, "strategy", "all", "solving strategy: backtracking | all | min-conflicts | sat")
	cmd.Flags().IntVar(&steps, "steps", 200, "step budget for min-conflicts")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for min-conflicts (0 = time)")
	return cmd
}

func solve(n int, strategy string, steps int, seed int64) error {
	if n < 1 {
		return fmt.Errorf("board size must be positive, got %d", n)
	}
	problem, err := NewNQueens(n)
	if err != nil {
		return err
	}

	var s solver.Solver
	switch strategy {
	case "backtracking":
		s = solver.NewBacktracking()
	case "all":
		s = solver.NewBacktracking(solver.WithAllStrategies())
	case "min-conflicts":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s = solver.NewMinConflicts(steps, solver.WithRand(rand.New(rand.NewSource(seed))))
	case "sat":
		s = solver.NewSAT()
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	solution, err := s.Solve(context.Background(), problem)
	switch {
	case err == nil:
		fmt.Print(Board(problem, solution))
	case errors.Is(err, csp.ErrUnsatisfiable), errors.Is(err, csp.ErrBudgetExceeded):
		fmt.Printf("no solution found: %s\n", err)
	default:
		return err
	}
	return nil
}
