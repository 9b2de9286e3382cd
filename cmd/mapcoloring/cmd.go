package mapcoloring

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdsolve/fdsolve/pkg/csp"
	"github.com/fdsolve/fdsolve/pkg/csp/solver"
)

func NewMapColoringCommand() *cobra.Command {
	var (
		mapName  string
		strategy string
		steps    int
		seed     int64
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "mapcoloring",
		Short: "Colors a map with the selected solving strategy, tracing every step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(mapName, strategy, steps, seed, quiet)
		},
	}
	cmd.Flags().StringVar(&mapName, "map", "australia", "problem: australia | australia-nsw-blue | australia-wa-red | tree")
	cmd.Flags().StringVar(&strategy, "strategy", "backtracking", "solving strategy: backtracking | deg | fc | mrv-fc | lcv-fc | ac3 | all | min-conflicts | tree | tree-random | sat")
	cmd.Flags().IntVar(&steps, "steps", 50, "step budget for min-conflicts")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the randomized strategies (0 = time)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the step-by-step trace")
	return cmd
}

func solve(mapName, strategy string, steps int, seed int64, quiet bool) error {
	problem, err := buildProblem(mapName)
	if err != nil {
		return err
	}
	s, err := buildSolver(strategy, steps, seed)
	if err != nil {
		return err
	}
	if !quiet {
		s.AddListener(&csp.LoggingListener{Writer: os.Stdout})
	}

	solution, err := s.Solve(context.Background(), problem)
	var structErr *csp.StructureError
	switch {
	case err == nil:
		fmt.Printf("solution: %s\n", solution)
	case errors.As(err, &structErr):
		return fmt.Errorf("solver cannot be applied to this problem: %w", err)
	case errors.Is(err, csp.ErrUnsatisfiable), errors.Is(err, csp.ErrBudgetExceeded):
		fmt.Printf("no solution found: %s\n", err)
	default:
		return err
	}
	return nil
}

func buildProblem(mapName string) (*csp.CSP, error) {
	switch mapName {
	case "australia":
		return NewAustralia()
	case "australia-nsw-blue":
		problem, err := NewAustralia()
		if err != nil {
			return nil, err
		}
		return problem, FixRegion(problem, NSW, Blue)
	case "australia-wa-red":
		problem, err := NewAustralia()
		if err != nil {
			return nil, err
		}
		return problem, FixRegion(problem, WA, Red)
	case "tree":
		return NewTreeProblem()
	}
	return nil, fmt.Errorf("unknown map %q", mapName)
}

func buildSolver(strategy string, steps int, seed int64) (solver.Solver, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	switch strategy {
	case "backtracking":
		return solver.NewBacktracking(), nil
	case "deg":
		return solver.NewBacktracking(solver.WithVariableOrdering(solver.Degree())), nil
	case "fc":
		return solver.NewBacktracking(solver.WithInference(solver.ForwardChecking())), nil
	case "mrv-fc":
		return solver.NewBacktracking(
			solver.WithVariableOrdering(solver.MRVDegree()),
			solver.WithInference(solver.ForwardChecking()),
		), nil
	case "lcv-fc":
		return solver.NewBacktracking(
			solver.WithValueOrdering(solver.LCV()),
			solver.WithInference(solver.ForwardChecking()),
		), nil
	case "ac3":
		return solver.NewBacktracking(solver.WithInference(solver.AC3())), nil
	case "all":
		return solver.NewBacktracking(solver.WithAllStrategies()), nil
	case "min-conflicts":
		return solver.NewMinConflicts(steps, solver.WithRand(rng)), nil
	case "tree":
		return solver.NewTree(), nil
	case "tree-random":
		return solver.NewTree(solver.WithRandomRoot(rng)), nil
	case "sat":
		return solver.NewSAT(), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}
