package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// Tree is the exact, linear-time solver for problems whose constraint
// graph is a tree or forest of binary constraints. It roots the graph
// by breadth-first traversal, makes every tree edge directionally arc
// consistent from the leaves toward the roots, and then assigns
// variables top-down without backtracking. Applied to a cyclic or
// non-binary constraint graph it fails with a *csp.StructureError.
type Tree struct {
	emitter
	randomRoot bool
	rng        *rand.Rand
}

// TreeOption configures a Tree solver.
type TreeOption func(*Tree)

// WithRandomRoot makes the solver pick the traversal root at random
// using r instead of the first declared variable. A nil r falls back to
// a time-seeded source.
func WithRandomRoot(r *rand.Rand) TreeOption {
	return func(t *Tree) {
		t.randomRoot = true
		if r != nil {
			t.rng = r
		}
	}
}

// NewTree returns a tree solver decorated with the given options.
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// spanning is the rooted structure produced by breadth-first traversal
// of the constraint graph: variables in topological order, plus the
// parent and connecting constraint of every non-root variable.
type spanning struct {
	order     []csp.Variable
	parent    map[csp.Variable]csp.Variable
	parentCon map[csp.Variable]csp.Constraint
}

// Solve works on a domain copy of the problem, so the caller's domains
// are never narrowed. It returns csp.ErrUnsatisfiable when the
// consistency pass empties a domain.
func (t *Tree) Solve(ctx context.Context, problem *csp.CSP) (*csp.Assignment, error) {
	problem = problem.CopyDomains()
	if len(problem.Variables()) == 0 {
		a := csp.NewAssignment()
		t.fire(problem, nil, a)
		return a, nil
	}
	span, err := t.buildSpanning(problem)
	if err != nil {
		return nil, err
	}

	// Directional arc consistency, leaves toward roots: drop parent
	// values with no supporting child value under the tree edge.
	scratch := csp.NewAssignment()
	for i := len(span.order) - 1; i >= 0; i-- {
		child := span.order[i]
		parent, ok := span.parent[child]
		if !ok {
			continue
		}
		con := span.parentCon[child]
		domain := problem.Domain(parent)
		narrowed := domain.Retain(func(pv string) bool {
			scratch.Assign(parent, pv)
			supported := false
			for _, cv := range problem.Domain(child).Values() {
				scratch.Assign(child, cv)
				if con.IsSatisfied(scratch) {
					supported = true
				}
				scratch.Unassign(child)
				if supported {
					break
				}
			}
			scratch.Unassign(parent)
			return supported
		})
		if narrowed.Size() < domain.Size() {
			problem.SetDomain(parent, narrowed)
			t.fire(problem, &parent, nil)
			if narrowed.IsEmpty() {
				return nil, csp.ErrUnsatisfiable
			}
		}
	}

	// Forward pass, roots toward leaves. After a successful
	// consistency pass every variable has a value consistent with its
	// already-assigned parent, so this never backs up.
	a := csp.NewAssignment()
	for _, v := range span.order {
		v := v
		if err := cancelled(ctx); err != nil {
			return nil, err
		}
		assigned := false
		for _, value := range problem.Domain(v).Values() {
			a.Assign(v, value)
			if a.IsConsistent(problem.ConstraintsOf(v)) {
				assigned = true
				break
			}
			a.Unassign(v)
		}
		if !assigned {
			return nil, csp.ErrUnsatisfiable
		}
		t.fire(problem, &v, a)
	}
	t.fire(problem, nil, a)
	return a, nil
}

// buildSpanning roots the constraint graph via breadth-first traversal,
// visiting every component, and reports a *csp.StructureError for
// non-binary constraints and cycles.
func (t *Tree) buildSpanning(problem *csp.CSP) (*spanning, error) {
	vars := problem.Variables()
	span := &spanning{
		parent:    make(map[csp.Variable]csp.Variable),
		parentCon: make(map[csp.Variable]csp.Constraint),
	}
	visited := make(map[csp.Variable]bool, len(vars))

	root := vars[0]
	if t.randomRoot {
		root = vars[t.rng.Intn(len(vars))]
	}

	for len(span.order) < len(vars) {
		if len(span.order) > 0 || visited[root] {
			// next component of the forest
			for _, v := range vars {
				if !visited[v] {
					root = v
					break
				}
			}
		}
		visited[root] = true
		queue := []csp.Variable{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			span.order = append(span.order, u)
			for _, con := range problem.ConstraintsOf(u) {
				if len(con.Scope()) != 2 {
					return nil, &csp.StructureError{Reason: fmt.Sprintf("constraint over %v is not binary", con.Scope())}
				}
				w, _ := problem.Neighbor(con, u)
				if !visited[w] {
					visited[w] = true
					span.parent[w] = u
					span.parentCon[w] = con
					queue = append(queue, w)
					continue
				}
				if span.parent[u] == w && span.parentCon[u] == con {
					continue
				}
				return nil, &csp.StructureError{Reason: fmt.Sprintf("cycle through %s and %s", u, w)}
			}
		}
	}
	return span, nil
}
