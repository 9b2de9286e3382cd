package csp

import (
	"fmt"
	"strings"
)

// Assignment is a partial or total mapping from variables to values.
// Insertion order is preserved so that listeners and traces see the
// history of the search.
type Assignment struct {
	order  []Variable
	values map[Variable]string
}

// NewAssignment returns an empty Assignment.
func NewAssignment() *Assignment {
	return &Assignment{values: make(map[Variable]string)}
}

// Value returns the value assigned to v, if any.
func (a *Assignment) Value(v Variable) (string, bool) {
	value, ok := a.values[v]
	return value, ok
}

// Has reports whether v is assigned.
func (a *Assignment) Has(v Variable) bool {
	_, ok := a.values[v]
	return ok
}

// Assign binds v to value, replacing any previous binding. A variable
// keeps its original position in the insertion order when reassigned.
func (a *Assignment) Assign(v Variable, value string) {
	if _, ok := a.values[v]; !ok {
		a.order = append(a.order, v)
	}
	a.values[v] = value
}

// Unassign removes the binding for v, if present.
func (a *Assignment) Unassign(v Variable) {
	if _, ok := a.values[v]; !ok {
		return
	}
	delete(a.values, v)
	for i, u := range a.order {
		if u == v {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Variables returns the assigned variables in insertion order. The
// returned slice must not be modified.
func (a *Assignment) Variables() []Variable {
	return a.order
}

// Size returns the number of assigned variables.
func (a *Assignment) Size() int {
	return len(a.order)
}

// IsComplete reports whether every variable in vars is assigned.
func (a *Assignment) IsComplete(vars []Variable) bool {
	for _, v := range vars {
		if !a.Has(v) {
			return false
		}
	}
	return true
}

// IsConsistent reports whether no constraint in constraints is violated
// by the assignment. Constraints with unassigned scope variables count
// as satisfied.
func (a *Assignment) IsConsistent(constraints []Constraint) bool {
	for _, c := range constraints {
		if !c.IsSatisfied(a) {
			return false
		}
	}
	return true
}

// Conflicts returns the number of violated constraints.
func (a *Assignment) Conflicts(constraints []Constraint) int {
	n := 0
	for _, c := range constraints {
		if !c.IsSatisfied(a) {
			n++
		}
	}
	return n
}

// IsSolution reports whether the assignment is complete for problem and
// satisfies every one of its constraints.
func (a *Assignment) IsSolution(problem *CSP) bool {
	return a.IsComplete(problem.Variables()) && a.IsConsistent(problem.Constraints())
}

// Copy returns an independent copy of the assignment.
func (a *Assignment) Copy() *Assignment {
	cp := &Assignment{
		order:  make([]Variable, len(a.order)),
		values: make(map[Variable]string, len(a.values)),
	}
	copy(cp.order, a.order)
	for v, value := range a.values {
		cp.values[v] = value
	}
	return cp
}

// String implements fmt.Stringer, listing bindings in insertion order.
func (a *Assignment) String() string {
	parts := make([]string, len(a.order))
	for i, v := range a.order {
		parts[i] = fmt.Sprintf("%s=%s", v.Name(), a.values[v])
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
