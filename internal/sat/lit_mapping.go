// Package sat encodes finite-domain constraint problems into CNF for
// the gini SAT engine.
package sat

import (
	"fmt"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// varValue identifies one boolean of the encoding: "variable v takes
// this value".
type varValue struct {
	v     csp.Variable
	value string
}

// LitMapping performs translation between a problem's variables and
// values and the literals that appear in the SAT formula. The encoding
// uses one literal per (variable, value) pair, exactly-one clauses per
// variable, and one conflict clause per value tuple a constraint
// rejects, all built in a logic circuit and translated to CNF on
// demand.
//
// Conflict clauses are enumerated from the constraint predicates over
// the cartesian product of the scope's domains, so constraints with
// wide scopes over large domains are expensive to encode.
type LitMapping struct {
	c       *logic.C
	lits    map[varValue]z.Lit
	values  map[csp.Variable][]string
	asserts []z.Lit
}

// NewLitMapping returns a LitMapping with the full encoding of problem
// already built. A variable with an empty domain makes the problem
// trivially unsatisfiable and is reported as csp.ErrUnsatisfiable.
func NewLitMapping(problem *csp.CSP) (*LitMapping, error) {
	m := &LitMapping{
		c:      logic.NewCCap(len(problem.Variables())),
		lits:   make(map[varValue]z.Lit),
		values: make(map[csp.Variable][]string, len(problem.Variables())),
	}

	for _, v := range problem.Variables() {
		values := problem.Domain(v).Values()
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: variable %s has an empty domain", csp.ErrUnsatisfiable, v)
		}
		m.values[v] = values
		for _, value := range values {
			m.lits[varValue{v: v, value: value}] = m.c.Lit()
		}

		// each variable takes at least one of its values
		atLeast := m.LitOf(v, values[0])
		for _, value := range values[1:] {
			atLeast = m.c.Or(atLeast, m.LitOf(v, value))
		}
		m.asserts = append(m.asserts, atLeast)

		// and at most one
		for i := range values {
			for j := i + 1; j < len(values); j++ {
				m.asserts = append(m.asserts, m.c.Or(m.LitOf(v, values[i]).Not(), m.LitOf(v, values[j]).Not()))
			}
		}
	}

	for _, con := range problem.Constraints() {
		m.addConstraint(con)
	}
	return m, nil
}

// LitOf returns the positive literal standing for v taking value.
func (m *LitMapping) LitOf(v csp.Variable, value string) z.Lit {
	return m.lits[varValue{v: v, value: value}]
}

// addConstraint asserts, for every value tuple of con's scope that the
// predicate rejects, a clause forbidding that tuple.
func (m *LitMapping) addConstraint(con csp.Constraint) {
	scope := con.Scope()
	scratch := csp.NewAssignment()
	var walk func(i int)
	walk = func(i int) {
		if i == len(scope) {
			if con.IsSatisfied(scratch) {
				return
			}
			value, _ := scratch.Value(scope[0])
			clause := m.LitOf(scope[0], value).Not()
			for _, v := range scope[1:] {
				value, _ = scratch.Value(v)
				clause = m.c.Or(clause, m.LitOf(v, value).Not())
			}
			m.asserts = append(m.asserts, clause)
			return
		}
		for _, value := range m.values[scope[i]] {
			scratch.Assign(scope[i], value)
			walk(i + 1)
		}
		scratch.Unassign(scope[i])
	}
	walk(0)
}

// AddConstraints adds the constraints encoded in the embedded circuit
// to the solver g.
func (m *LitMapping) AddConstraints(g inter.S) {
	m.c.ToCnf(g)
}

// AssumeConstraints assumes every asserted clause literal in g.
func (m *LitMapping) AssumeConstraints(g inter.S) {
	for _, l := range m.asserts {
		g.Assume(l)
	}
}

// ValueOf decodes the value chosen for v from the model held by g.
func (m *LitMapping) ValueOf(g inter.S, v csp.Variable) (string, bool) {
	for _, value := range m.values[v] {
		if g.Value(m.LitOf(v, value)) {
			return value, true
		}
	}
	return "", false
}
