// Package constraint provides the constraint kinds understood by the
// solvers: the binary not-equal baseline and a generic n-ary predicate.
package constraint

import (
	"fmt"

	"github.com/fdsolve/fdsolve/pkg/csp"
)

// NotEqualConstraint requires two variables to take different values.
type NotEqualConstraint struct {
	scope []csp.Variable
}

var _ csp.Constraint = &NotEqualConstraint{}

func (c *NotEqualConstraint) Scope() []csp.Variable {
	return c.scope
}

func (c *NotEqualConstraint) IsSatisfied(a *csp.Assignment) bool {
	left, ok := a.Value(c.scope[0])
	if !ok {
		return true
	}
	right, ok := a.Value(c.scope[1])
	if !ok {
		return true
	}
	return left != right
}

// String implements fmt.Stringer.
func (c *NotEqualConstraint) String() string {
	return fmt.Sprintf("%s != %s", c.scope[0], c.scope[1])
}

// NotEqual returns a Constraint that permits only assignments in which
// a and b take different values.
func NotEqual(a, b csp.Variable) csp.Constraint {
	return &NotEqualConstraint{scope: []csp.Variable{a, b}}
}

// PredicateConstraint evaluates an arbitrary predicate over the values
// of its scope. The predicate is only consulted once every scope
// variable is assigned; a partially assigned scope counts as satisfied.
type PredicateConstraint struct {
	name  string
	scope []csp.Variable
	test  func(values []string) bool
}

var _ csp.Constraint = &PredicateConstraint{}

func (c *PredicateConstraint) Scope() []csp.Variable {
	return c.scope
}

func (c *PredicateConstraint) IsSatisfied(a *csp.Assignment) bool {
	values := make([]string, len(c.scope))
	for i, v := range c.scope {
		value, ok := a.Value(v)
		if !ok {
			return true
		}
		values[i] = value
	}
	return c.test(values)
}

// String implements fmt.Stringer.
func (c *PredicateConstraint) String() string {
	return c.name
}

// NewPredicate returns a Constraint over scope that is satisfied when
// test accepts the scope's values, listed in scope order. The name is
// used only for display. The predicate must be pure: same values, same
// verdict.
func NewPredicate(name string, test func(values []string) bool, scope ...csp.Variable) csp.Constraint {
	return &PredicateConstraint{name: name, scope: scope, test: test}
}
