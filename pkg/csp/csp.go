// Package csp holds the data model of a finite-domain constraint
// satisfaction problem: variables, domains, constraints, assignments,
// and the CSP aggregate that solvers operate on.
package csp

// Constraint restricts the legal value combinations of the variables in
// its scope. Implementations must be stateless and side-effect free:
// the same assignment always yields the same verdict.
//
// IsSatisfied is evaluated against partial assignments during search,
// so implementations must treat a constraint whose scope is not fully
// assigned as satisfied unless the bound values alone already rule out
// every completion.
type Constraint interface {
	// Scope returns the variables the constraint ranges over, in
	// order. The scope has at least one variable; two is the common
	// case.
	Scope() []Variable
	// IsSatisfied reports whether the constraint holds under the
	// given (possibly partial) assignment.
	IsSatisfied(a *Assignment) bool
}

// CSP aggregates the variables, domains, and constraints of one
// problem. The variable list is fixed at construction; domains are
// replaceable wholesale; constraints are appendable. A solver treats
// the CSP as mutable scratch space during Solve but restores domains
// it narrowed when it backtracks.
type CSP struct {
	variables   []Variable
	domains     map[Variable]*Domain
	constraints []Constraint
	byVariable  map[Variable][]Constraint
}

// New returns a CSP over the given variables, each starting with an
// empty domain. It returns a DuplicateVariableError if a variable
// appears twice.
func New(variables []Variable) (*CSP, error) {
	c := &CSP{
		variables:  make([]Variable, len(variables)),
		domains:    make(map[Variable]*Domain, len(variables)),
		byVariable: make(map[Variable][]Constraint),
	}
	for i, v := range variables {
		if _, ok := c.domains[v]; ok {
			return nil, DuplicateVariableError(v.Name())
		}
		c.variables[i] = v
		c.domains[v] = &Domain{}
	}
	return c, nil
}

// Variables returns the problem's variables in declaration order. The
// returned slice must not be modified.
func (c *CSP) Variables() []Variable {
	return c.variables
}

// HasVariable reports whether v is part of the problem.
func (c *CSP) HasVariable(v Variable) bool {
	_, ok := c.domains[v]
	return ok
}

// Domain returns the current domain of v, or nil if v is not part of
// the problem.
func (c *CSP) Domain(v Variable) *Domain {
	return c.domains[v]
}

// SetDomain replaces the domain of v. Solvers use it both for
// pre-seeding (fixing a variable to a single value) and for reversible
// narrowing during inference.
func (c *CSP) SetDomain(v Variable, d *Domain) error {
	if !c.HasVariable(v) {
		return UnknownVariableError(v.Name())
	}
	c.domains[v] = d
	return nil
}

// AddConstraint registers con with the problem. Every variable in the
// constraint's scope must be a member of the problem's variable list.
func (c *CSP) AddConstraint(con Constraint) error {
	scope := con.Scope()
	if len(scope) == 0 {
		return &StructureError{Reason: "constraint has an empty scope"}
	}
	for _, v := range scope {
		if !c.HasVariable(v) {
			return UnknownVariableError(v.Name())
		}
	}
	c.constraints = append(c.constraints, con)
	for _, v := range scope {
		c.byVariable[v] = append(c.byVariable[v], con)
	}
	return nil
}

// Constraints returns every registered constraint in registration
// order. The returned slice must not be modified.
func (c *CSP) Constraints() []Constraint {
	return c.constraints
}

// ConstraintsOf returns the constraints whose scope includes v, in
// registration order.
func (c *CSP) ConstraintsOf(v Variable) []Constraint {
	return c.byVariable[v]
}

// Neighbor returns the variable at the other end of a binary
// constraint, relative to v. It reports false when the constraint is
// not binary or v is not in its scope.
func (c *CSP) Neighbor(con Constraint, v Variable) (Variable, bool) {
	scope := con.Scope()
	if len(scope) != 2 {
		return Variable{}, false
	}
	switch v {
	case scope[0]:
		return scope[1], true
	case scope[1]:
		return scope[0], true
	}
	return Variable{}, false
}

// CopyDomains returns a copy of the problem that shares variables and
// constraints with the original but owns its domain table, so a solver
// can narrow domains without touching the caller's problem.
func (c *CSP) CopyDomains() *CSP {
	cp := &CSP{
		variables:   c.variables,
		domains:     make(map[Variable]*Domain, len(c.domains)),
		constraints: c.constraints,
		byVariable:  c.byVariable,
	}
	for v, d := range c.domains {
		cp.domains[v] = d
	}
	return cp
}
