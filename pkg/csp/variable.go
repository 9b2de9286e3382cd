package csp

// Variable identifies one variable of a constraint problem. Variables
// are compared by name; two Variable values with the same name refer
// to the same problem variable.
type Variable struct {
	name string
}

// NewVariable returns a Variable with the given name.
func NewVariable(name string) Variable {
	return Variable{name: name}
}

// Name returns the name that identifies this Variable.
func (v Variable) Name() string {
	return v.name
}

// String implements fmt.Stringer.
func (v Variable) String() string {
	return v.name
}
