package csp

import (
	"fmt"
	"strings"
)

// Domain holds the ordered set of values still considered legal for one
// variable. A Domain is immutable once created; solvers narrow a
// variable's domain by installing a new Domain on the CSP and restore
// the old one on backtrack, so value order is always preserved.
type Domain struct {
	values []string
}

// NewDomain returns a Domain containing the given values in the given
// order. It returns a DuplicateValueError if a value appears twice.
func NewDomain(values ...string) (*Domain, error) {
	seen := make(map[string]struct{}, len(values))
	vs := make([]string, len(values))
	for i, value := range values {
		if _, ok := seen[value]; ok {
			return nil, DuplicateValueError(value)
		}
		seen[value] = struct{}{}
		vs[i] = value
	}
	return &Domain{values: vs}, nil
}

// Values returns the domain values in order. The returned slice must
// not be modified.
func (d *Domain) Values() []string {
	return d.values
}

// Size returns the number of values in the domain.
func (d *Domain) Size() int {
	return len(d.values)
}

// IsEmpty reports whether no values remain. An empty domain signals
// that the problem has no solution under the current assignment.
func (d *Domain) IsEmpty() bool {
	return len(d.values) == 0
}

// Contains reports whether value is a member of the domain.
func (d *Domain) Contains(value string) bool {
	for _, v := range d.values {
		if v == value {
			return true
		}
	}
	return false
}

// Retain returns a new Domain holding the values accepted by keep, in
// their original relative order. Preserving order keeps value-ordering
// heuristics deterministic after a prune-and-restore cycle.
func (d *Domain) Retain(keep func(value string) bool) *Domain {
	kept := make([]string, 0, len(d.values))
	for _, v := range d.values {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	return &Domain{values: kept}
}

// Equal reports whether both domains hold the same values in the same
// order.
func (d *Domain) Equal(other *Domain) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for i, v := range d.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (d *Domain) String() string {
	return fmt.Sprintf("{%s}", strings.Join(d.values, ", "))
}
