// Package ident implements the qualified-name and definition-id algebra
// (spec component C1): ordered name components, the reserved synthetic
// suffixes the pass mints during lowering, and the triple that identifies
// a definition across package boundaries.
package ident

import "strings"

// Reserved component strings. The type-analysis pass mints names ending in
// one of these suffixes for entities it synthesizes rather than entities
// that came from source text — a constructor, a class initializer, the
// receiver parameter, an existential capture variable, or a lambda's
// closure class.
const (
	SuffixConstructor = "$constructor"
	SuffixInit        = "$init"
	SuffixThis        = "$this"
	SuffixExist       = "$exist"
	SuffixLambda      = "$lambda"
)

// Name is an ordered sequence of string components, e.g. ["acme", "util",
// "List"] for acme.util.List. Equality and hashing are by component
// sequence; two names with different SourceName are still equal if their
// components match.
type Name struct {
	Components []string
	SourceName string // unqualified name as written at the use site, if any
}

// New builds a Name from its dotted components.
func New(components ...string) Name {
	cs := make([]string, len(components))
	copy(cs, components)
	return Name{Components: cs}
}

// Child appends one component, returning the extended name. The receiver
// is left untouched.
func (n Name) Child(component string) Name {
	cs := make([]string, len(n.Components)+1)
	copy(cs, n.Components)
	cs[len(n.Components)] = component
	return Name{Components: cs}
}

// WithSuffix appends a reserved synthetic suffix component.
func (n Name) WithSuffix(suffix string) Name {
	return n.Child(suffix)
}

// Short returns the last component, or "" for an empty name.
func (n Name) Short() string {
	if len(n.Components) == 0 {
		return ""
	}
	return n.Components[len(n.Components)-1]
}

// IsSynthetic reports whether the name's last component carries one of the
// reserved suffixes.
func (n Name) IsSynthetic() bool {
	switch n.Short() {
	case SuffixConstructor, SuffixInit, SuffixThis, SuffixExist, SuffixLambda:
		return true
	default:
		return false
	}
}

// Equals compares two names by component sequence only (SourceName is not
// part of identity: it exists purely for diagnostics).
func (n Name) Equals(other Name) bool {
	if len(n.Components) != len(other.Components) {
		return false
	}
	for i, c := range n.Components {
		if c != other.Components[i] {
			return false
		}
	}
	return true
}

// String renders the dotted form, e.g. "acme.util.List".
func (n Name) String() string {
	return strings.Join(n.Components, ".")
}

// Key returns a value suitable for use as a map key (Name holds a slice,
// so it is not comparable with == and cannot itself be a map key;
// callers that need a map key should use Key rather than the struct).
func (n Name) Key() string {
	return strings.Join(n.Components, "\x00")
}
