// Package flags implements the finite modifier set (spec component C2):
// a bounded vocabulary of flags, the conflict groups that constrain which
// combinations are well-formed, and the bit encoding used to serialize a
// flag set to and from a single integer.
//
// The canonical flag table is data, not code — grounded on gypsum/flags.py,
// which loads its flag list from a package-local flags.yaml at import time
// rather than hard-coding bit positions in Python source.
package flags

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Flag is one modifier from the canonical table.
type Flag string

// The canonical flags, declared as Go constants for compile-time safety at
// call sites even though their bit positions are assigned from flags.yaml.
const (
	Public        Flag = "PUBLIC"
	Protected     Flag = "PROTECTED"
	Private       Flag = "PRIVATE"
	Static        Flag = "STATIC"
	Abstract      Flag = "ABSTRACT"
	Final         Flag = "FINAL"
	Native        Flag = "NATIVE"
	Override      Flag = "OVERRIDE"
	Let           Flag = "LET"
	Var           Flag = "VAR"
	Covariant     Flag = "COVARIANT"
	Contravariant Flag = "CONTRAVARIANT"
	Constructor   Flag = "CONSTRUCTOR"
	Array         Flag = "ARRAY"
	Extern        Flag = "EXTERN"
)

//go:embed flags.yaml
var flagTableYAML []byte

var (
	ordered   []Flag
	codeOf    = map[Flag]uint64{}
	flagOf    = map[uint64]Flag{}
	groups    [][]Flag
	byCanon   = map[string]Flag{} // case-insensitive lookup, keyed lowercase
)

func init() {
	var names []string
	if err := yaml.Unmarshal(flagTableYAML, &names); err != nil {
		panic(fmt.Sprintf("flags: malformed flags.yaml: %v", err))
	}
	ordered = make([]Flag, len(names))
	code := uint64(1)
	for i, n := range names {
		f := Flag(n)
		ordered[i] = f
		codeOf[f] = code
		flagOf[code] = f
		byCanon[lower(n)] = f
		code <<= 1
	}
	groups = [][]Flag{
		{Public, Protected, Private},
		{Covariant, Contravariant},
		{Abstract, Final},
		{Abstract, Native},
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ByName resolves a flag by case-insensitive name, as it would appear in
// source-level modifier syntax.
func ByName(name string) (Flag, bool) {
	f, ok := byCanon[lower(name)]
	return f, ok
}

// Set is an immutable finite set of Flags, backed by a bitset so it stays
// small and comparable.
type Set struct {
	bits uint64
}

// NewSet builds a Set from individual flags.
func NewSet(fs ...Flag) Set {
	var s Set
	for _, f := range fs {
		s.bits |= codeOf[f]
	}
	return s
}

// Has reports whether f is a member of s.
func (s Set) Has(f Flag) bool {
	return s.bits&codeOf[f] != 0
}

// With returns a copy of s with f added.
func (s Set) With(f Flag) Set {
	return Set{bits: s.bits | codeOf[f]}
}

// Without returns a copy of s with f removed.
func (s Set) Without(f Flag) Set {
	return Set{bits: s.bits &^ codeOf[f]}
}

// Union returns the union of s and other.
func (s Set) Union(other Set) Set {
	return Set{bits: s.bits | other.bits}
}

// Members returns the set's flags in canonical (flags.yaml) order.
func (s Set) Members() []Flag {
	var out []Flag
	for _, f := range ordered {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Bits returns the wire encoding: a single integer from which the set can
// be reconstructed exactly via FromBits. This is the bijection on known
// flag codes referenced by spec §6.
func (s Set) Bits() uint64 {
	return s.bits
}

// FromBits reconstructs a Set from its wire encoding.
func FromBits(bits uint64) Set {
	return Set{bits: bits}
}

// Conflict returns the first conflict group that has more than one member
// present in s, or nil if s has no conflicting flags. Grounded on
// checkFlagConflicts in gypsum/flags.py.
func Conflict(s Set) []Flag {
	for _, group := range groups {
		var present []Flag
		for _, f := range group {
			if s.Has(f) {
				present = append(present, f)
			}
		}
		if len(present) > 1 {
			return present
		}
	}
	return nil
}

// String renders the set's members space-separated, in canonical order.
func (s Set) String() string {
	members := s.Members()
	out := ""
	for i, f := range members {
		if i > 0 {
			out += " "
		}
		out += string(f)
	}
	return out
}
