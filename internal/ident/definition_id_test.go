package ident

import "testing"

func TestDefinitionIdLocalForeign(t *testing.T) {
	local := Local(3)
	if !local.IsLocal() {
		t.Error("Local() id should be local")
	}
	if local.ExternIndex != NoExtern {
		t.Errorf("Local() ExternIndex = %d, want %d", local.ExternIndex, NoExtern)
	}

	foreign := Foreign(2, 7, 1)
	if foreign.IsLocal() {
		t.Error("Foreign() id should not be local")
	}
}

func TestDefinitionIdEqualsRequiresAllThreeFields(t *testing.T) {
	a := Foreign(2, 7, 0)
	b := Foreign(2, 7, 1)
	if a.Equals(b) {
		t.Error("ids differing only by ExternIndex must not be equal")
	}

	c := Foreign(2, 7, 0)
	if !a.Equals(c) {
		t.Error("identical triples must be equal")
	}
}

func TestDefinitionIdUsableAsMapKey(t *testing.T) {
	m := map[DefinitionId]string{}
	m[Local(1)] = "one"
	m[Foreign(3, 1, 0)] = "foreign one"

	if m[Local(1)] != "one" {
		t.Error("Local id did not round-trip through a map key")
	}
	if m[Foreign(3, 1, 0)] != "foreign one" {
		t.Error("Foreign id did not round-trip through a map key")
	}
}
