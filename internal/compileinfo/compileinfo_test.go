package compileinfo

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestSetAndGetType(t *testing.T) {
	info := New()
	node := new(int)
	info.SetType(node, ir.BooleanType)

	got, ok := info.Type(node)
	if !ok || got != ir.BooleanType {
		t.Fatalf("Type(node) = (%v, %v), want (boolean, true)", got, ok)
	}
}

func TestMissingEntriesReportNotOk(t *testing.T) {
	info := New()
	if _, ok := info.Type(new(int)); ok {
		t.Fatal("expected no type info for an unregistered node")
	}
	if _, ok := info.Call(new(int)); ok {
		t.Fatal("expected no call info for an unregistered node")
	}
}

func TestCallInfoRoundTrip(t *testing.T) {
	info := New()
	node := new(int)
	ci := CallInfo{Receiver: ImplicitThisReceiver, InstantiatedParameterTypes: []ir.Type{ir.I32Type}}
	info.SetCall(node, ci)

	got, ok := info.Call(node)
	if !ok || got.Receiver != ImplicitThisReceiver || len(got.InstantiatedParameterTypes) != 1 {
		t.Fatalf("Call(node) = %+v, want %+v", got, ci)
	}
}

func TestTypedNodeCount(t *testing.T) {
	info := New()
	info.SetType(new(int), ir.UnitType)
	info.SetType(new(int), ir.UnitType)
	if info.TypedNodeCount() != 2 {
		t.Fatalf("TypedNodeCount() = %d, want 2", info.TypedNodeCount())
	}
}
