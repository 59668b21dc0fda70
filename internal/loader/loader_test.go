package loader

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestMapLoaderLoadsRegisteredPackage(t *testing.T) {
	pkg := ir.NewPackage(ident.New("acme", "util"))
	l := NewMapLoader(pkg)

	got, err := l.Load(ident.New("acme", "util"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != pkg {
		t.Fatal("Load returned a different package instance")
	}
}

func TestMapLoaderMissingPackage(t *testing.T) {
	l := NewMapLoader()
	if _, err := l.Load(ident.New("nope")); err == nil {
		t.Fatal("expected an error for an unregistered package")
	}
}

func TestMapLoaderAdd(t *testing.T) {
	l := NewMapLoader()
	pkg := ir.NewPackage(ident.New("added"))
	l.Add(pkg)
	if _, err := l.Load(ident.New("added")); err != nil {
		t.Fatalf("Load after Add: %v", err)
	}
}
