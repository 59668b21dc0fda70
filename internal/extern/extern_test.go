package extern

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestFunctionExternIsIdempotent(t *testing.T) {
	dep := &ir.Dependency{}
	fn := &ir.Function{Id: ident.DefinitionId{PackageIndex: 1, LocalIndex: 1}, Name: ident.New("f"), Flags: flags.NewSet(flags.Public)}

	first := Function(dep, fn)
	second := Function(dep, fn)
	if first != second {
		t.Fatal("externalizing the same function twice should return the same record")
	}
	if len(dep.Functions) != 1 {
		t.Fatalf("len(dep.Functions) = %d, want 1", len(dep.Functions))
	}
}

func TestFunctionExternAddsExternFlag(t *testing.T) {
	dep := &ir.Dependency{}
	fn := &ir.Function{Id: ident.DefinitionId{PackageIndex: 1, LocalIndex: 1}, Name: ident.New("f"), Flags: flags.NewSet(flags.Public, flags.Override)}

	ext := Function(dep, fn)
	if !ext.Flags.Has(flags.Extern) {
		t.Fatal("externalized function should carry the EXTERN flag")
	}
	if ext.Flags.Has(flags.Override) {
		t.Fatal("OVERRIDE is locally-irrelevant across a package boundary and should be trimmed")
	}
}

func TestFieldsFiltersByVisibility(t *testing.T) {
	pub := &ir.Field{Id: ident.DefinitionId{PackageIndex: 1, LocalIndex: 2}, Name: ident.New("x"), Flags: flags.NewSet(flags.Public)}
	priv := &ir.Field{Id: ident.DefinitionId{PackageIndex: 1, LocalIndex: 3}, Name: ident.New("y"), Flags: flags.NewSet(flags.Private)}

	out := fields([]*ir.Field{pub, priv})
	if len(out) != 1 || out[0].Name.Short() != "x" {
		t.Fatalf("fields() = %v, want only the public field", out)
	}
}

func TestClassExternIsIdempotent(t *testing.T) {
	dep := &ir.Dependency{}
	cls := &ir.Class{Id: ident.DefinitionId{PackageIndex: 1, LocalIndex: 1}, Name: ident.New("C")}

	first := Class(dep, cls, nil)
	second := Class(dep, cls, nil)
	if first != second {
		t.Fatal("externalizing the same class twice should return the same record")
	}
}
