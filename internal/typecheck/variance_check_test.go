package typecheck

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestCheckVarianceAllowsCovariantValField(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Covariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	box := &ir.Class{
		Name:           ident.New("Box"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{classTy(f.root)},
		Fields:         []*ir.Field{{Name: ident.New("value"), Type: &ir.VariableType{Param: tp}}},
	}
	if err := f.pass.checkVariance(box); err != nil {
		t.Fatalf("unexpected error for a covariant val field: %v", err)
	}
}

func TestCheckVarianceRejectsCovariantVarField(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Covariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	box := &ir.Class{
		Name:           ident.New("Box"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{classTy(f.root)},
		Fields:         []*ir.Field{{Name: ident.New("value"), Type: &ir.VariableType{Param: tp}, Flags: flags.NewSet(flags.Var)}},
	}
	if err := f.pass.checkVariance(box); err == nil {
		t.Fatal("expected an error using a covariant parameter in an invariant (var field) position")
	}
}

func TestCheckVarianceRejectsContravariantInReturnPosition(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Contravariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	sink := &ir.Class{
		Name:           ident.New("Sink"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{classTy(f.root)},
	}
	sink.Methods = []*ir.Function{{
		Name:       ident.New("get"),
		Parameters: []ir.Type{classTy(sink)},
		ParamVars:  []*ir.Variable{{Name: ident.New("this")}},
		ReturnType: &ir.VariableType{Param: tp},
	}}
	if err := f.pass.checkVariance(sink); err == nil {
		t.Fatal("expected an error using a contravariant parameter in a covariant (return) position")
	}
}

func TestCheckVarianceAllowsContravariantInParameterPosition(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Contravariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	sink := &ir.Class{
		Name:           ident.New("Sink"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{classTy(f.root)},
	}
	sink.Methods = []*ir.Function{{
		Name:       ident.New("put"),
		Parameters: []ir.Type{classTy(sink), &ir.VariableType{Param: tp}},
		ParamVars:  []*ir.Variable{{Name: ident.New("this")}, {Name: ident.New("x")}},
		ReturnType: classTy(f.root),
	}}
	if err := f.pass.checkVariance(sink); err != nil {
		t.Fatalf("unexpected error using a contravariant parameter in a parameter position: %v", err)
	}
}

func TestCheckVarianceExemptsConstructorParameters(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Covariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	box := &ir.Class{
		Name:           ident.New("Box"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{classTy(f.root)},
	}
	box.Constructors = []*ir.Function{{
		Name:       ident.New("init"),
		Parameters: []ir.Type{classTy(box), &ir.VariableType{Param: tp}},
		ParamVars:  []*ir.Variable{{Name: ident.New("this")}, {Name: ident.New("x")}},
		ReturnType: ir.UnitType,
		Flags:      flags.NewSet(flags.Constructor),
	}}
	if err := f.pass.checkVariance(box); err != nil {
		t.Fatalf("constructor parameters should be exempt from variance checking: %v", err)
	}
}

func TestCheckVarianceRejectsCovariantSupertypeArgumentUnderContravariantUsage(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), Variance: ir.Contravariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	boxTp := &ir.TypeParameter{Name: ident.New("U"), Variance: ir.Covariant, UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	box := &ir.Class{Name: ident.New("Box"), TypeParameters: []*ir.TypeParameter{boxTp}, Supertypes: []ir.Type{classTy(f.root)}}
	derived := &ir.Class{
		Name:           ident.New("Derived"),
		TypeParameters: []*ir.TypeParameter{tp},
		Supertypes:     []ir.Type{&ir.ClassType{Def: box, Arguments: []ir.Type{&ir.VariableType{Param: tp}}}, classTy(f.root)},
	}
	if err := f.pass.checkVariance(derived); err == nil {
		t.Fatal("expected an error placing a contravariant parameter in a covariant supertype argument position")
	}
}
