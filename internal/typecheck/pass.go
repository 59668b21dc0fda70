package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/compileinfo"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// Pass drives the three-layer Type Analysis Pass (spec §4.4) over one
// target Package, side-annotating a compileinfo.Info rather than the AST
// itself (spec §4.7). It plays the role the teacher's per-pass structs
// (DeclarationPass, TypeResolutionPass, ValidationPass, ContractPass)
// play collectively, but as a single pass with on-demand recursion
// instead of a fixed sequence of full-tree walks — required by spec §5's
// "on-demand ensureTypeInfoForDefn recursion" ordering guarantee.
type Pass struct {
	Package *ir.Package
	Info    *compileinfo.Info
	Lattice *ir.Lattice
	Loader  ir.Loader

	decl *declState
}

// New builds a Pass ready to run over pkg.
func New(pkg *ir.Package, lat *ir.Lattice, loader ir.Loader) *Pass {
	return &Pass{
		Package: pkg,
		Info:    compileinfo.New(),
		Lattice: lat,
		Loader:  loader,
		decl:    newDeclState(),
	}
}

// Run executes all three layers over the target package: declaration
// typing for every top-level definition, body checking for every
// function with a body, and the post-pass obligations (spec §4.4 layers
// 1–3). It stops at the first error — "failures are never partial-commit"
// (spec §5) — leaving Info in a caller-discarded state.
func (p *Pass) Run() error {
	for _, cls := range p.Package.Classes {
		if err := p.ensureClassType(cls); err != nil {
			return err
		}
	}
	for _, tr := range p.Package.Traits {
		if err := p.ensureTraitType(tr); err != nil {
			return err
		}
	}
	for _, fn := range p.Package.Functions {
		if err := p.ensureFunctionType(fn); err != nil {
			return err
		}
	}

	for _, cls := range p.Package.Classes {
		for _, m := range cls.Methods {
			if err := p.checkFunctionBody(m); err != nil {
				return err
			}
		}
		if cls.PrimaryConstructor != nil {
			if err := p.checkFunctionBody(cls.PrimaryConstructor); err != nil {
				return err
			}
		}
		for _, c := range cls.Constructors {
			if err := p.checkFunctionBody(c); err != nil {
				return err
			}
		}
	}
	for _, fn := range p.Package.Functions {
		if err := p.checkFunctionBody(fn); err != nil {
			return err
		}
	}

	for _, cls := range p.Package.Classes {
		if err := p.resolveOverrides(cls); err != nil {
			return err
		}
		if err := p.checkVariance(cls); err != nil {
			return err
		}
	}

	return nil
}
