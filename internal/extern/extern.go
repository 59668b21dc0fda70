// Package extern implements component C6: projecting a foreign
// definition graph into the ir.*Extern record shapes owned by
// ir.Dependency (spec §4.6 "Externalization"). Kept separate from
// internal/ir so the policy of what's reachable and what's trimmed
// doesn't have to live inside the core data model — ir only owns the
// record shapes and the seen-set bookkeeping that makes this idempotent.
package extern

import (
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// Class externalizes cls into dep, recursively externalizing its type
// parameters, and only the fields/methods reachable (public/protected,
// or potentially dispatched to) from the target package. Supertypes are
// copied as the ir.Type values cls holds; the classes and traits they
// name are not externalized into dep by this call. Idempotent: a class
// already externalized into dep returns its existing record.
func Class(dep *ir.Dependency, cls *ir.Class, isReachable func(*ir.Function) bool) *ir.ClassExtern {
	if i, ok := dep.SeenIndex(cls.Id); ok {
		return dep.Classes[i]
	}

	ext := &ir.ClassExtern{Id: cls.Id, Name: cls.Name}
	dep.Classes = append(dep.Classes, ext)
	dep.MarkSeen(cls.Id, len(dep.Classes)-1)

	ext.TypeParameters = typeParameters(dep, cls.TypeParameters)
	ext.Supertypes = cls.Supertypes // copied as-is; the classes they name are not externalized here.
	ext.Fields = fields(cls.Fields)
	ext.Methods = functions(dep, reachableMethods(cls.Methods, isReachable))
	return ext
}

// Trait externalizes a trait the same way as Class, minus fields (traits
// carry none).
func Trait(dep *ir.Dependency, tr *ir.Trait, isReachable func(*ir.Function) bool) *ir.TraitExtern {
	if i, ok := dep.SeenIndex(tr.Id); ok {
		return dep.Traits[i]
	}

	ext := &ir.TraitExtern{Id: tr.Id, Name: tr.Name}
	dep.Traits = append(dep.Traits, ext)
	dep.MarkSeen(tr.Id, len(dep.Traits)-1)

	ext.TypeParameters = typeParameters(dep, tr.TypeParameters)
	ext.Supertypes = tr.Supertypes
	ext.Methods = functions(dep, reachableMethods(tr.Methods, isReachable))
	return ext
}

// Function externalizes a single function/method/constructor: name,
// type parameters, parameter types, return type, and a flag set with
// EXTERN added.
func Function(dep *ir.Dependency, fn *ir.Function) *ir.FunctionExtern {
	if i, ok := dep.SeenIndex(fn.Id); ok {
		return dep.Functions[i]
	}

	ext := &ir.FunctionExtern{
		Id:             fn.Id,
		Name:           fn.Name,
		TypeParameters: typeParameters(dep, fn.TypeParameters),
		Parameters:     fn.Parameters,
		ReturnType:     fn.ReturnType,
		Flags:          trimFlags(fn),
	}
	dep.Functions = append(dep.Functions, ext)
	dep.MarkSeen(fn.Id, len(dep.Functions)-1)
	return ext
}

// Global externalizes a package-level field: name and type.
func Global(dep *ir.Dependency, g *ir.Global) *ir.GlobalExtern {
	if i, ok := dep.SeenIndex(g.Id); ok {
		return dep.Globals[i]
	}
	ext := &ir.GlobalExtern{Id: g.Id, Name: g.Name, Type: g.Type}
	dep.Globals = append(dep.Globals, ext)
	dep.MarkSeen(g.Id, len(dep.Globals)-1)
	return ext
}

func typeParameters(dep *ir.Dependency, ps []*ir.TypeParameter) []*ir.TypeParameterExtern {
	out := make([]*ir.TypeParameterExtern, len(ps))
	for i, p := range ps {
		if idx, ok := dep.SeenIndex(p.Id); ok {
			out[i] = dep.TypeParameters[idx]
			continue
		}
		ext := &ir.TypeParameterExtern{
			Id: p.Id, Name: p.Name,
			UpperBound: p.UpperBound, LowerBound: p.LowerBound,
			Variance: p.Variance,
		}
		dep.TypeParameters = append(dep.TypeParameters, ext)
		dep.MarkSeen(p.Id, len(dep.TypeParameters)-1)
		out[i] = ext
	}
	return out
}

func functions(dep *ir.Dependency, fns []*ir.Function) []*ir.FunctionExtern {
	out := make([]*ir.FunctionExtern, len(fns))
	for i, fn := range fns {
		out[i] = Function(dep, fn)
	}
	return out
}

func fields(fs []*ir.Field) []*ir.GlobalExtern {
	var out []*ir.GlobalExtern
	for _, f := range fs {
		if !f.Flags.Has(flags.Public) && !f.Flags.Has(flags.Protected) {
			continue
		}
		out = append(out, &ir.GlobalExtern{Id: f.Id, Name: f.Name, Type: f.Type})
	}
	return out
}

func reachableMethods(methods []*ir.Function, isReachable func(*ir.Function) bool) []*ir.Function {
	if isReachable == nil {
		return methods
	}
	var out []*ir.Function
	for _, m := range methods {
		if isReachable(m) {
			out = append(out, m)
		}
	}
	return out
}

func trimFlags(fn *ir.Function) flags.Set {
	return fn.Flags.Without(flags.Override).With(flags.Extern)
}
