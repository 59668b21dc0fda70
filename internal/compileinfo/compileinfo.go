// Package compileinfo implements component C7: the side tables the type
// analysis pass fills in, keyed by AST node identity rather than stored
// on the nodes themselves (spec §4.7), mirroring how internal/semantic's
// PassContext in the teacher keeps per-node analysis results off the AST.
package compileinfo

import (
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// Node is any AST node usable as a side-table key; internal/ast's nodes
// all satisfy it by virtue of being distinct pointer values.
type Node any

// ReceiverStrategy describes how a call's receiver is obtained.
type ReceiverStrategy uint8

const (
	// NoReceiver is used for free function calls.
	NoReceiver ReceiverStrategy = iota
	// ExplicitReceiver is used when the receiver expression is evaluated
	// as written (obj.method(...)).
	ExplicitReceiver
	// ImplicitThisReceiver is used for unqualified calls resolved against
	// the enclosing method's `this`.
	ImplicitThisReceiver
	// StaticReceiver is used for static/companion dispatch requiring no
	// instance.
	StaticReceiver
)

// DefnInfo pairs a definition with the scope it was declared in, recorded
// for AST nodes that introduce a definition (spec §4.7 "defnInfo").
type DefnInfo struct {
	Def   any // one of *ir.Class, *ir.Trait, *ir.Function, *ir.Field, *ir.Global, *ir.Variable, *ir.TypeParameter
	Scope ident.Name
}

// UseInfo records what a name-use node resolved to, and whether an
// implicit receiver needs to be synthesized to reach it (spec §4.7
// "useInfo").
type UseInfo struct {
	Def              any
	ReceiverNeeded bool
}

// CallInfo records the outcome of call-site resolution (spec §4.4 "Call-site
// resolution", §4.7 "callInfo"): the type arguments written explicitly at
// the call site (type arguments inferred during resolution are not
// recorded; TypeArguments is nil then), the instantiated parameter types
// after substitution, and how the receiver is obtained.
type CallInfo struct {
	TypeArguments             []ir.Type
	InstantiatedParameterTypes []ir.Type
	Receiver                  ReceiverStrategy
	Target                    *ir.Function
}

// ClosureInfo records the synthetic class materialized for a lambda or
// nested function, and the set of captured variables forming its closure
// context (spec §4.7 "closureInfo").
type ClosureInfo struct {
	ClosureClass      *ir.Class
	CapturedVariables []*ir.Variable
}

// Info is the full set of side tables the pass populates over one
// compilation unit's AST, built fresh per run (spec §5: "a cancelled
// analysis discards partial CompileInfo without attempting recovery" —
// there is nothing to explicitly discard beyond dropping this value).
type Info struct {
	defn    map[Node]DefnInfo
	use     map[Node]UseInfo
	typ     map[Node]ir.Type
	call    map[Node]CallInfo
	closure map[Node]ClosureInfo
}

// New creates an empty side-table set.
func New() *Info {
	return &Info{
		defn:    map[Node]DefnInfo{},
		use:     map[Node]UseInfo{},
		typ:     map[Node]ir.Type{},
		call:    map[Node]CallInfo{},
		closure: map[Node]ClosureInfo{},
	}
}

func (i *Info) SetDefn(n Node, d DefnInfo)       { i.defn[n] = d }
func (i *Info) Defn(n Node) (DefnInfo, bool)     { d, ok := i.defn[n]; return d, ok }

func (i *Info) SetUse(n Node, u UseInfo)         { i.use[n] = u }
func (i *Info) Use(n Node) (UseInfo, bool)       { u, ok := i.use[n]; return u, ok }

func (i *Info) SetType(n Node, t ir.Type)        { i.typ[n] = t }
func (i *Info) Type(n Node) (ir.Type, bool)      { t, ok := i.typ[n]; return t, ok }

func (i *Info) SetCall(n Node, c CallInfo)       { i.call[n] = c }
func (i *Info) Call(n Node) (CallInfo, bool)     { c, ok := i.call[n]; return c, ok }

func (i *Info) SetClosure(n Node, c ClosureInfo) { i.closure[n] = c }
func (i *Info) Closure(n Node) (ClosureInfo, bool) { c, ok := i.closure[n]; return c, ok }

// TypedNodeCount reports how many nodes currently carry a type, mostly
// useful for tests asserting the pass covered what it was supposed to.
func (i *Info) TypedNodeCount() int { return len(i.typ) }
