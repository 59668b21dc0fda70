package ident

import "fmt"

// PackageIndex identifies a package within a compilation: 0 is always the
// target package being compiled; any other value names a foreign package
// reached through one of the target's Dependencies.
type PackageIndex int

// TargetPackage is the PackageIndex of the package currently being
// analyzed.
const TargetPackage PackageIndex = 0

// DefinitionId is the (packageIndex, localIndex, externIndex) triple from
// spec §3. A definition is local if PackageIndex is the target package;
// foreign otherwise. ExternIndex discriminates between multiple extern
// records that a foreign id could otherwise alias to — this cannot happen
// for correct inputs, but the field exists so that it is detected rather
// than silently collapsed if it ever does.
type DefinitionId struct {
	PackageIndex PackageIndex
	LocalIndex   int
	ExternIndex  int // -1 when this id has no extern record (local definitions)
}

// NoExtern is the ExternIndex sentinel for ids that are not (yet, or
// never) externalized.
const NoExtern = -1

// Local builds a DefinitionId for a definition owned by the target
// package.
func Local(localIndex int) DefinitionId {
	return DefinitionId{PackageIndex: TargetPackage, LocalIndex: localIndex, ExternIndex: NoExtern}
}

// Foreign builds a DefinitionId for a definition owned by another package,
// identified by its extern record index within that package's Dependency.
func Foreign(pkg PackageIndex, localIndex, externIndex int) DefinitionId {
	return DefinitionId{PackageIndex: pkg, LocalIndex: localIndex, ExternIndex: externIndex}
}

// IsLocal reports whether this id names a definition owned by the target
// package.
func (id DefinitionId) IsLocal() bool {
	return id.PackageIndex == TargetPackage
}

// Equals compares all three fields: two ids are equal iff package, local
// index, and extern index all match.
func (id DefinitionId) Equals(other DefinitionId) bool {
	return id == other
}

// String renders a debug form, e.g. "0:3" for a local id or "2:7#1" for a
// foreign one with an extern discriminator.
func (id DefinitionId) String() string {
	if id.IsLocal() || id.ExternIndex == NoExtern {
		return fmt.Sprintf("%d:%d", id.PackageIndex, id.LocalIndex)
	}
	return fmt.Sprintf("%d:%d#%d", id.PackageIndex, id.LocalIndex, id.ExternIndex)
}
