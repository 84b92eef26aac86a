package ast

// PathPart is one segment of a SymbolPath: either the `super` keyword or a
// named segment. An absolute path's first part is a Named part with an
// empty Name (spec §3).
type PathPart struct {
	Super bool
	Name  string
}

// SymbolPath is an ordered list of PathPart (spec §3).
type SymbolPath struct {
	NodeBase
	Parts []PathPart
}

// GenericSymbolPath additionally records optional `::<T, ...>` type
// arguments. TypeArgs is nil when no `::<...>` was written and also for an
// empty `::<>`; the parser never produces a non-nil empty list.
type GenericSymbolPath struct {
	NodeBase
	Path     SymbolPath
	TypeArgs []Type
}

// TypeSymbolPath is a SymbolPath used in type position; the parser rejects
// `int`/`fe` as path parts here (spec §3 invariant).
type TypeSymbolPath struct {
	NodeBase
	Path SymbolPath
}
