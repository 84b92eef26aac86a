// Package ast defines the tagged-variant tree produced by recognition
// (spec §3). Every concrete type embeds NodeBase, which carries the single
// source reference spec §3's invariants require. Pattern grounded on the
// teacher's marker-interface AST (internal/compiler/microglot/ast_microglot.go
// in the retrieval pack: empty marker methods distinguishing statement/
// expression/type families, each concrete struct embedding a common NodeBase);
// the concrete variants themselves are named after
// _examples/original_source/ast/src/parsed/mod.rs, the real grammar this
// spec was distilled from.
package ast

import "github.com/powdr-lang/pilparse/internal/source"

// NodeBase is embedded by every AST type and carries its source reference,
// stamped at the start of that NodeBase's first token (spec §3 invariant).
type NodeBase struct {
	SourceRef source.SourceRef
}

func (n NodeBase) Ref() source.SourceRef { return n.SourceRef }

// At builds a NodeBase stamped with the given source reference; the
// parser calls this once per production at the start of its first token.
func At(ref source.SourceRef) NodeBase { return NodeBase{SourceRef: ref} }

// Node is satisfied by every AST type.
type Node interface {
	Ref() source.SourceRef
}

// Expression is the marker interface for the expression forms (spec §3,
// supplemented per SPEC_FULL.md §12).
type Expression interface {
	Node
	expressionNode()
}

// Statement is the marker interface shared loosely across the three
// statement dialects; PilStatement, ModuleStatement and MachineStatement
// each define their own narrower marker on top of this one.
type Statement interface {
	Node
	statementNode()
}

// Pattern is the marker interface for match-arm/lambda-parameter/let
// patterns (spec §4.3).
type Pattern interface {
	Node
	patternNode()
}

// Type is the marker interface for type expressions (spec §3).
type Type interface {
	Node
	typeNode()
}
