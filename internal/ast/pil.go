package ast

// PilStatement is the marker for the 14 constraint-file statement variants
// (spec §3, §4.4), named after original_source/ast/src/parsed/mod.rs's
// PilStatement enum.
type PilStatement interface {
	Statement
	pilStatementNode()
}

type PilInclude struct {
	NodeBase
	Path string
}

func (PilInclude) statementNode()    {}
func (PilInclude) pilStatementNode() {}

type PilNamespace struct {
	NodeBase
	Path   SymbolPath
	Degree Expression // nil if omitted
}

func (PilNamespace) statementNode()    {}
func (PilNamespace) pilStatementNode() {}

type PilLet struct {
	NodeBase
	Name   string
	Scheme *TypeScheme // nil if no type vars and no type ascription
	Value  Expression  // nil if no initializer
}

func (PilLet) statementNode()    {}
func (PilLet) pilStatementNode() {}

// PilConstantDefinition is the legacy `constant %Name = expr;` form (spec
// §6 keyword "constant").
type PilConstantDefinition struct {
	NodeBase
	Name  string
	Value Expression
}

func (PilConstantDefinition) statementNode()    {}
func (PilConstantDefinition) pilStatementNode() {}

// PilPolynomialDefinition is `pol name = expr;`, a defined (non-witness,
// non-constant-array) polynomial.
type PilPolynomialDefinition struct {
	NodeBase
	Name  string
	Value Expression
}

func (PilPolynomialDefinition) statementNode()    {}
func (PilPolynomialDefinition) pilStatementNode() {}

type PilPublicDeclaration struct {
	NodeBase
	Name       string
	Polynomial GenericSymbolPath
	ArrayIndex Expression // nil if the referenced polynomial is not an array
	RowIndex   Expression
}

func (PilPublicDeclaration) statementNode()    {}
func (PilPublicDeclaration) pilStatementNode() {}

// PolynomialName is one name in a `pol commit`/`pol constant` name list,
// optionally sized as an array (`name[N]`).
type PolynomialName struct {
	Name        string
	ArrayLength Expression // nil if not an array
}

type PilPolynomialConstantDeclaration struct {
	NodeBase
	Names []PolynomialName
}

func (PilPolynomialConstantDeclaration) statementNode()    {}
func (PilPolynomialConstantDeclaration) pilStatementNode() {}

// PilPolynomialConstantDefinition is `pol constant name = array_literal`;
// Value is the array micro-grammar described in spec §9 (see ArrayExpr).
type PilPolynomialConstantDefinition struct {
	NodeBase
	Name  string
	Value ArrayExpr
}

func (PilPolynomialConstantDefinition) statementNode()    {}
func (PilPolynomialConstantDefinition) pilStatementNode() {}

// PilPolynomialCommitDeclaration covers both `pol commit` forms (spec
// §4.4): a bare name list, or a single name tied to a query lambda body
// via params. QueryBody is nil for the bare-name-list form.
type PilPolynomialCommitDeclaration struct {
	NodeBase
	Names       []PolynomialName
	Stage       Expression // nil if no stage(N) annotation
	QueryParams []Pattern  // non-nil only on the tied-query form
	QueryBody   Expression // non-nil only on the tied-query form
}

func (PilPolynomialCommitDeclaration) statementNode()    {}
func (PilPolynomialCommitDeclaration) pilStatementNode() {}

type EnumVariant struct {
	Name   string
	Fields []Type // nil if the variant carries no payload
}

type PilEnumDeclaration struct {
	NodeBase
	Name     string
	TypeVars []string
	Variants []EnumVariant
}

func (PilEnumDeclaration) statementNode()    {}
func (PilEnumDeclaration) pilStatementNode() {}

// SelectedExpressions is the `se` production from spec §4.4: either a bare
// expression (Bare set, List nil) or a brace-enclosed, optionally
// selector-guarded list (List set, possibly empty).
type SelectedExpressions struct {
	Selector Expression // nil if no selector guard
	Bare     Expression
	List     []Expression
}

type PilPlookupIdentity struct {
	NodeBase
	Left  SelectedExpressions
	Right SelectedExpressions
}

func (PilPlookupIdentity) statementNode()    {}
func (PilPlookupIdentity) pilStatementNode() {}

type PilPermutationIdentity struct {
	NodeBase
	Left  SelectedExpressions
	Right SelectedExpressions
}

func (PilPermutationIdentity) statementNode()    {}
func (PilPermutationIdentity) pilStatementNode() {}

type PilConnectIdentity struct {
	NodeBase
	Left  []Expression
	Right []Expression
}

func (PilConnectIdentity) statementNode()    {}
func (PilConnectIdentity) pilStatementNode() {}

type PilExpressionStatement struct {
	NodeBase
	Value Expression
}

func (PilExpressionStatement) statementNode()    {}
func (PilExpressionStatement) pilStatementNode() {}

// PILFile is the constraint-file root (spec §3).
type PILFile struct {
	Statements []PilStatement
}

// ArrayExpr is the separate array micro-grammar used by
// PilPolynomialConstantDefinition (spec §9): a left-associated Concat tree
// of Value/RepeatedValue leaves, grounded on original_source's
// ArrayExpression::{Value, RepeatedValue, Concat}.
type ArrayExpr interface {
	Node
	arrayExprNode()
}

type ArrayExprValue struct {
	NodeBase
	Elements []Expression
}

func (ArrayExprValue) arrayExprNode() {}

type ArrayExprRepeatedValue struct {
	NodeBase
	Elements []Expression
}

func (ArrayExprRepeatedValue) arrayExprNode() {}

type ArrayExprConcat struct {
	NodeBase
	Left  ArrayExpr
	Right ArrayExpr
}

func (ArrayExprConcat) arrayExprNode() {}
