package ast

// ModuleStatement is the marker for module-file statements (spec §3): a
// SymbolDefinition wrapping a machine, a module-level let, an enum
// declaration, an import, or a nested/external module reference.
type ModuleStatement interface {
	Statement
	moduleStatementNode()
}

type ModMachine struct {
	NodeBase
	Name string
	Def  MachineDefinition
}

func (ModMachine) statementNode()       {}
func (ModMachine) moduleStatementNode() {}

type ModLet struct {
	NodeBase
	Name   string
	Scheme *TypeScheme
	Value  Expression
}

func (ModLet) statementNode()       {}
func (ModLet) moduleStatementNode() {}

type ModEnum struct {
	NodeBase
	Name     string
	TypeVars []string
	Variants []EnumVariant
}

func (ModEnum) statementNode()       {}
func (ModEnum) moduleStatementNode() {}

// ModImport is `use path [as alias];`; Alias is empty when not given.
type ModImport struct {
	NodeBase
	Path  SymbolPath
	Alias string
}

func (ModImport) statementNode()       {}
func (ModImport) moduleStatementNode() {}

// ModModule covers both `mod name;` (Body nil, an external module
// reference) and `mod name { ... }` (Body non-nil, a local module).
type ModModule struct {
	NodeBase
	Name string
	Body *ASMModule
}

func (ModModule) statementNode()       {}
func (ModModule) moduleStatementNode() {}

// ASMModule is the module-file root (spec §3).
type ASMModule struct {
	Statements []ModuleStatement
}
