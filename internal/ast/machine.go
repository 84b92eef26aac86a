package ast

// MachineParam is a machine's latch or operation-id parameter, either an
// identifier or the `_` placeholder (spec §4.4).
type MachineParam struct {
	Underscore bool
	Name       string
}

type MachineDefinition struct {
	NodeBase
	Name        string
	Latch       MachineParam
	OperationID MachineParam
	Statements  []MachineStatement
}

// MachineStatement is the marker for the 9 machine-body statement variants
// (spec §3, §4.4).
type MachineStatement interface {
	Statement
	machineStatementNode()
}

type MachDegree struct {
	NodeBase
	Value Expression
}

func (MachDegree) statementNode()        {}
func (MachDegree) machineStatementNode() {}

type MachCallSelectors struct {
	NodeBase
	Name string
}

func (MachCallSelectors) statementNode()        {}
func (MachCallSelectors) machineStatementNode() {}

type MachSubmachine struct {
	NodeBase
	TypePath SymbolPath
	Name     string
}

func (MachSubmachine) statementNode()        {}
func (MachSubmachine) machineStatementNode() {}

type RegisterFlag int

const (
	RegisterFlagNone RegisterFlag = iota
	RegisterFlagPC                // @pc
	RegisterFlagAssign            // <=
	RegisterFlagReadOnly          // @r
)

// MachRegisterDeclaration accepts only the flag, not a default-update
// expression: preserved limitation, see spec §9 and DESIGN.md.
type MachRegisterDeclaration struct {
	NodeBase
	Name string
	Flag RegisterFlag
}

func (MachRegisterDeclaration) statementNode()        {}
func (MachRegisterDeclaration) machineStatementNode() {}

// InstructionParam is one instruction/function/operation parameter.
type InstructionParam struct {
	Name   string
	Type   Type // nil if untyped
	Output bool
}

// InstructionBody is the marker for the 4 instruction-body forms (spec
// §4.4): empty, a brace-enclosed element list, a plookup callable
// reference, or a permutation callable reference.
type InstructionBody interface {
	Node
	instructionBodyNode()
}

type InstructionBodyEmpty struct{ NodeBase }

func (InstructionBodyEmpty) instructionBodyNode() {}

// InstructionBodyElem is one element of a brace-enclosed instruction body:
// a plookup identity, a permutation identity, or a bare expression.
type InstructionBodyElem struct {
	Plookup     *PilPlookupIdentity
	Permutation *PilPermutationIdentity
	Expr        Expression
}

type InstructionBodyList struct {
	NodeBase
	Elements []InstructionBodyElem
}

func (InstructionBodyList) instructionBodyNode() {}

// CallableRef is `instance.callable inputs [-> outputs]` (spec §4.4);
// Outputs is nil when the arrow clause is omitted.
type CallableRef struct {
	Instance string
	Callable string
	Inputs   []Expression
	Outputs  []Expression
}

type InstructionBodyPlookupRef struct {
	NodeBase
	Callable CallableRef
}

func (InstructionBodyPlookupRef) instructionBodyNode() {}

type InstructionBodyPermutationRef struct {
	NodeBase
	Callable CallableRef
}

func (InstructionBodyPermutationRef) instructionBodyNode() {}

type MachInstructionDeclaration struct {
	NodeBase
	Name   string
	Params []InstructionParam
	Body   InstructionBody
}

func (MachInstructionDeclaration) statementNode()        {}
func (MachInstructionDeclaration) machineStatementNode() {}

type LinkFlag int

const (
	LinkFlagPlookup     LinkFlag = iota // =>
	LinkFlagPermutation                 // ~>
)

type MachLinkDeclaration struct {
	NodeBase
	Flag     LinkFlag
	Callable CallableRef
}

func (MachLinkDeclaration) statementNode()        {}
func (MachLinkDeclaration) machineStatementNode() {}

// MachEmbeddedPil wraps a PIL statement appearing directly in a machine
// body (spec §4.4).
type MachEmbeddedPil struct {
	NodeBase
	Statement PilStatement
}

func (MachEmbeddedPil) statementNode()        {}
func (MachEmbeddedPil) machineStatementNode() {}

// FunctionStmt is the marker for the 7 function-body statement forms
// (spec §4.4): assignment, label, the three debug directives, return,
// and instruction call.
type FunctionStmt interface {
	Node
	functionStmtNode()
}

// FuncAssignment covers both `ids <== expr ;` (Regs nil) and
// `ids <= regs = expr ;` (Regs set).
type FuncAssignment struct {
	NodeBase
	Ids   []string
	Regs  []string
	Value Expression
}

func (FuncAssignment) functionStmtNode() {}

type FuncLabel struct {
	NodeBase
	Name string
}

func (FuncLabel) functionStmtNode() {}

type FuncDebugFile struct {
	NodeBase
	Args []string
}

func (FuncDebugFile) functionStmtNode() {}

type FuncDebugLoc struct {
	NodeBase
	Args []string
}

func (FuncDebugLoc) functionStmtNode() {}

type FuncDebugInsn struct {
	NodeBase
	Args []string
}

func (FuncDebugInsn) functionStmtNode() {}

type FuncReturn struct {
	NodeBase
	Values []Expression
}

func (FuncReturn) functionStmtNode() {}

type FuncInstructionCall struct {
	NodeBase
	Name string
	Args []Expression
}

func (FuncInstructionCall) functionStmtNode() {}

type MachFunctionDeclaration struct {
	NodeBase
	Name   string
	Params []InstructionParam
	Body   []FunctionStmt
}

func (MachFunctionDeclaration) statementNode()        {}
func (MachFunctionDeclaration) machineStatementNode() {}

// MachOperationDeclaration's Id is nil when the operation declares no
// explicit numeric id.
type MachOperationDeclaration struct {
	NodeBase
	Name   string
	Id     Expression
	Params []InstructionParam
}

func (MachOperationDeclaration) statementNode()        {}
func (MachOperationDeclaration) machineStatementNode() {}
