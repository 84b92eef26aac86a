package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parseMachineDefinition parses `machine Name [(latch, opId)] { ... }`
// (spec §4.4). The optional parenthesized pair names the machine's latch
// and operation-id columns; either may be `_` to leave it unnamed.
func (p *parser) parseMachineDefinition(start token.Token) (ast.MachineDefinition, exc.Exception) {
	if _, e := p.advance(); e != nil { // machine
		return ast.MachineDefinition{}, e
	}
	name, e := p.identText(true)
	if e != nil {
		return ast.MachineDefinition{}, e
	}
	var latch, opID ast.MachineParam
	if p.at(token.TypeParenOpen) {
		if _, e := p.advance(); e != nil {
			return ast.MachineDefinition{}, e
		}
		latch, e = p.parseMachineParam()
		if e != nil {
			return ast.MachineDefinition{}, e
		}
		if _, e := p.expectOne(token.TypeComma); e != nil {
			return ast.MachineDefinition{}, e
		}
		opID, e = p.parseMachineParam()
		if e != nil {
			return ast.MachineDefinition{}, e
		}
		if _, e := p.expectOne(token.TypeParenClose); e != nil {
			return ast.MachineDefinition{}, e
		}
	}
	if _, e := p.expectOne(token.TypeCurlyOpen); e != nil {
		return ast.MachineDefinition{}, e
	}
	var stmts []ast.MachineStatement
	for {
		t, e := p.peek()
		if e != nil {
			return ast.MachineDefinition{}, e
		}
		if t.Type == token.TypeCurlyClose {
			break
		}
		stmt, e := p.parseMachineStatement()
		if e != nil {
			return ast.MachineDefinition{}, e
		}
		stmts = append(stmts, stmt)
	}
	if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
		return ast.MachineDefinition{}, e
	}
	return ast.MachineDefinition{
		NodeBase: ast.At(start.Ref), Name: name.Text,
		Latch: latch, OperationID: opID, Statements: stmts,
	}, nil
}

func (p *parser) parseMachineParam() (ast.MachineParam, exc.Exception) {
	if p.at(token.TypeUnderscore) {
		if _, e := p.advance(); e != nil {
			return ast.MachineParam{}, e
		}
		return ast.MachineParam{Underscore: true}, nil
	}
	name, e := p.identText(false)
	if e != nil {
		return ast.MachineParam{}, e
	}
	return ast.MachineParam{Name: name.Text}, nil
}

// parseMachineStatement dispatches on the leading token to one of the 9
// machine-body statement forms (spec §4.4).
func (p *parser) parseMachineStatement() (ast.MachineStatement, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordDegree:
		return p.parseMachDegree(t)
	case token.TypeKeywordCallSelectors:
		return p.parseMachCallSelectors(t)
	case token.TypeKeywordReg:
		return p.parseMachRegister(t)
	case token.TypeKeywordInstr:
		return p.parseMachInstruction(t)
	case token.TypeKeywordLink:
		return p.parseMachLink(t)
	case token.TypeKeywordFunction:
		return p.parseMachFunction(t)
	case token.TypeKeywordOperation:
		return p.parseMachOperation(t)
	case token.TypeKeywordLet, token.TypeKeywordPol, token.TypeKeywordNamespace,
		token.TypeKeywordInclude, token.TypeKeywordConstant, token.TypeKeywordEnum,
		token.TypeKeywordPublic:
		stmt, e := p.parsePilStatement()
		if e != nil {
			return nil, e
		}
		return ast.MachEmbeddedPil{NodeBase: ast.At(t.Ref), Statement: stmt}, nil
	default:
		// A submachine declaration: `TypePath name;` (spec §4.4). Any
		// remaining lead token that isn't one of the above is interpreted
		// this way; an invalid lead surfaces as a path-parse error.
		return p.parseMachSubmachine(t)
	}
}

func (p *parser) parseMachDegree(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeEqual); e != nil {
		return nil, e
	}
	value, e := p.parseExpression()
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachDegree{NodeBase: ast.At(start.Ref), Value: value}, nil
}

func (p *parser) parseMachCallSelectors(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeEqual); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachCallSelectors{NodeBase: ast.At(start.Ref), Name: name.Text}, nil
}

func (p *parser) parseMachSubmachine(start token.Token) (ast.MachineStatement, exc.Exception) {
	path, e := p.parseSymbolPath(false)
	if e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachSubmachine{NodeBase: ast.At(start.Ref), TypePath: path, Name: name.Text}, nil
}

// parseMachRegister parses `reg name[@pc|<=|@r];` (spec §4.4). A
// default-update expression after `<=` is not accepted; see DESIGN.md.
func (p *parser) parseMachRegister(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	flag := ast.RegisterFlagNone
	if p.at(token.TypeSquareOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		t, e := p.peek()
		if e != nil {
			return nil, e
		}
		switch t.Type {
		case token.TypeAt:
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			pcOrR, e := p.identText(false)
			if e != nil {
				return nil, e
			}
			if pcOrR.Text == "r" {
				flag = ast.RegisterFlagReadOnly
			} else {
				flag = ast.RegisterFlagPC
			}
		case token.TypeLessEqual:
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			flag = ast.RegisterFlagAssign
		default:
			return nil, p.unexpected(t, token.TypeAt, token.TypeLessEqual)
		}
		if _, e := p.expectOne(token.TypeSquareClose); e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachRegisterDeclaration{NodeBase: ast.At(start.Ref), Name: name.Text, Flag: flag}, nil
}

// parseInstructionParams parses a comma-separated parameter list, each
// optionally `: Type`-annotated (spec §4.4). No parameter in this list is
// marked as an output: Output is always false.
func (p *parser) parseInstructionParams(close token.Type) ([]ast.InstructionParam, exc.Exception) {
	return applyOverCommaSeparatedList(p, close, func() (ast.InstructionParam, exc.Exception) {
		output := false
		name, e := p.identText(false)
		if e != nil {
			return ast.InstructionParam{}, e
		}
		var typ ast.Type
		if p.at(token.TypeColon) {
			if _, e := p.advance(); e != nil {
				return ast.InstructionParam{}, e
			}
			typ, e = p.parseType()
			if e != nil {
				return ast.InstructionParam{}, e
			}
		}
		return ast.InstructionParam{Name: name.Text, Type: typ, Output: output}, nil
	})
}

func (p *parser) parseMachInstruction(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	params, e := p.parseInstrParamListNoParens()
	if e != nil {
		return nil, e
	}
	body, e := p.parseInstructionBody()
	if e != nil {
		return nil, e
	}
	return ast.MachInstructionDeclaration{NodeBase: ast.At(start.Ref), Name: name.Text, Params: params, Body: body}, nil
}

// parseInstrParamListNoParens parses the unparenthesized parameter list
// used after `instr name` / `operation name`, up to the token that starts
// the body (spec §4.4): `{`, `=>`, `~>`, or `;`.
func (p *parser) parseInstrParamListNoParens() ([]ast.InstructionParam, exc.Exception) {
	var params []ast.InstructionParam
	for {
		t, e := p.peek()
		if e != nil {
			return nil, e
		}
		if t.Type == token.TypeCurlyOpen || t.Type == token.TypeFatArrow ||
			t.Type == token.TypeSquiggle || t.Type == token.TypeSemicolon {
			return params, nil
		}
		output := false
		if t.Type == token.TypeArrow {
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			output = true
			t, e = p.peek()
			if e != nil {
				return nil, e
			}
		}
		name, e := p.identText(false)
		if e != nil {
			return nil, e
		}
		var typ ast.Type
		if p.at(token.TypeColon) {
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			typ, e = p.parseType()
			if e != nil {
				return nil, e
			}
		}
		params = append(params, ast.InstructionParam{Name: name.Text, Type: typ, Output: output})
		if p.at(token.TypeComma) {
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			continue
		}
		return params, nil
	}
}

// parseInstructionBody parses one of the 4 instruction-body forms (spec
// §4.4): empty (bare `;`), a brace-enclosed element list, or a callable
// reference introduced by `=>`/`~>`.
func (p *parser) parseInstructionBody() (ast.InstructionBody, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeSemicolon:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.InstructionBodyEmpty{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeFatArrow:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		ref, e := p.parseCallableRef()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.InstructionBodyPlookupRef{NodeBase: ast.At(t.Ref), Callable: ref}, nil
	case token.TypeSquiggle:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		ref, e := p.parseCallableRef()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.InstructionBodyPermutationRef{NodeBase: ast.At(t.Ref), Callable: ref}, nil
	case token.TypeCurlyOpen:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		elems, e := applyOverCommaSeparatedList(p, token.TypeCurlyClose, p.parseInstructionBodyElem)
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
			return nil, e
		}
		return ast.InstructionBodyList{NodeBase: ast.At(t.Ref), Elements: elems}, nil
	default:
		return nil, p.unexpected(t, token.TypeSemicolon, token.TypeFatArrow, token.TypeSquiggle, token.TypeCurlyOpen)
	}
}

func (p *parser) parseInstructionBodyElem() (ast.InstructionBodyElem, exc.Exception) {
	left, e := p.parseSelectedExpressions()
	if e != nil {
		return ast.InstructionBodyElem{}, e
	}
	t, e := p.peek()
	if e != nil {
		return ast.InstructionBodyElem{}, e
	}
	switch t.Type {
	case token.TypeKeywordIn:
		if _, e := p.advance(); e != nil {
			return ast.InstructionBodyElem{}, e
		}
		right, e := p.parseSelectedExpressions()
		if e != nil {
			return ast.InstructionBodyElem{}, e
		}
		id := ast.PilPlookupIdentity{Left: left, Right: right}
		return ast.InstructionBodyElem{Plookup: &id}, nil
	case token.TypeKeywordIs:
		if _, e := p.advance(); e != nil {
			return ast.InstructionBodyElem{}, e
		}
		right, e := p.parseSelectedExpressions()
		if e != nil {
			return ast.InstructionBodyElem{}, e
		}
		id := ast.PilPermutationIdentity{Left: left, Right: right}
		return ast.InstructionBodyElem{Permutation: &id}, nil
	default:
		return ast.InstructionBodyElem{Expr: left.Bare}, nil
	}
}

// parseCallableRef parses `instance.callable in1, in2 [-> out1, out2]`
// (spec §4.4).
func (p *parser) parseCallableRef() (ast.CallableRef, exc.Exception) {
	instance, e := p.identText(false)
	if e != nil {
		return ast.CallableRef{}, e
	}
	if _, e := p.expectOne(token.TypeDot); e != nil {
		return ast.CallableRef{}, e
	}
	callable, e := p.identText(false)
	if e != nil {
		return ast.CallableRef{}, e
	}
	var inputs, outputs []ast.Expression
	for {
		t, e := p.peek()
		if e != nil {
			return ast.CallableRef{}, e
		}
		if t.Type == token.TypeArrow || t.Type == token.TypeSemicolon {
			break
		}
		expr, e := p.parseExpression()
		if e != nil {
			return ast.CallableRef{}, e
		}
		inputs = append(inputs, expr)
		if p.at(token.TypeComma) {
			if _, e := p.advance(); e != nil {
				return ast.CallableRef{}, e
			}
			continue
		}
		break
	}
	if p.at(token.TypeArrow) {
		if _, e := p.advance(); e != nil {
			return ast.CallableRef{}, e
		}
		outputs, e = applyOverCommaSeparatedList(p, token.TypeSemicolon, p.parseExpression)
		if e != nil {
			return ast.CallableRef{}, e
		}
	}
	return ast.CallableRef{Instance: instance.Text, Callable: callable.Text, Inputs: inputs, Outputs: outputs}, nil
}

func (p *parser) parseMachLink(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	t, e := p.expectOneOf(token.TypeFatArrow, token.TypeSquiggle)
	if e != nil {
		return nil, e
	}
	flag := ast.LinkFlagPlookup
	if t.Type == token.TypeSquiggle {
		flag = ast.LinkFlagPermutation
	}
	ref, e := p.parseCallableRef()
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachLinkDeclaration{NodeBase: ast.At(start.Ref), Flag: flag, Callable: ref}, nil
}

func (p *parser) parseMachFunction(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeParenOpen); e != nil {
		return nil, e
	}
	params, e := p.parseInstructionParams(token.TypeParenClose)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeParenClose); e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeCurlyOpen); e != nil {
		return nil, e
	}
	var body []ast.FunctionStmt
	for {
		t, e := p.peek()
		if e != nil {
			return nil, e
		}
		if t.Type == token.TypeCurlyClose {
			break
		}
		stmt, e := p.parseFunctionStmt()
		if e != nil {
			return nil, e
		}
		body = append(body, stmt)
	}
	if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
		return nil, e
	}
	return ast.MachFunctionDeclaration{NodeBase: ast.At(start.Ref), Name: name.Text, Params: params, Body: body}, nil
}

// parseFunctionStmt parses one of the 7 function-body statement forms
// (spec §4.4): assignment, label, the three debug directives, return,
// or a bare instruction call.
func (p *parser) parseFunctionStmt() (ast.FunctionStmt, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordReturn:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		var values []ast.Expression
		if !p.at(token.TypeSemicolon) {
			values, e = applyOverCommaSeparatedList(p, token.TypeSemicolon, p.parseExpression)
			if e != nil {
				return nil, e
			}
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.FuncReturn{NodeBase: ast.At(t.Ref), Values: values}, nil
	case token.TypeKeywordFile:
		return p.parseFuncDebug(t, 3, func(ref ast.NodeBase, args []string) ast.FunctionStmt {
			return ast.FuncDebugFile{NodeBase: ref, Args: args}
		})
	case token.TypeKeywordLoc:
		return p.parseFuncDebug(t, 3, func(ref ast.NodeBase, args []string) ast.FunctionStmt {
			return ast.FuncDebugLoc{NodeBase: ref, Args: args}
		})
	case token.TypeKeywordInsn:
		return p.parseFuncDebug(t, 1, func(ref ast.NodeBase, args []string) ast.FunctionStmt {
			return ast.FuncDebugInsn{NodeBase: ref, Args: args}
		})
	default:
		next, e := p.peekN(1)
		if e != nil {
			return nil, e
		}
		if next.Type == token.TypeColon && (t.Type == token.TypeIdentLower || t.Type == token.TypeIdentUpper) {
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			if _, e := p.advance(); e != nil {
				return nil, e
			}
			return ast.FuncLabel{NodeBase: ast.At(t.Ref), Name: t.Text}, nil
		}
		return p.parseFuncAssignmentOrCall(t)
	}
}

// parseFuncDebug parses `file n "dir" "file";` / `loc n l c;` /
// `insn "text";`-style directives: a leading keyword, then up to argCount
// comma-free arguments (numbers or strings), terminated by `;`. The
// directive starts with the bare keyword; a leading `.debug` is not
// accepted.
func (p *parser) parseFuncDebug(start token.Token, argCount int, build func(ast.NodeBase, []string) ast.FunctionStmt) (ast.FunctionStmt, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	var args []string
	for i := 0; i < argCount; i++ {
		if p.at(token.TypeSemicolon) {
			break
		}
		t, e := p.peek()
		if e != nil {
			return nil, e
		}
		if t.Type != token.TypeNumber && t.Type != token.TypeString {
			return nil, p.unexpected(t, token.TypeNumber, token.TypeString)
		}
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		args = append(args, t.Text)
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return build(ast.At(start.Ref), args), nil
}

// parseFuncAssignmentOrCall distinguishes `ids <== expr;` / `ids <= regs =
// expr;` assignments from a bare `name args;` instruction call. It scans
// ahead, without consuming, over the leading comma-separated identifier
// run to find its terminator: `<==` or `<=` means assignment, anything
// else means the run was really just the call name followed by its first
// argument (spec §4.4).
func (p *parser) parseFuncAssignmentOrCall(start token.Token) (ast.FunctionStmt, exc.Exception) {
	isAssignment, e := p.looksLikeAssignment()
	if e != nil {
		return nil, e
	}
	if !isAssignment {
		name, e := p.identText(false)
		if e != nil {
			return nil, e
		}
		var args []ast.Expression
		if !p.at(token.TypeSemicolon) {
			args, e = applyOverCommaSeparatedList(p, token.TypeSemicolon, p.parseExpression)
			if e != nil {
				return nil, e
			}
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.FuncInstructionCall{NodeBase: ast.At(start.Ref), Name: name.Text, Args: args}, nil
	}

	ids, e := applyOverCommaSeparatedList(p, token.TypeAssignPipe, func() (string, exc.Exception) {
		tok, e := p.identText(false)
		if e != nil {
			return "", e
		}
		return tok.Text, nil
	})
	if e != nil {
		return nil, e
	}
	if p.at(token.TypeAssignPipe) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		value, e := p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.FuncAssignment{NodeBase: ast.At(start.Ref), Ids: ids, Value: value}, nil
	}
	if _, e := p.expectOne(token.TypeLessEqual); e != nil {
		return nil, e
	}
	regs, e := applyOverCommaSeparatedList(p, token.TypeEqual, func() (string, exc.Exception) {
		tok, e := p.identText(false)
		if e != nil {
			return "", e
		}
		return tok.Text, nil
	})
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeEqual); e != nil {
		return nil, e
	}
	value, e := p.parseExpression()
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.FuncAssignment{NodeBase: ast.At(start.Ref), Ids: ids, Regs: regs, Value: value}, nil
}

// looksLikeAssignment peeks past a run of `ident (, ident)*` without
// consuming it, reporting whether it terminates in `<==` or `<=` (an
// assignment) as opposed to any other token (a call name followed by its
// first argument).
func (p *parser) looksLikeAssignment() (bool, exc.Exception) {
	idx := 0
	for {
		t, e := p.peekN(idx)
		if e != nil {
			return false, e
		}
		if !(t.Type == token.TypeIdentLower || t.Type == token.TypeIdentUpper || token.Softened[t.Type]) {
			return false, nil
		}
		idx++
		sep, e := p.peekN(idx)
		if e != nil {
			return false, e
		}
		if sep.Type != token.TypeComma {
			return sep.Type == token.TypeAssignPipe || sep.Type == token.TypeLessEqual, nil
		}
		idx++
	}
}

func (p *parser) parseMachOperation(start token.Token) (ast.MachineStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	var id ast.Expression
	if p.at(token.TypeAngleOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		id, e = p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeAngleClose); e != nil {
			return nil, e
		}
	}
	params, e := p.parseInstrParamListNoParens()
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.MachOperationDeclaration{NodeBase: ast.At(start.Ref), Name: name.Text, Id: id, Params: params}, nil
}
