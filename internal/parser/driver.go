package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/lex"
	"github.com/powdr-lang/pilparse/internal/source"
	"github.com/powdr-lang/pilparse/internal/token"
)

// newParserFor wires a fresh Lexer/Lookahead/parser over in-memory source
// text (spec §5: no I/O, no shared state across calls).
func newParserFor(uri string, src string) *parser {
	mgr := source.NewManager(src)
	lexer := lex.New(mgr, uri, src)
	la := lex.NewLookahead(lexer)
	return newParser(uri, la)
}

// expectEOF reports an UnexpectedToken error if anything but end of input
// remains, so a caller handed a trailing garbage token the way any failed
// parse is handled: fail fast with the first offending location (spec §1
// non-goal: no error recovery).
func (p *parser) expectEOF() exc.Exception {
	t, e := p.peek()
	if e != nil {
		return e
	}
	if t.Type != token.TypeEOF {
		return p.unexpected(t, token.TypeEOF)
	}
	return nil
}

// ParsePILFile is the primary entry point for constraint files (spec
// §4.5): it recognizes a full PILFile and requires the source be fully
// consumed.
func ParsePILFile(uri string, src string) (ast.PILFile, exc.Exception) {
	p := newParserFor(uri, src)
	file, e := p.parsePILFile()
	if e != nil {
		return ast.PILFile{}, e
	}
	return file, nil
}

// ParseASMModule is the primary entry point for module/machine-assembly
// files (spec §4.5): it recognizes a full ASMModule and requires the
// source be fully consumed.
func ParseASMModule(uri string, src string) (ast.ASMModule, exc.Exception) {
	p := newParserFor(uri, src)
	mod, e := p.parseASMModule()
	if e != nil {
		return ast.ASMModule{}, e
	}
	return mod, nil
}

// The recognizers below expose individual grammar productions directly,
// for composition tests that don't need a whole file (spec §6).

func ParseSymbolPath(uri string, src string) (ast.SymbolPath, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseSymbolPath(false)
	if e != nil {
		return ast.SymbolPath{}, e
	}
	if e := p.expectEOF(); e != nil {
		return ast.SymbolPath{}, e
	}
	return v, nil
}

func ParseType(uri string, src string) (ast.Type, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseType()
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseTypeVarBounds(uri string, src string) ([]ast.TypeVarBound, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseTypeVarBounds()
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseRegisterDeclaration(uri string, src string) (ast.MachineStatement, exc.Exception) {
	p := newParserFor(uri, src)
	start, e := p.peek()
	if e != nil {
		return nil, e
	}
	v, e := p.parseMachRegister(start)
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseInstructionDeclaration(uri string, src string) (ast.MachineStatement, exc.Exception) {
	p := newParserFor(uri, src)
	start, e := p.peek()
	if e != nil {
		return nil, e
	}
	v, e := p.parseMachInstruction(start)
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

// ParseInstruction recognizes a single machine-body statement, of which an
// instruction declaration is one form; exposed for composition tests that
// drive the dispatcher directly rather than a specific variant (spec §6).
func ParseInstruction(uri string, src string) (ast.MachineStatement, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseMachineStatement()
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseLinkDeclaration(uri string, src string) (ast.MachineStatement, exc.Exception) {
	p := newParserFor(uri, src)
	start, e := p.peek()
	if e != nil {
		return nil, e
	}
	v, e := p.parseMachLink(start)
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseInstructionBody(uri string, src string) (ast.InstructionBody, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseInstructionBody()
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}

func ParseCallableRef(uri string, src string) (ast.CallableRef, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseCallableRef()
	if e != nil {
		return ast.CallableRef{}, e
	}
	if e := p.expectEOF(); e != nil {
		return ast.CallableRef{}, e
	}
	return v, nil
}

// TokenizeForDebug drains the full token stream (including the trailing
// EOF token), for the CLI's --dump-tokens mode.
func TokenizeForDebug(uri string, src string) ([]token.Token, exc.Exception) {
	mgr := source.NewManager(src)
	lexer := lex.New(mgr, uri, src)
	var out []token.Token
	for {
		t, e := lexer.Next()
		if e != nil {
			return nil, e
		}
		out = append(out, t)
		if t.Type == token.TypeEOF {
			return out, nil
		}
	}
}

func ParseFunctionStatement(uri string, src string) (ast.FunctionStmt, exc.Exception) {
	p := newParserFor(uri, src)
	v, e := p.parseFunctionStmt()
	if e != nil {
		return nil, e
	}
	if e := p.expectEOF(); e != nil {
		return nil, e
	}
	return v, nil
}
