package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parseASMModule parses a full module file: a sequence of ModuleStatements
// (spec §3, §4.4) up to end of input.
func (p *parser) parseASMModule() (ast.ASMModule, exc.Exception) {
	stmts, e := p.parseModuleStatementsUntil(token.TypeEOF)
	if e != nil {
		return ast.ASMModule{}, e
	}
	return ast.ASMModule{Statements: stmts}, nil
}

// parseModuleStatementsUntil collects ModuleStatements until the current
// token is close, without consuming close.
func (p *parser) parseModuleStatementsUntil(close token.Type) ([]ast.ModuleStatement, exc.Exception) {
	var stmts []ast.ModuleStatement
	for {
		t, e := p.peek()
		if e != nil {
			return nil, e
		}
		if t.Type == close {
			return stmts, nil
		}
		stmt, e := p.parseModuleStatement()
		if e != nil {
			return nil, e
		}
		stmts = append(stmts, stmt)
	}
}

func (p *parser) parseModuleStatement() (ast.ModuleStatement, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordMod:
		return p.parseModModule(t)
	case token.TypeKeywordMachine:
		return p.parseModMachine(t)
	case token.TypeKeywordLet:
		return p.parseModLet(t)
	case token.TypeKeywordEnum:
		stmt, e := p.parsePilEnumDeclaration(t)
		if e != nil {
			return nil, e
		}
		enum := stmt.(ast.PilEnumDeclaration)
		return ast.ModEnum{NodeBase: enum.NodeBase, Name: enum.Name, TypeVars: enum.TypeVars, Variants: enum.Variants}, nil
	case token.TypeKeywordUse:
		return p.parseModImport(t)
	default:
		return nil, p.unexpected(t, token.TypeKeywordMod, token.TypeKeywordMachine,
			token.TypeKeywordLet, token.TypeKeywordEnum, token.TypeKeywordUse)
	}
}

// parseModModule parses `mod name;` (external reference) or
// `mod name { ... }` (inline submodule body).
func (p *parser) parseModModule(start token.Token) (ast.ModuleStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if p.at(token.TypeSemicolon) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.ModModule{NodeBase: ast.At(start.Ref), Name: name.Text}, nil
	}
	if _, e := p.expectOne(token.TypeCurlyOpen); e != nil {
		return nil, e
	}
	stmts, e := p.parseModuleStatementsUntil(token.TypeCurlyClose)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
		return nil, e
	}
	body := ast.ASMModule{Statements: stmts}
	return ast.ModModule{NodeBase: ast.At(start.Ref), Name: name.Text, Body: &body}, nil
}

func (p *parser) parseModLet(start token.Token) (ast.ModuleStatement, exc.Exception) {
	stmt, e := p.parsePilLet(start)
	if e != nil {
		return nil, e
	}
	let := stmt.(ast.PilLet)
	return ast.ModLet{NodeBase: let.NodeBase, Name: let.Name, Scheme: let.Scheme, Value: let.Value}, nil
}

// parseModImport parses `use path [as alias];` (spec §4.4).
func (p *parser) parseModImport(start token.Token) (ast.ModuleStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	path, e := p.parseSymbolPath(false)
	if e != nil {
		return nil, e
	}
	var alias string
	if p.at(token.TypeKeywordAs) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		aliasTok, e := p.identText(false)
		if e != nil {
			return nil, e
		}
		alias = aliasTok.Text
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.ModImport{NodeBase: ast.At(start.Ref), Path: path, Alias: alias}, nil
}

// parseModMachine parses `machine name(latch, opId) { ... }` (spec §4.4).
func (p *parser) parseModMachine(start token.Token) (ast.ModuleStatement, exc.Exception) {
	def, e := p.parseMachineDefinition(start)
	if e != nil {
		return nil, e
	}
	return ast.ModMachine{NodeBase: ast.At(start.Ref), Name: def.Name, Def: def}, nil
}
