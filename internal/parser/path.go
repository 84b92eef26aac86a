package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parseSymbolPath parses `super::super::name` / `::absolute::name` forms
// (spec §3). An absolute path's leading `::` contributes an empty-name
// Named part.
func (p *parser) parseSymbolPath(strict bool) (ast.SymbolPath, exc.Exception) {
	start, e := p.peek()
	if e != nil {
		return ast.SymbolPath{}, e
	}
	var parts []ast.PathPart
	if p.at(token.TypeDoubleColon) {
		if _, e := p.advance(); e != nil {
			return ast.SymbolPath{}, e
		}
		parts = append(parts, ast.PathPart{Name: ""})
	}
	for {
		if p.at(token.TypeKeywordSuper) {
			if _, e := p.advance(); e != nil {
				return ast.SymbolPath{}, e
			}
			parts = append(parts, ast.PathPart{Super: true})
		} else {
			name, e := p.pathIdent(strict)
			if e != nil {
				return ast.SymbolPath{}, e
			}
			parts = append(parts, ast.PathPart{Name: name.Text})
		}
		if !p.at(token.TypeDoubleColon) {
			break
		}
		// Two-token lookahead: "::<" begins a generic-arg list, which
		// belongs to parseGenericSymbolPath, not a further path segment
		// (spec §9). Stop here and let the caller decide.
		next, e := p.peekN(1)
		if e != nil {
			return ast.SymbolPath{}, e
		}
		if next.Type == token.TypeAngleOpen {
			break
		}
		if _, e := p.advance(); e != nil {
			return ast.SymbolPath{}, e
		}
	}
	return ast.SymbolPath{NodeBase: ast.At(start.Ref), Parts: parts}, nil
}

// pathIdent accepts a general identifier for a path segment; strict mode
// rejects the reserved type names int/fe (used by parseTypeSymbolPath).
func (p *parser) pathIdent(strict bool) (token.Token, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return token.Token{}, e
	}
	if strict && (t.Type == token.TypeKeywordInt || t.Type == token.TypeKeywordFe) {
		return token.Token{}, p.unexpected(t, token.TypeIdentLower)
	}
	return p.identText(false)
}

// parseGenericSymbolPath parses a SymbolPath optionally followed by
// `::<type, ...>` (spec §3, §9).
func (p *parser) parseGenericSymbolPath() (ast.GenericSymbolPath, exc.Exception) {
	start, e := p.peek()
	if e != nil {
		return ast.GenericSymbolPath{}, e
	}
	path, e := p.parseSymbolPath(false)
	if e != nil {
		return ast.GenericSymbolPath{}, e
	}
	var args []ast.Type
	if p.at(token.TypeDoubleColon) {
		next, e := p.peekN(1)
		if e != nil {
			return ast.GenericSymbolPath{}, e
		}
		if next.Type == token.TypeAngleOpen {
			if _, e := p.advance(); e != nil { // ::
				return ast.GenericSymbolPath{}, e
			}
			if _, e := p.advance(); e != nil { // <
				return ast.GenericSymbolPath{}, e
			}
			args, e = applyOverCommaSeparatedList(p, token.TypeAngleClose, p.parseType)
			if e != nil {
				return ast.GenericSymbolPath{}, e
			}
			if _, e := p.expectOne(token.TypeAngleClose); e != nil {
				return ast.GenericSymbolPath{}, e
			}
		}
	}
	return ast.GenericSymbolPath{NodeBase: ast.At(start.Ref), Path: path, TypeArgs: args}, nil
}

// parseTypeSymbolPath parses a SymbolPath in type position, rejecting
// int/fe as path parts (spec §3 invariant).
func (p *parser) parseTypeSymbolPath() (ast.TypeSymbolPath, exc.Exception) {
	start, e := p.peek()
	if e != nil {
		return ast.TypeSymbolPath{}, e
	}
	path, e := p.parseSymbolPath(true)
	if e != nil {
		return ast.TypeSymbolPath{}, e
	}
	return ast.TypeSymbolPath{NodeBase: ast.At(start.Ref), Path: path}, nil
}
