package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parseType parses a single Type (spec §3): named, bottom, bool, int, fe,
// string, col, expr, constr, array, tuple, function.
func (p *parser) parseType() (ast.Type, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeBang:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeBottom{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordBool:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeBool{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordInt:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeInt{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordFe:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeFe{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordString:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeString{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordCol:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeCol{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordExpr:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeExpr{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeKeywordConstr:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.TypeConstr{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeSquareOpen:
		return p.parseTypeArray(t)
	case token.TypeParenOpen:
		return p.parseTypeTupleOrFunction(t)
	default:
		path, e := p.parseTypeSymbolPath()
		if e != nil {
			return nil, e
		}
		return ast.TypeNamed{NodeBase: ast.At(t.Ref), Path: path}, nil
	}
}

func (p *parser) parseTypeArray(start token.Token) (ast.Type, exc.Exception) {
	if _, e := p.advance(); e != nil { // [
		return nil, e
	}
	elem, e := p.parseType()
	if e != nil {
		return nil, e
	}
	var length ast.Expression
	if p.at(token.TypeSemicolon) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		length, e = p.parseExpression()
		if e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeSquareClose); e != nil {
		return nil, e
	}
	return ast.TypeArray{NodeBase: ast.At(start.Ref), Elem: elem, Length: length}, nil
}

// parseTypeTupleOrFunction parses `(T, T, ...)` as a tuple, or
// `(T, ...) -> T` as a function type.
func (p *parser) parseTypeTupleOrFunction(start token.Token) (ast.Type, exc.Exception) {
	if _, e := p.advance(); e != nil { // (
		return nil, e
	}
	elements, e := applyOverCommaSeparatedList(p, token.TypeParenClose, p.parseType)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeParenClose); e != nil {
		return nil, e
	}
	if p.at(token.TypeArrow) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		ret, e := p.parseType()
		if e != nil {
			return nil, e
		}
		return ast.TypeFunction{NodeBase: ast.At(start.Ref), Params: elements, Return: ret}, nil
	}
	return ast.TypeTuple{NodeBase: ast.At(start.Ref), Elements: elements}, nil
}

// parseTypeVarBounds parses `<T: Bound + Bound, U>` (spec §6). Returns nil
// if no `<` is present.
func (p *parser) parseTypeVarBounds() ([]ast.TypeVarBound, exc.Exception) {
	if !p.at(token.TypeAngleOpen) {
		return nil, nil
	}
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	bounds, e := applyOverCommaSeparatedList(p, token.TypeAngleClose, p.parseOneTypeVarBound)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeAngleClose); e != nil {
		return nil, e
	}
	return bounds, nil
}

func (p *parser) parseOneTypeVarBound() (ast.TypeVarBound, exc.Exception) {
	name, e := p.identText(true)
	if e != nil {
		return ast.TypeVarBound{}, e
	}
	var traits []string
	if p.at(token.TypeColon) {
		if _, e := p.advance(); e != nil {
			return ast.TypeVarBound{}, e
		}
		for {
			tr, e := p.identText(true)
			if e != nil {
				return ast.TypeVarBound{}, e
			}
			traits = append(traits, tr.Text)
			if !p.at(token.TypePlus) {
				break
			}
			if _, e := p.advance(); e != nil {
				return ast.TypeVarBound{}, e
			}
		}
	}
	return ast.TypeVarBound{Var: name.Text, Traits: traits}, nil
}

// parseTypeScheme parses the optional `<bounds>` plus `: type` suffix used
// by generic let-bindings (spec §3); returns nil if neither is present.
func (p *parser) parseTypeScheme() (*ast.TypeScheme, exc.Exception) {
	vars, e := p.parseTypeVarBounds()
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
	if vars == nil && typ == nil {
		return nil, nil
	}
	return &ast.TypeScheme{Vars: vars, Type: typ}, nil
}
