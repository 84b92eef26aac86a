package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/lex"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parsePattern parses one Pattern (spec §4.3). Enum patterns are reserved
// but not recognized here; see DESIGN.md's Open Question decision.
func (p *parser) parsePattern() (ast.Pattern, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeUnderscore:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.PatternCatchAll{NodeBase: ast.At(t.Ref)}, nil
	case token.TypeMinus, token.TypeNumber:
		return p.parseNumberPattern(t)
	case token.TypeString:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.PatternString{NodeBase: ast.At(t.Ref), Raw: t.Text}, nil
	case token.TypeParenOpen:
		return p.parseTuplePattern(t)
	case token.TypeSquareOpen:
		return p.parseArrayPattern(t)
	default:
		name, e := p.identText(false)
		if e != nil {
			return nil, e
		}
		return ast.PatternVariable{NodeBase: ast.At(t.Ref), Name: name.Text}, nil
	}
}

func (p *parser) parseNumberPattern(start token.Token) (ast.Pattern, exc.Exception) {
	negative := false
	if p.at(token.TypeMinus) {
		negative = true
		if _, e := p.advance(); e != nil {
			return nil, e
		}
	}
	num, e := p.expectOne(token.TypeNumber)
	if e != nil {
		return nil, e
	}
	base, digits := lex.NumberValue(num.Text)
	return ast.PatternNumber{NodeBase: ast.At(start.Ref), Negative: negative, Base: base, Digits: digits}, nil
}

// parseTuplePattern parses `()` (unit) or `(p, p, ...)` with at least two
// elements (spec §4.3).
func (p *parser) parseTuplePattern(start token.Token) (ast.Pattern, exc.Exception) {
	if _, e := p.advance(); e != nil { // (
		return nil, e
	}
	elements, e := applyOverCommaSeparatedList(p, token.TypeParenClose, p.parsePattern)
	if e != nil {
		return nil, e
	}
	closeTok, e := p.expectOne(token.TypeParenClose)
	if e != nil {
		return nil, e
	}
	if len(elements) == 1 {
		return nil, p.unexpected(closeTok, token.TypeComma)
	}
	return ast.PatternTuple{NodeBase: ast.At(start.Ref), Elements: elements}, nil
}

func (p *parser) parseArrayPattern(start token.Token) (ast.Pattern, exc.Exception) {
	if _, e := p.advance(); e != nil { // [
		return nil, e
	}
	elements, e := applyOverCommaSeparatedList(p, token.TypeSquareClose, p.parseArrayPatternElem)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSquareClose); e != nil {
		return nil, e
	}
	return ast.PatternArray{NodeBase: ast.At(start.Ref), Elements: elements}, nil
}

func (p *parser) parseArrayPatternElem() (ast.PatternArrayElem, exc.Exception) {
	if p.at(token.TypeDotDot) {
		if _, e := p.advance(); e != nil {
			return ast.PatternArrayElem{}, e
		}
		return ast.PatternArrayElem{Ellipsis: true}, nil
	}
	pat, e := p.parsePattern()
	if e != nil {
		return ast.PatternArrayElem{}, e
	}
	return ast.PatternArrayElem{Pattern: pat}, nil
}
