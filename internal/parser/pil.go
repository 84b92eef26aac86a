package parser

import (
	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// parsePILFile parses a full constraint file: a sequence of PilStatements
// (spec §4.4) up to end of input.
func (p *parser) parsePILFile() (ast.PILFile, exc.Exception) {
	var stmts []ast.PilStatement
	for {
		t, e := p.peek()
		if e != nil {
			return ast.PILFile{}, e
		}
		if t.Type == token.TypeEOF {
			return ast.PILFile{Statements: stmts}, nil
		}
		stmt, e := p.parsePilStatement()
		if e != nil {
			return ast.PILFile{}, e
		}
		stmts = append(stmts, stmt)
	}
}

// parsePilStatement dispatches on the leading token to one of the 14 PIL
// statement forms (spec §4.4).
func (p *parser) parsePilStatement() (ast.PilStatement, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordInclude:
		return p.parsePilInclude(t)
	case token.TypeKeywordNamespace:
		return p.parsePilNamespace(t)
	case token.TypeKeywordLet:
		return p.parsePilLet(t)
	case token.TypeKeywordConstant:
		return p.parsePilConstantDefinition(t)
	case token.TypeKeywordEnum:
		return p.parsePilEnumDeclaration(t)
	case token.TypeKeywordPol:
		return p.parsePilPolDecl(t)
	default:
		return p.parsePilExprLedStatement(t)
	}
}

func (p *parser) parsePilInclude(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	path, e := p.expectOne(token.TypeString)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilInclude{NodeBase: ast.At(start.Ref), Path: path.Text}, nil
}

func (p *parser) parsePilNamespace(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	path, e := p.parseSymbolPath(false)
	if e != nil {
		return nil, e
	}
	var degree ast.Expression
	if p.at(token.TypeParenOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		degree, e = p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeParenClose); e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilNamespace{NodeBase: ast.At(start.Ref), Path: path, Degree: degree}, nil
}

// parsePilLet parses `let name [<bounds>][: type] [= expr];` (spec §3,
// §4.4). Omitting the initializer declares an abstract/witness-typed
// symbol.
func (p *parser) parsePilLet(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	scheme, e := p.parseTypeScheme()
	if e != nil {
		return nil, e
	}
	var value ast.Expression
	if p.at(token.TypeEqual) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		value, e = p.parseExpression()
		if e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilLet{NodeBase: ast.At(start.Ref), Name: name.Text, Scheme: scheme, Value: value}, nil
}

func (p *parser) parsePilConstantDefinition(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.expectOne(token.TypeConstantIdent)
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
	return ast.PilConstantDefinition{NodeBase: ast.At(start.Ref), Name: name.Text, Value: value}, nil
}

func (p *parser) parsePilEnumDeclaration(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(true)
	if e != nil {
		return nil, e
	}
	var typeVars []string
	if p.at(token.TypeAngleOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		vars, e := applyOverCommaSeparatedList(p, token.TypeAngleClose, func() (string, exc.Exception) {
			tok, e := p.identText(true)
			if e != nil {
				return "", e
			}
			return tok.Text, nil
		})
		if e != nil {
			return nil, e
		}
		typeVars = vars
		if _, e := p.expectOne(token.TypeAngleClose); e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeCurlyOpen); e != nil {
		return nil, e
	}
	variants, e := applyOverCommaSeparatedList(p, token.TypeCurlyClose, p.parseEnumVariant)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
		return nil, e
	}
	return ast.PilEnumDeclaration{NodeBase: ast.At(start.Ref), Name: name.Text, TypeVars: typeVars, Variants: variants}, nil
}

func (p *parser) parseEnumVariant() (ast.EnumVariant, exc.Exception) {
	name, e := p.identText(true)
	if e != nil {
		return ast.EnumVariant{}, e
	}
	var fields []ast.Type
	if p.at(token.TypeParenOpen) {
		if _, e := p.advance(); e != nil {
			return ast.EnumVariant{}, e
		}
		fields, e = applyOverCommaSeparatedList(p, token.TypeParenClose, p.parseType)
		if e != nil {
			return ast.EnumVariant{}, e
		}
		if _, e := p.expectOne(token.TypeParenClose); e != nil {
			return ast.EnumVariant{}, e
		}
	}
	return ast.EnumVariant{Name: name.Text, Fields: fields}, nil
}

// parsePilPolDecl dispatches the four `pol ...` forms: `pol commit`, `pol
// constant ... = array`, `pol constant name, ...;`, and `pol name = expr;`
// (spec §4.4).
func (p *parser) parsePilPolDecl(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordCommit, token.TypeKeywordWitness:
		return p.parsePilCommit(start)
	case token.TypeKeywordConstant, token.TypeKeywordFixed:
		return p.parsePilConstantDecl(start)
	default:
		return p.parsePilPolynomialDefinition(start)
	}
}

func (p *parser) parsePilCommit(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil { // commit|witness
		return nil, e
	}
	var stage ast.Expression
	if p.at(token.TypeKeywordStage) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeParenOpen); e != nil {
			return nil, e
		}
		var parseErr exc.Exception
		stage, parseErr = p.parseExpression()
		if parseErr != nil {
			return nil, parseErr
		}
		if _, e := p.expectOne(token.TypeParenClose); e != nil {
			return nil, e
		}
	}
	names, e := applyOverCommaSeparatedList(p, token.TypeSemicolon, p.parsePolynomialName)
	if e != nil {
		return nil, e
	}
	if len(names) == 1 && p.at(token.TypeParenOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		params, e := applyOverCommaSeparatedList(p, token.TypeParenClose, p.parsePattern)
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeParenClose); e != nil {
			return nil, e
		}
		body, e := p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilPolynomialCommitDeclaration{
			NodeBase: ast.At(start.Ref), Names: names, Stage: stage,
			QueryParams: params, QueryBody: body,
		}, nil
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilPolynomialCommitDeclaration{NodeBase: ast.At(start.Ref), Names: names, Stage: stage}, nil
}

func (p *parser) parsePilConstantDecl(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil { // constant|fixed
		return nil, e
	}
	first, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if p.at(token.TypeEqual) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		value, e := p.parseArrayExpr()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilPolynomialConstantDefinition{NodeBase: ast.At(start.Ref), Name: first.Text, Value: value}, nil
	}
	names := []ast.PolynomialName{{Name: first.Text}}
	if p.at(token.TypeSquareOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		length, e := p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSquareClose); e != nil {
			return nil, e
		}
		names[0].ArrayLength = length
	}
	for p.at(token.TypeComma) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		if p.at(token.TypeSemicolon) {
			break
		}
		name, e := p.parsePolynomialName()
		if e != nil {
			return nil, e
		}
		names = append(names, name)
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilPolynomialConstantDeclaration{NodeBase: ast.At(start.Ref), Names: names}, nil
}

func (p *parser) parsePolynomialName() (ast.PolynomialName, exc.Exception) {
	name, e := p.identText(false)
	if e != nil {
		return ast.PolynomialName{}, e
	}
	var length ast.Expression
	if p.at(token.TypeSquareOpen) {
		if _, e := p.advance(); e != nil {
			return ast.PolynomialName{}, e
		}
		length, e = p.parseExpression()
		if e != nil {
			return ast.PolynomialName{}, e
		}
		if _, e := p.expectOne(token.TypeSquareClose); e != nil {
			return ast.PolynomialName{}, e
		}
	}
	return ast.PolynomialName{Name: name.Text, ArrayLength: length}, nil
}

func (p *parser) parsePilPolynomialDefinition(start token.Token) (ast.PilStatement, exc.Exception) {
	name, e := p.identText(false)
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
	return ast.PilPolynomialDefinition{NodeBase: ast.At(start.Ref), Name: name.Text, Value: value}, nil
}

// parseArrayExpr parses the array micro-grammar (spec §9): a sequence of
// `[...]`/`[...]*` leaves concatenated with `+`.
func (p *parser) parseArrayExpr() (ast.ArrayExpr, exc.Exception) {
	start, e := p.peek()
	if e != nil {
		return nil, e
	}
	left, e := p.parseArrayExprLeaf(start)
	if e != nil {
		return nil, e
	}
	for p.at(token.TypePlus) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		right, e := p.parseArrayExprLeaf(start)
		if e != nil {
			return nil, e
		}
		left = ast.ArrayExprConcat{NodeBase: ast.At(start.Ref), Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseArrayExprLeaf(start token.Token) (ast.ArrayExpr, exc.Exception) {
	leafStart, e := p.expectOne(token.TypeSquareOpen)
	if e != nil {
		return nil, e
	}
	elements, e := applyOverCommaSeparatedList(p, token.TypeSquareClose, p.parseExpression)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSquareClose); e != nil {
		return nil, e
	}
	if p.at(token.TypeStar) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		return ast.ArrayExprRepeatedValue{NodeBase: ast.At(leafStart.Ref), Elements: elements}, nil
	}
	return ast.ArrayExprValue{NodeBase: ast.At(leafStart.Ref), Elements: elements}, nil
}

// parsePilExprLedStatement handles the forms that begin with an expression
// or a selected-expressions list: public declarations, plookup/permutation/
// connect identities, and bare expression statements (spec §4.4).
func (p *parser) parsePilExprLedStatement(start token.Token) (ast.PilStatement, exc.Exception) {
	if start.Type == token.TypeKeywordPublic {
		return p.parsePilPublicDeclaration(start)
	}
	left, e := p.parseSelectedExpressions()
	if e != nil {
		return nil, e
	}
	t, e := p.peek()
	if e != nil {
		return nil, e
	}
	switch t.Type {
	case token.TypeKeywordIn:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		right, e := p.parseSelectedExpressions()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilPlookupIdentity{NodeBase: ast.At(start.Ref), Left: left, Right: right}, nil
	case token.TypeKeywordIs:
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		right, e := p.parseSelectedExpressions()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilPermutationIdentity{NodeBase: ast.At(start.Ref), Left: left, Right: right}, nil
	case token.TypeKeywordConnect:
		// `{ a, b, ... } connect { c, d, ... };` (spec §4.4): both sides
		// are brace-delimited expression lists, already parsed as
		// SelectedExpressions above (and once more below for the right
		// side) via parseSelectedExpressions; a bare expression on either
		// side is rejected.
		if left.Bare != nil {
			return nil, p.unexpected(start, token.TypeCurlyOpen)
		}
		if _, e := p.advance(); e != nil { // connect
			return nil, e
		}
		right, e := p.parseSelectedExpressions()
		if e != nil {
			return nil, e
		}
		if right.Bare != nil {
			return nil, p.unexpected(t, token.TypeCurlyOpen)
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilConnectIdentity{NodeBase: ast.At(start.Ref), Left: left.List, Right: right.List}, nil
	default:
		if left.List != nil || left.Selector != nil {
			return nil, p.unexpected(t, token.TypeKeywordIn, token.TypeKeywordIs)
		}
		if _, e := p.expectOne(token.TypeSemicolon); e != nil {
			return nil, e
		}
		return ast.PilExpressionStatement{NodeBase: ast.At(start.Ref), Value: left.Bare}, nil
	}
}

func (p *parser) parsePilPublicDeclaration(start token.Token) (ast.PilStatement, exc.Exception) {
	if _, e := p.advance(); e != nil {
		return nil, e
	}
	name, e := p.identText(false)
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeEqual); e != nil {
		return nil, e
	}
	path, e := p.parseGenericSymbolPath()
	if e != nil {
		return nil, e
	}
	var arrayIndex ast.Expression
	if p.at(token.TypeSquareOpen) {
		if _, e := p.advance(); e != nil {
			return nil, e
		}
		arrayIndex, e = p.parseExpression()
		if e != nil {
			return nil, e
		}
		if _, e := p.expectOne(token.TypeSquareClose); e != nil {
			return nil, e
		}
	}
	if _, e := p.expectOne(token.TypeParenOpen); e != nil {
		return nil, e
	}
	rowIndex, e := p.parseExpression()
	if e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeParenClose); e != nil {
		return nil, e
	}
	if _, e := p.expectOne(token.TypeSemicolon); e != nil {
		return nil, e
	}
	return ast.PilPublicDeclaration{
		NodeBase: ast.At(start.Ref), Name: name.Text, Polynomial: path,
		ArrayIndex: arrayIndex, RowIndex: rowIndex,
	}, nil
}

// parseSelectedExpressions parses the `se` production (spec §4.4): either a
// brace-enclosed list, optionally selector-guarded, or a bare expression.
func (p *parser) parseSelectedExpressions() (ast.SelectedExpressions, exc.Exception) {
	t, e := p.peek()
	if e != nil {
		return ast.SelectedExpressions{}, e
	}
	if t.Type == token.TypeCurlyOpen {
		return p.parseSelectedExpressionsBody(nil)
	}
	expr, e := p.parseExpression()
	if e != nil {
		return ast.SelectedExpressions{}, e
	}
	if p.at(token.TypeCurlyOpen) {
		return p.parseSelectedExpressionsBody(expr)
	}
	return ast.SelectedExpressions{Bare: expr}, nil
}

func (p *parser) parseSelectedExpressionsBody(selector ast.Expression) (ast.SelectedExpressions, exc.Exception) {
	if _, e := p.advance(); e != nil { // {
		return ast.SelectedExpressions{}, e
	}
	list, e := applyOverCommaSeparatedList(p, token.TypeCurlyClose, p.parseExpression)
	if e != nil {
		return ast.SelectedExpressions{}, e
	}
	if _, e := p.expectOne(token.TypeCurlyClose); e != nil {
		return ast.SelectedExpressions{}, e
	}
	return ast.SelectedExpressions{Selector: selector, List: list}, nil
}
