package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
)

func parsePILOK(t *testing.T, src string) ast.PILFile {
	t.Helper()
	file, e := ParsePILFile("test.pil", src)
	require.Nil(t, e, "unexpected parse error: %v", e)
	return file
}

func TestParsePILFile_LetWithPrecedence(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "let x = 1 + 2 * 3;")
	require.Len(t, file.Statements, 1)
	let := file.Statements[0].(ast.PilLet)
	require.Equal(t, "x", let.Name)
	add := let.Value.(ast.ExprBinaryOp)
	require.Equal(t, ast.OpAdd, add.Op)
	require.Equal(t, "1", add.Left.(ast.ExprNumber).Digits)
	mul := add.Right.(ast.ExprBinaryOp)
	require.Equal(t, ast.OpMul, mul.Op)
	require.Equal(t, "2", mul.Left.(ast.ExprNumber).Digits)
	require.Equal(t, "3", mul.Right.(ast.ExprNumber).Digits)
}

func TestParsePILFile_NamespaceAndCommitDeclaration(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "namespace Foo(8); pol commit a, b;")
	require.Len(t, file.Statements, 2)

	ns := file.Statements[0].(ast.PilNamespace)
	require.NotNil(t, ns.Degree)

	commit := file.Statements[1].(ast.PilPolynomialCommitDeclaration)
	require.Equal(t, []ast.PolynomialName{{Name: "a"}, {Name: "b"}}, commit.Names)
	require.Nil(t, commit.Stage)
	require.Nil(t, commit.QueryBody)
}

func TestParsePILFile_MatchExpression(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "let x = match y { 0 => 1, _ => 2, };")
	let := file.Statements[0].(ast.PilLet)
	m := let.Value.(ast.ExprMatch)
	require.Len(t, m.Arms, 2)
	_, isNum := m.Arms[0].Pattern.(ast.PatternNumber)
	require.True(t, isNum)
	_, isCatchAll := m.Arms[1].Pattern.(ast.PatternCatchAll)
	require.True(t, isCatchAll)
}

func TestParsePILFile_Lambda(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "let f = |x, y| x + y;")
	let := file.Statements[0].(ast.PilLet)
	lambda := let.Value.(ast.ExprLambda)
	require.Equal(t, ast.FunctionKindPure, lambda.Kind)
	require.Len(t, lambda.Params, 2)
	_, isAdd := lambda.Body.(ast.ExprBinaryOp)
	require.True(t, isAdd)
}

func TestParsePILFile_ArrayExpressionConcat(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "pol constant c = [1, 2] + [3]*;")
	decl := file.Statements[0].(ast.PilPolynomialConstantDefinition)
	require.Equal(t, "c", decl.Name)
	concat := decl.Value.(ast.ArrayExprConcat)
	left := concat.Left.(ast.ArrayExprValue)
	require.Len(t, left.Elements, 2)
	right := concat.Right.(ast.ArrayExprRepeatedValue)
	require.Len(t, right.Elements, 1)
}

func TestParsePILFile_GenericReference(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "let x = a::b::<int, fe>;")
	let := file.Statements[0].(ast.PilLet)
	ref := let.Value.(ast.ExprReference)
	require.Equal(t, []ast.PathPart{{Name: "a"}, {Name: "b"}}, ref.Path.Path.Parts)
	require.Len(t, ref.Path.TypeArgs, 2)
	_, isInt := ref.Path.TypeArgs[0].(ast.TypeInt)
	require.True(t, isInt)
	_, isFe := ref.Path.TypeArgs[1].(ast.TypeFe)
	require.True(t, isFe)
}

func TestParsePILFile_ConnectIdentity(t *testing.T) {
	t.Parallel()
	file := parsePILOK(t, "{ a, b } connect { c, d };")
	require.Len(t, file.Statements, 1)
	conn := file.Statements[0].(ast.PilConnectIdentity)
	require.Len(t, conn.Left, 2)
	require.Len(t, conn.Right, 2)
}

func TestParsePILFile_ConnectIdentityRejectsBareLeftSide(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", "a connect { c, d };")
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnexpectedToken, e.Code())
}

func TestParsePILFile_LetWithMissingName(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", "let = 1;")
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnexpectedToken, e.Code())
}

func TestParsePILFile_UnterminatedString(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", `let x = "unterminated;`)
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnterminatedString, e.Code())
}

func TestParsePILFile_UnexpectedEndOfInput(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", "let x = 1 + ")
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnexpectedEndOfInput, e.Code())
}

func TestParseType_RejectsIntAsPathPart(t *testing.T) {
	t.Parallel()
	_, e := ParseType("test.pil", "foo::int")
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnexpectedToken, e.Code())
}
