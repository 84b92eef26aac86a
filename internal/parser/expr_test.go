package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powdr-lang/pilparse/internal/ast"
	"github.com/powdr-lang/pilparse/internal/exc"
)

func exprOf(t *testing.T, src string) ast.Expression {
	t.Helper()
	file := parsePILOK(t, "let x = "+src+";")
	return file.Statements[0].(ast.PilLet).Value
}

func TestExpr_PowerIsRightAssociative(t *testing.T) {
	t.Parallel()
	top := exprOf(t, "a ** b ** c").(ast.ExprBinaryOp)
	require.Equal(t, ast.OpPow, top.Op)
	_, leftIsName := top.Left.(ast.ExprReference)
	require.True(t, leftIsName)
	right := top.Right.(ast.ExprBinaryOp)
	require.Equal(t, ast.OpPow, right.Op)
}

func TestExpr_UnaryBindsOutsidePower(t *testing.T) {
	t.Parallel()
	neg := exprOf(t, "- a ** b").(ast.ExprUnaryOp)
	require.Equal(t, ast.OpNegate, neg.Op)
	inner := neg.Operand.(ast.ExprBinaryOp)
	require.Equal(t, ast.OpPow, inner.Op)
}

func TestExpr_PostfixNextBindsTighterThanAdd(t *testing.T) {
	t.Parallel()
	add := exprOf(t, "a' + b").(ast.ExprBinaryOp)
	require.Equal(t, ast.OpAdd, add.Op)
	next := add.Left.(ast.ExprUnaryOp)
	require.Equal(t, ast.OpNext, next.Op)
	require.True(t, next.Op.Postfix())
}

func TestExpr_ComparisonIsNonAssociative(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", "let x = a < b < c;")
	require.NotNil(t, e)
	require.Equal(t, exc.CodeUnexpectedToken, e.Code())
}

func TestExpr_IdentityVsEqualOperators(t *testing.T) {
	t.Parallel()
	identity := exprOf(t, "a = b").(ast.ExprBinaryOp)
	require.Equal(t, ast.OpIdentity, identity.Op)
	equal := exprOf(t, "a == b").(ast.ExprBinaryOp)
	require.Equal(t, ast.OpEqual, equal.Op)
}

func TestExpr_IfRequiresElse(t *testing.T) {
	t.Parallel()
	_, e := ParsePILFile("test.pil", "let x = if a { 1 };")
	require.NotNil(t, e)
}

func TestExpr_BlockWithLetStatement(t *testing.T) {
	t.Parallel()
	block := exprOf(t, "{ let y = 1; y + 1 }").(ast.ExprBlock)
	require.Len(t, block.Stmts, 1)
	_, isLet := block.Stmts[0].(ast.BlockLetStmt)
	require.True(t, isLet)
	_, isAdd := block.Value.(ast.ExprBinaryOp)
	require.True(t, isAdd)
}

func TestExpr_FreeInput(t *testing.T) {
	t.Parallel()
	fi := exprOf(t, "${ x }").(ast.ExprFreeInput)
	_, isRef := fi.Inner.(ast.ExprReference)
	require.True(t, isRef)
}

func TestExpr_EmptyAndNonEmptyTuple(t *testing.T) {
	t.Parallel()
	unit := exprOf(t, "()").(ast.ExprTuple)
	require.Len(t, unit.Elements, 0)
	pair := exprOf(t, "(a, b)").(ast.ExprTuple)
	require.Len(t, pair.Elements, 2)
	paren := exprOf(t, "(a)")
	_, isTuple := paren.(ast.ExprTuple)
	require.False(t, isTuple)
}

func TestExpr_ModuloOperator(t *testing.T) {
	t.Parallel()
	mod := exprOf(t, "a % b").(ast.ExprBinaryOp)
	require.Equal(t, ast.OpMod, mod.Op)
}

func TestExpr_IndexAndCallChain(t *testing.T) {
	t.Parallel()
	call := exprOf(t, "f(a)[0]").(ast.ExprIndexAccess)
	_, calleeIsCall := call.Base.(ast.ExprCall)
	require.True(t, calleeIsCall)
}
