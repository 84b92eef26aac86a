package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powdr-lang/pilparse/internal/ast"
)

func parseASMOK(t *testing.T, src string) ast.ASMModule {
	t.Helper()
	mod, e := ParseASMModule("test.asm", src)
	require.Nil(t, e, "unexpected parse error: %v", e)
	return mod
}

func TestParseASMModule_MachineWithRegisterAndInstruction(t *testing.T) {
	t.Parallel()
	mod := parseASMOK(t, "machine M(latch, _) { reg pc[@pc]; instr jmp l: label { pc' = l } }")
	require.Len(t, mod.Statements, 1)

	m := mod.Statements[0].(ast.ModMachine)
	require.Equal(t, "M", m.Name)
	require.Equal(t, "M", m.Def.Name)
	require.Equal(t, "latch", m.Def.Latch.Name)
	require.False(t, m.Def.Latch.Underscore)
	require.True(t, m.Def.OperationID.Underscore)
	require.Len(t, m.Def.Statements, 2)

	reg := m.Def.Statements[0].(ast.MachRegisterDeclaration)
	require.Equal(t, "pc", reg.Name)
	require.Equal(t, ast.RegisterFlagPC, reg.Flag)

	instr := m.Def.Statements[1].(ast.MachInstructionDeclaration)
	require.Equal(t, "jmp", instr.Name)
	require.Len(t, instr.Params, 1)
	require.Equal(t, "l", instr.Params[0].Name)
	require.NotNil(t, instr.Params[0].Type)

	body := instr.Body.(ast.InstructionBodyList)
	require.Len(t, body.Elements, 1)
	elem := body.Elements[0]
	require.Nil(t, elem.Plookup)
	require.Nil(t, elem.Permutation)
	bin := elem.Expr.(ast.ExprBinaryOp)
	require.Equal(t, ast.OpIdentity, bin.Op)
	next := bin.Left.(ast.ExprUnaryOp)
	require.Equal(t, ast.OpNext, next.Op)
}

func TestParseASMModule_MachineWithNoLatchPlaceholders(t *testing.T) {
	t.Parallel()
	mod := parseASMOK(t, "machine Empty { }")
	m := mod.Statements[0].(ast.ModMachine)
	require.Equal(t, "Empty", m.Name)
	require.Empty(t, m.Def.Statements)
}

func TestParseASMModule_ImportAndNestedModule(t *testing.T) {
	t.Parallel()
	mod := parseASMOK(t, "use std::machines::Binary as Bin; mod inner { }")
	require.Len(t, mod.Statements, 2)

	imp := mod.Statements[0].(ast.ModImport)
	require.Equal(t, "Bin", imp.Alias)

	nested := mod.Statements[1].(ast.ModModule)
	require.Equal(t, "inner", nested.Name)
	require.NotNil(t, nested.Body)
}

func TestParseASMModule_ExternalModuleReferenceHasNilBody(t *testing.T) {
	t.Parallel()
	mod := parseASMOK(t, "mod outside;")
	ref := mod.Statements[0].(ast.ModModule)
	require.Equal(t, "outside", ref.Name)
	require.Nil(t, ref.Body)
}
