package lex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/source"
	"github.com/powdr-lang/pilparse/internal/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	mgr := source.NewManager(src)
	lexer := New(mgr, "test.pil", src)
	var out []token.Token
	for {
		tok, e := lexer.Next()
		require.NoError(t, e)
		if tok.Type == token.TypeEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexerIdentifierClasses(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "foo Bar %Const :pub")
	require.Len(t, toks, 4)
	require.Equal(t, token.TypeIdentLower, toks[0].Type)
	require.Equal(t, token.TypeIdentUpper, toks[1].Type)
	require.Equal(t, token.TypeConstantIdent, toks[2].Type)
	require.Equal(t, "Const", toks[2].Text)
	require.Equal(t, token.TypePublicIdent, toks[3].Type)
	require.Equal(t, "pub", toks[3].Text)
}

func TestLexerKeywordSoftening(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "let file = 1;")
	require.Equal(t, token.TypeKeywordLet, toks[0].Type)
	require.Equal(t, token.TypeKeywordFile, toks[1].Type)
	require.True(t, token.Softened[toks[1].Type])
}

func TestLexerNumbers(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "1_000 0x1_F")
	require.Len(t, toks, 2)
	base, digits := NumberValue(toks[0].Text)
	require.Equal(t, 10, base)
	require.Equal(t, "1000", digits)
	base, digits = NumberValue(toks[1].Text)
	require.Equal(t, 16, base)
	require.Equal(t, "1F", digits)
}

func TestLexerStringEscapes(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, `"a\nb\"c"`)
	require.Len(t, toks, 1)
	require.Equal(t, token.TypeString, toks[0].Type)
}

func TestLexerUnterminatedString(t *testing.T) {
	t.Parallel()
	mgr := source.NewManager(`"unterminated`)
	lexer := New(mgr, "test.pil", `"unterminated`)
	_, e := lexer.Next()
	require.Error(t, e)
	require.Equal(t, exc.CodeUnterminatedString, e.Code())
}

func TestLexerSkipsCommentsAndWhitespace(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "a // line comment\n/* block */ b")
	require.Len(t, toks, 2)
	require.Equal(t, "a", toks[0].Text)
	require.Equal(t, "b", toks[1].Text)
}

func TestLexerPercentIsModuloUnlessFollowedByIdentifier(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "a % b")
	require.Len(t, toks, 3)
	require.Equal(t, token.TypePercent, toks[1].Type)

	toks = allTokens(t, "%Const")
	require.Len(t, toks, 1)
	require.Equal(t, token.TypeConstantIdent, toks[0].Type)
	require.Equal(t, "Const", toks[0].Text)
}

func TestLexerPunctuationMaximalMunch(t *testing.T) {
	t.Parallel()
	toks := allTokens(t, "<== :: .. <= == != ** << >> && || => -> ~> ${")
	expected := []token.Type{
		token.TypeAssignPipe, token.TypeDoubleColon, token.TypeDotDot,
		token.TypeLessEqual, token.TypeEqualEqual, token.TypeNotEqual,
		token.TypeDoubleStar, token.TypeShiftLeft, token.TypeShiftRight,
		token.TypeDoubleAmpersand, token.TypeDoublePipe, token.TypeFatArrow,
		token.TypeArrow, token.TypeSquiggle, token.TypeDollarCurly,
	}
	require.Len(t, toks, len(expected))
	for i, tt := range expected {
		require.Equal(t, tt, toks[i].Type, "token %d", i)
	}
}
