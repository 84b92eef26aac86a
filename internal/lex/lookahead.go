package lex

import (
	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/token"
)

// TokenSource is anything that can hand back one token at a time; *Lexer
// satisfies it. Kept as a separate interface so the parser can be driven
// by a pre-recorded token slice in tests without a real Lexer.
type TokenSource interface {
	Next() (token.Token, exc.Exception)
}

// Lookahead buffers tokens pulled from a TokenSource so the parser can peek
// arbitrarily far ahead (spec §9 needs two-token lookahead to disambiguate
// "path :: <" from "path :: ident"). Pattern adapted from the teacher's
// generic ring-buffer lookahead (internal/iter/iter.go in the retrieval
// pack), rebuilt here against a local TokenSource instead of the missing
// proto-backed iterator interfaces.
type Lookahead struct {
	src  TokenSource
	buf  []token.Token
	errs []exc.Exception
}

func NewLookahead(src TokenSource) *Lookahead {
	return &Lookahead{src: src}
}

func (l *Lookahead) fill(n int) {
	for len(l.buf) <= n {
		t, e := l.src.Next()
		l.buf = append(l.buf, t)
		l.errs = append(l.errs, e)
	}
}

// PeekN returns the token n positions ahead of the current position
// without consuming it (n=0 is the next token to be consumed).
func (l *Lookahead) PeekN(n int) (token.Token, exc.Exception) {
	l.fill(n)
	return l.buf[n], l.errs[n]
}

func (l *Lookahead) Peek() (token.Token, exc.Exception) {
	return l.PeekN(0)
}

// Advance consumes and returns the current token.
func (l *Lookahead) Advance() (token.Token, exc.Exception) {
	t, e := l.PeekN(0)
	l.buf = l.buf[1:]
	l.errs = l.errs[1:]
	return t, e
}
