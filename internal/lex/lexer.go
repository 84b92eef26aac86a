// Package lex implements the token recognizer (spec §4.1): it turns source
// text into a stream of tokens, skipping whitespace and comments. Pattern
// grounded on the teacher's hand-rolled rune-switch lexer
// (internal/compiler/microglot/lexer_microglot.go in the retrieval pack);
// the token vocabulary itself belongs to a different grammar entirely, so
// every recognition rule below is authored fresh against spec §4.1/§6.
package lex

import (
	"strings"

	"github.com/powdr-lang/pilparse/internal/exc"
	"github.com/powdr-lang/pilparse/internal/source"
	"github.com/powdr-lang/pilparse/internal/token"
)

// Lexer pulls one token at a time from an in-memory source string. It
// performs no I/O (spec §5) and never backtracks across tokens; all
// lookahead it needs is local to recognizing a single token.
type Lexer struct {
	ctx source.Context
	uri string
	src string
	pos int
}

func New(ctx source.Context, uri string, src string) *Lexer {
	return &Lexer{ctx: ctx, uri: uri, src: src}
}

func (l *Lexer) byteAt(offset int) (byte, bool) {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) loc(offset int) exc.Location {
	return exc.Location{SourceRef: l.ctx.SourceRef(offset), URI: l.uri}
}

// Next returns the next token, skipping whitespace and comments. Once the
// end of input is reached it returns a TypeEOF token forever after.
func (l *Lexer) Next() (token.Token, exc.Exception) {
	l.skipTrivia()
	start := l.pos
	c, ok := l.byteAt(0)
	if !ok {
		return token.Token{Type: token.TypeEOF, Ref: l.ctx.SourceRef(start)}, nil
	}

	switch {
	case c == '_':
		if isIdentCont(peekByte(l.src, l.pos+1)) {
			return l.readIdent(start, token.TypeIdentLower)
		}
		l.pos++
		return l.tok(token.TypeUnderscore, start), nil
	case isLowerStart(c):
		return l.readIdent(start, token.TypeIdentLower)
	case isUpperStart(c):
		return l.readIdent(start, token.TypeIdentUpper)
	case c == '%' && isIdentStart(peekByte(l.src, l.pos+1)):
		l.pos++
		return l.readSigil(start, token.TypeConstantIdent)
	case c == ':' && isIdentStart(peekByte(l.src, l.pos+1)):
		l.pos++
		return l.readSigil(start, token.TypePublicIdent)
	case c == '"':
		return l.readString(start)
	case isDigit(c):
		return l.readNumber(start)
	default:
		return l.readPunctuation(start)
	}
}

func (l *Lexer) tok(t token.Type, start int) token.Token {
	return token.Token{Type: t, Text: l.src[start:l.pos], Ref: l.ctx.SourceRef(start)}
}

func (l *Lexer) skipTrivia() {
	for {
		c, ok := l.byteAt(0)
		if !ok {
			return
		}
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '/' && peekByte(l.src, l.pos+1) == '/':
			for {
				c, ok := l.byteAt(0)
				if !ok || c == '\n' {
					break
				}
				l.pos++
			}
		case c == '/' && peekByte(l.src, l.pos+1) == '*':
			l.pos += 2
			for {
				c, ok := l.byteAt(0)
				if !ok {
					return
				}
				if c == '*' && peekByte(l.src, l.pos+1) == '/' {
					l.pos += 2
					break
				}
				l.pos++
			}
		default:
			return
		}
	}
}

func isLowerStart(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpperStart(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return isLowerStart(c) || isUpperStart(c) || c == '_' }
func isIdentStartOrDigit(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
func isIdentCont(c byte) bool {
	return isLowerStart(c) || isUpperStart(c) || isDigit(c) || c == '$' || c == '_' || c == '@'
}

func peekByte(src string, i int) byte {
	if i < 0 || i >= len(src) {
		return 0
	}
	return src[i]
}

func (l *Lexer) readIdent(start int, class token.Type) (token.Token, exc.Exception) {
	l.pos++
	for isIdentCont(peekByte(l.src, l.pos)) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if class == token.TypeIdentLower {
		if kw, ok := token.Keywords[text]; ok {
			return token.Token{Type: kw, Text: text, Ref: l.ctx.SourceRef(start)}, nil
		}
	}
	return token.Token{Type: class, Text: text, Ref: l.ctx.SourceRef(start)}, nil
}

// readSigil reads the identifier body following a '%' or ':' sigil; the
// sigil itself has already been consumed by the caller. Text carries just
// the identifier body (the name), not the sigil; Ref still points at the
// sigil, the token's first byte.
func (l *Lexer) readSigil(start int, t token.Type) (token.Token, exc.Exception) {
	nameStart := l.pos
	for isIdentCont(peekByte(l.src, l.pos)) {
		l.pos++
	}
	return token.Token{Type: t, Text: l.src[nameStart:l.pos], Ref: l.ctx.SourceRef(start)}, nil
}

func (l *Lexer) readNumber(start int) (token.Token, exc.Exception) {
	if peekByte(l.src, l.pos) == '0' && (peekByte(l.src, l.pos+1) == 'x' || peekByte(l.src, l.pos+1) == 'X') {
		l.pos += 2
		digits := 0
		for {
			c := peekByte(l.src, l.pos)
			if isHex(c) || c == '_' {
				if isHex(c) {
					digits++
				}
				l.pos++
				continue
			}
			break
		}
		if digits == 0 {
			return token.Token{}, exc.New(l.loc(start), exc.CodeMalformedNumber, "hex literal has no digits")
		}
		return l.tok(token.TypeNumber, start), nil
	}
	for {
		c := peekByte(l.src, l.pos)
		if isDigit(c) || c == '_' {
			l.pos++
			continue
		}
		break
	}
	return l.tok(token.TypeNumber, start), nil
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// NumberValue strips underscores and returns the decimal/hex text suitable
// for arbitrary-precision parsing by the host (spec explicitly leaves
// number arithmetic to a collaborator; this just normalizes the spelling).
func NumberValue(text string) (base int, digits string) {
	clean := strings.ReplaceAll(text, "_", "")
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		return 16, clean[2:]
	}
	return 10, clean
}

var simpleEscapes = map[byte]bool{
	't': true, 'n': true, 'f': true, 'b': true, 'r': true,
	'x': true, '\'': true, '"': true, '\\': true,
}

func (l *Lexer) readString(start int) (token.Token, exc.Exception) {
	l.pos++ // consume opening quote
	for {
		c, ok := l.byteAt(0)
		if !ok {
			return token.Token{}, exc.New(l.loc(start), exc.CodeUnterminatedString, "unterminated string literal")
		}
		if c == '\n' {
			return token.Token{}, exc.New(l.loc(start), exc.CodeUnterminatedString, "newline inside string literal")
		}
		if c == '"' {
			l.pos++
			return l.tok(token.TypeString, start), nil
		}
		if c == '\\' {
			esc, ok := l.byteAt(1)
			if !ok {
				return token.Token{}, exc.New(l.loc(start), exc.CodeUnterminatedString, "unterminated string literal")
			}
			if esc >= '0' && esc <= '7' {
				l.pos += 2
				continue
			}
			if !simpleEscapes[esc] {
				return token.Token{}, exc.New(l.loc(l.pos), exc.CodeUnknownToken, "invalid escape sequence")
			}
			l.pos += 2
			continue
		}
		l.pos++
	}
}

func (l *Lexer) readPunctuation(start int) (token.Token, exc.Exception) {
	three := func(a, b, c byte) bool {
		return peekByte(l.src, l.pos) == a && peekByte(l.src, l.pos+1) == b && peekByte(l.src, l.pos+2) == c
	}
	two := func(a, b byte) bool {
		return peekByte(l.src, l.pos) == a && peekByte(l.src, l.pos+1) == b
	}

	switch {
	case three('<', '=', '='):
		l.pos += 3
		return l.tok(token.TypeAssignPipe, start), nil
	case two(':', ':'):
		l.pos += 2
		return l.tok(token.TypeDoubleColon, start), nil
	case two('.', '.'):
		l.pos += 2
		return l.tok(token.TypeDotDot, start), nil
	case two('<', '='):
		l.pos += 2
		return l.tok(token.TypeLessEqual, start), nil
	case two('>', '='):
		l.pos += 2
		return l.tok(token.TypeGreaterEqual, start), nil
	case two('=', '='):
		l.pos += 2
		return l.tok(token.TypeEqualEqual, start), nil
	case two('!', '='):
		l.pos += 2
		return l.tok(token.TypeNotEqual, start), nil
	case two('*', '*'):
		l.pos += 2
		return l.tok(token.TypeDoubleStar, start), nil
	case two('<', '<'):
		l.pos += 2
		return l.tok(token.TypeShiftLeft, start), nil
	case two('>', '>'):
		l.pos += 2
		return l.tok(token.TypeShiftRight, start), nil
	case two('&', '&'):
		l.pos += 2
		return l.tok(token.TypeDoubleAmpersand, start), nil
	case two('|', '|'):
		l.pos += 2
		return l.tok(token.TypeDoublePipe, start), nil
	case two('=', '>'):
		l.pos += 2
		return l.tok(token.TypeFatArrow, start), nil
	case two('-', '>'):
		l.pos += 2
		return l.tok(token.TypeArrow, start), nil
	case two('~', '>'):
		l.pos += 2
		return l.tok(token.TypeSquiggle, start), nil
	case two('$', '{'):
		l.pos += 2
		return l.tok(token.TypeDollarCurly, start), nil
	}

	c, _ := l.byteAt(0)
	single := map[byte]token.Type{
		';': token.TypeSemicolon, ',': token.TypeComma, ':': token.TypeColon,
		'.': token.TypeDot, '(': token.TypeParenOpen, ')': token.TypeParenClose,
		'{': token.TypeCurlyOpen, '}': token.TypeCurlyClose,
		'[': token.TypeSquareOpen, ']': token.TypeSquareClose, '@': token.TypeAt,
		'<': token.TypeAngleOpen, '>': token.TypeAngleClose, '=': token.TypeEqual,
		'+': token.TypePlus, '-': token.TypeMinus, '*': token.TypeStar,
		'/': token.TypeSlash, '%': token.TypePercent, '&': token.TypeAmpersand,
		'|': token.TypePipe, '^': token.TypeCaret, '!': token.TypeBang,
		'\'': token.TypeQuote, '?': token.TypeQuestion,
	}
	if t, ok := single[c]; ok {
		l.pos++
		return l.tok(t, start), nil
	}
	return token.Token{}, exc.New(l.loc(start), exc.CodeUnknownToken, "unrecognized character")
}
