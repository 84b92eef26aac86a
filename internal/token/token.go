// Package token defines the token vocabulary produced by the recognizer
// (spec §4.1, §6).
package token

import "github.com/powdr-lang/pilparse/internal/source"

type Type uint16

const (
	TypeError Type = iota
	TypeEOF

	// Literals and identifiers.
	TypeNumber
	TypeString
	TypeIdentLower // lowercase-leading identifier
	TypeIdentUpper // uppercase-leading identifier (also: type-variable names)
	TypeConstantIdent // %name
	TypePublicIdent   // :name

	// Keywords.
	TypeKeywordMod
	TypeKeywordUse
	TypeKeywordAs
	TypeKeywordSuper
	TypeKeywordLet
	TypeKeywordNamespace
	TypeKeywordInclude
	TypeKeywordConstant
	TypeKeywordPublic
	TypeKeywordPol
	TypeKeywordCol
	TypeKeywordCommit
	TypeKeywordWitness
	TypeKeywordFixed
	TypeKeywordStage
	TypeKeywordQuery
	TypeKeywordConstr
	TypeKeywordEnum
	TypeKeywordMatch
	TypeKeywordIf
	TypeKeywordElse
	TypeKeywordIn
	TypeKeywordIs
	TypeKeywordConnect
	TypeKeywordMachine
	TypeKeywordDegree
	TypeKeywordCallSelectors
	TypeKeywordReg
	TypeKeywordInstr
	TypeKeywordLink
	TypeKeywordFunction
	TypeKeywordOperation
	TypeKeywordReturn

	// Softened keywords (see Softened): accepted wherever a general
	// identifier is, except that int/fe are rejected as type-path parts.
	// TypeKeywordString is listed here but is not softened.
	TypeKeywordFile
	TypeKeywordLoc
	TypeKeywordInsn
	TypeKeywordInt
	TypeKeywordFe
	TypeKeywordExpr
	TypeKeywordBool
	TypeKeywordString

	// Punctuation.
	TypeSemicolon
	TypeComma
	TypeColon
	TypeDoubleColon
	TypeDot
	TypeDotDot
	TypeParenOpen
	TypeParenClose
	TypeCurlyOpen
	TypeCurlyClose
	TypeSquareOpen
	TypeSquareClose
	TypeAt
	TypeAngleOpen  // <
	TypeAngleClose // >
	TypeLessEqual
	TypeGreaterEqual
	TypeEqualEqual
	TypeEqual
	TypeNotEqual
	TypePlus
	TypeMinus
	TypeStar
	TypeSlash
	TypePercent
	TypeDoubleStar
	TypeAmpersand
	TypePipe
	TypeCaret
	TypeShiftLeft
	TypeShiftRight
	TypeDoubleAmpersand
	TypeDoublePipe
	TypeBang
	TypeQuote // '
	TypeUnderscore
	TypeQuestion
	TypeFatArrow    // =>
	TypeArrow       // ->
	TypeSquiggle    // ~>
	TypeAssignPipe  // <==
	TypeDollarCurly // ${
)

var names = map[Type]string{
	TypeError: "error", TypeEOF: "end of input",
	TypeNumber: "number", TypeString: "string literal",
	TypeIdentLower: "identifier", TypeIdentUpper: "upper identifier",
	TypeConstantIdent: "constant identifier", TypePublicIdent: "public identifier",

	TypeKeywordMod: "mod", TypeKeywordUse: "use", TypeKeywordAs: "as",
	TypeKeywordSuper: "super", TypeKeywordLet: "let", TypeKeywordNamespace: "namespace",
	TypeKeywordInclude: "include", TypeKeywordConstant: "constant", TypeKeywordPublic: "public",
	TypeKeywordPol: "pol", TypeKeywordCol: "col", TypeKeywordCommit: "commit",
	TypeKeywordWitness: "witness", TypeKeywordFixed: "fixed", TypeKeywordStage: "stage",
	TypeKeywordQuery: "query", TypeKeywordConstr: "constr", TypeKeywordEnum: "enum",
	TypeKeywordMatch: "match", TypeKeywordIf: "if", TypeKeywordElse: "else",
	TypeKeywordIn: "in", TypeKeywordIs: "is", TypeKeywordConnect: "connect",
	TypeKeywordMachine: "machine", TypeKeywordDegree: "degree",
	TypeKeywordCallSelectors: "call_selectors", TypeKeywordReg: "reg",
	TypeKeywordInstr: "instr", TypeKeywordLink: "link", TypeKeywordFunction: "function",
	TypeKeywordOperation: "operation", TypeKeywordReturn: "return",
	TypeKeywordFile: "file", TypeKeywordLoc: "loc", TypeKeywordInsn: "insn",
	TypeKeywordInt: "int", TypeKeywordFe: "fe", TypeKeywordExpr: "expr",
	TypeKeywordBool: "bool", TypeKeywordString: "string",

	TypeSemicolon: ";", TypeComma: ",", TypeColon: ":", TypeDoubleColon: "::",
	TypeDot: ".", TypeDotDot: "..", TypeParenOpen: "(", TypeParenClose: ")",
	TypeCurlyOpen: "{", TypeCurlyClose: "}", TypeSquareOpen: "[", TypeSquareClose: "]",
	TypeAt: "@", TypeAngleOpen: "<", TypeAngleClose: ">", TypeLessEqual: "<=",
	TypeGreaterEqual: ">=", TypeEqualEqual: "==", TypeEqual: "=", TypeNotEqual: "!=",
	TypePlus: "+", TypeMinus: "-", TypeStar: "*", TypeSlash: "/", TypePercent: "%",
	TypeDoubleStar: "**", TypeAmpersand: "&", TypePipe: "|", TypeCaret: "^",
	TypeShiftLeft: "<<", TypeShiftRight: ">>", TypeDoubleAmpersand: "&&",
	TypeDoublePipe: "||", TypeBang: "!", TypeQuote: "'", TypeUnderscore: "_",
	TypeQuestion: "?", TypeFatArrow: "=>", TypeArrow: "->", TypeSquiggle: "~>",
	TypeAssignPipe: "<==", TypeDollarCurly: "${",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}

// Keywords maps each reserved word's spelling to its token type. Built once
// and consulted by the lexer after it has already matched an identifier
// body (maximal munch with keyword priority, per spec §4.1).
var Keywords = map[string]Type{
	"mod": TypeKeywordMod, "use": TypeKeywordUse, "as": TypeKeywordAs,
	"super": TypeKeywordSuper, "let": TypeKeywordLet, "namespace": TypeKeywordNamespace,
	"include": TypeKeywordInclude, "constant": TypeKeywordConstant, "public": TypeKeywordPublic,
	"pol": TypeKeywordPol, "col": TypeKeywordCol, "commit": TypeKeywordCommit,
	"witness": TypeKeywordWitness, "fixed": TypeKeywordFixed, "stage": TypeKeywordStage,
	"query": TypeKeywordQuery, "constr": TypeKeywordConstr, "enum": TypeKeywordEnum,
	"match": TypeKeywordMatch, "if": TypeKeywordIf, "else": TypeKeywordElse,
	"in": TypeKeywordIn, "is": TypeKeywordIs, "connect": TypeKeywordConnect,
	"machine": TypeKeywordMachine, "degree": TypeKeywordDegree,
	"call_selectors": TypeKeywordCallSelectors, "reg": TypeKeywordReg,
	"instr": TypeKeywordInstr, "link": TypeKeywordLink, "function": TypeKeywordFunction,
	"operation": TypeKeywordOperation, "return": TypeKeywordReturn,
	"file": TypeKeywordFile, "loc": TypeKeywordLoc, "insn": TypeKeywordInsn,
	"int": TypeKeywordInt, "fe": TypeKeywordFe, "expr": TypeKeywordExpr,
	"bool": TypeKeywordBool, "string": TypeKeywordString,
}

// Softened is the set of keyword token types spec §4.1/§4.4 allow to stand
// in for a general identifier; in a type path, int and fe are still
// rejected.
var Softened = map[Type]bool{
	TypeKeywordFile: true, TypeKeywordLoc: true, TypeKeywordInsn: true,
	TypeKeywordInt: true, TypeKeywordFe: true, TypeKeywordExpr: true,
	TypeKeywordBool: true,
}

type Token struct {
	Type  Type
	Text  string // raw spelling, underscores/escapes intact where relevant
	Ref   source.SourceRef
}
