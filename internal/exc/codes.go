package exc

const (
	CodeUnknownFatal = "P0000"

	// LexicalError variants (spec §7).
	CodeUnknownToken       = "P0100"
	CodeUnterminatedString = "P0101"
	CodeMalformedNumber    = "P0102"

	// Syntactic failures.
	CodeUnexpectedToken      = "P0200"
	CodeUnexpectedEndOfInput = "P0201"

	// Reserved for a numeric literal exceeding a target integer range. No
	// parser path raises it: stage and length values are kept as
	// unconverted expressions.
	CodeNumberOutOfRange = "P0202"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{}
)
