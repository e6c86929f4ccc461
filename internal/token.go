package internal

import "fmt"

// TokenType tags the variant held by a Token, mirroring the tagged union in
// the Mython grammar: valued tokens, keyword markers, structural markers,
// compound-operator markers, and three internal-only counters that never
// leave the lexer.
type TokenType int

const (
	TokEOF TokenType = iota
	TokNumber
	TokID
	TokString
	TokChar

	TokClass
	TokReturn
	TokIf
	TokElse
	TokDef
	TokPrint
	TokAnd
	TokOr
	TokNot
	TokNone
	TokTrue
	TokFalse

	TokNewline
	TokIndent
	TokDedent

	TokEq
	TokNotEq
	TokLessOrEq
	TokGreaterOrEq

	// Internal-only: produced by the indent state machine, consumed and
	// expanded by Lexer.Tokenize before any Token of this type reaches a
	// parser. See I5/I6 and lexer.go's indent/dedent expansion.
	tokIndentCounter
	tokDedentCounter
	tokSavedent
)

var keywords = map[string]TokenType{
	"class":  TokClass,
	"return": TokReturn,
	"if":     TokIf,
	"else":   TokElse,
	"def":    TokDef,
	"print":  TokPrint,
	"and":    TokAnd,
	"or":     TokOr,
	"not":    TokNot,
	"None":   TokNone,
	"True":   TokTrue,
	"False":  TokFalse,
}

// Token is the single valued-or-bare tagged token. Only one of Number/Text/Char
// is meaningful, selected by Type.
type Token struct {
	Type   TokenType
	Number int
	Text   string
	Char   rune
	Line   int
}

// Equal compares the variant and, for valued variants, the payload — it
// ignores Line, which is positional metadata rather than part of identity.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case TokNumber:
		return t.Number == o.Number
	case TokID, TokString:
		return t.Text == o.Text
	case TokChar:
		return t.Char == o.Char
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Type {
	case TokNumber:
		return fmt.Sprintf("Number(%d)", t.Number)
	case TokID:
		return fmt.Sprintf("Id(%s)", t.Text)
	case TokString:
		return fmt.Sprintf("String(%q)", t.Text)
	case TokChar:
		return fmt.Sprintf("Char(%c)", t.Char)
	case TokNewline:
		return "Newline"
	case TokIndent:
		return "Indent"
	case TokDedent:
		return "Dedent"
	case TokEOF:
		return "Eof"
	default:
		return fmt.Sprintf("Token(%d)", t.Type)
	}
}
