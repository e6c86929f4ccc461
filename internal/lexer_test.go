package internal

import "testing"

// tokenTypes extracts just the Type of each token, for shape assertions that
// don't care about payload.
func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, got []Token, want []TokenType) {
	t.Helper()
	gotTypes := tokenTypes(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot: %v\nwant: %v", len(gotTypes), len(want), gotTypes, want)
	}
	for i := range want {
		if gotTypes[i] != want[i] {
			t.Fatalf("token %d = %v, want %v\ngot: %v\nwant: %v", i, gotTypes[i], want[i], gotTypes, want)
		}
	}
}

func TestLexerEndsWithNewlineAndEof(t *testing.T) {
	// P1: the stream always ends with exactly one Eof, preceded by a
	// Newline whenever any content was seen.
	toks, err := NewLexer("print 1").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) < 2 {
		t.Fatalf("expected at least 2 tokens, got %v", toks)
	}
	last, secondLast := toks[len(toks)-1], toks[len(toks)-2]
	if last.Type != TokEOF {
		t.Fatalf("last token = %v, want Eof", last)
	}
	if secondLast.Type != TokNewline {
		t.Fatalf("second-last token = %v, want Newline", secondLast)
	}
}

func TestLexerEmptyInputIsJustEof(t *testing.T) {
	toks, err := NewLexer("").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{TokEOF})
}

func TestLexerSuppressesLeadingBlankLine(t *testing.T) {
	// Mirrors the leading "\n" every S1-S6 snippet is written with.
	toks, err := NewLexer("\nprint 1\n").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{TokPrint, TokNumber, TokNewline, TokEOF})
}

func TestLexerIndentDedentBalance(t *testing.T) {
	src := "if True:\n  print 1\n  print 2\nprint 3\n"
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Type {
		case TokIndent:
			indents++
		case TokDedent:
			dedents++
		}
	}
	// P2: indents minus dedents is zero across the whole stream.
	if indents != dedents {
		t.Fatalf("indents=%d dedents=%d, want equal", indents, dedents)
	}
	if indents != 1 {
		t.Fatalf("indents=%d, want 1", indents)
	}
}

func TestLexerDedentsToEofWithoutTrailingBlock(t *testing.T) {
	src := "if True:\n  print 1\n"
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Type {
		case TokIndent:
			indents++
		case TokDedent:
			dedents++
		}
	}
	if indents != dedents || indents != 1 {
		t.Fatalf("indents=%d dedents=%d, want balanced at 1", indents, dedents)
	}
}

func TestLexerMalformedIndentation(t *testing.T) {
	_, err := NewLexer("if True:\n   print 1\n").Tokenize()
	if err == nil {
		t.Fatal("expected a malformed-indentation error")
	}
	me, ok := err.(*MythonError)
	if !ok || me.Kind != MalformedIndentation {
		t.Fatalf("got %v, want MalformedIndentation", err)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := NewLexer("print 'abc").Tokenize()
	if err == nil {
		t.Fatal("expected an unterminated-string error")
	}
	me, ok := err.(*MythonError)
	if !ok || me.Kind != UnterminatedString {
		t.Fatalf("got %v, want UnterminatedString", err)
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	toks, err := NewLexer("a == b != c <= d >= e").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{
		TokID, TokEq, TokID, TokNotEq, TokID, TokLessOrEq, TokID, TokGreaterOrEq, TokID,
		TokNewline, TokEOF,
	})
}

func TestLexerCommentsDiscarded(t *testing.T) {
	toks, err := NewLexer("print 1 # trailing comment\n").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{TokPrint, TokNumber, TokNewline, TokEOF})
}

func TestTokenEqualComparesPayload(t *testing.T) {
	a := Token{Type: TokNumber, Number: 5}
	b := Token{Type: TokNumber, Number: 5}
	c := Token{Type: TokNumber, Number: 6}
	if !a.Equal(b) {
		t.Fatal("expected equal tokens to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected different payloads to compare unequal")
	}
}
