package internal

import "fmt"

// ErrorKind enumerates the single sum type of runtime failure, §7. Lexer
// failures (MalformedIndentation, UnterminatedString) and evaluator failures
// share this type; the parser's own failures are a separate SyntaxError,
// since §7 scopes the sum type to lexer+evaluator and spec.md treats the
// parser as an external collaborator.
type ErrorKind int

const (
	MalformedIndentation ErrorKind = iota
	UnterminatedString
	UndefinedName
	UnknownMethod
	IncompatibleOperands
	DivisionByZero
	IncomparableValues
	ArityMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedIndentation:
		return "MalformedIndentation"
	case UnterminatedString:
		return "UnterminatedString"
	case UndefinedName:
		return "UndefinedName"
	case UnknownMethod:
		return "UnknownMethod"
	case IncompatibleOperands:
		return "IncompatibleOperands"
	case DivisionByZero:
		return "DivisionByZero"
	case IncomparableValues:
		return "IncomparableValues"
	case ArityMismatch:
		return "ArityMismatch"
	default:
		return "UnknownError"
	}
}

// MythonError is the single runtime-failure sum type mandated by §7: a kind
// plus, where available, the offending identifier or operator and the
// source line.
type MythonError struct {
	Kind   ErrorKind
	Detail string
	Line   int
}

func (e *MythonError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newErr(kind ErrorKind, detail string) *MythonError {
	return &MythonError{Kind: kind, Detail: detail}
}

func withLine(err *MythonError, line int) *MythonError {
	err.Line = line
	return err
}

// SyntaxError reports a parser-stage failure. Deliberately not part of
// MythonError's sum type: the parser is an external collaborator per
// spec.md §1/§6, responsible for syntactic validity on its own terms.
type SyntaxError struct {
	Message string
	Line    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s", e.Message)
}
