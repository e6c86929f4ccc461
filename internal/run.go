package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunOptions carries the run-time knobs shared by the bare-flags CLI path
// and the YAML manifest path (manifest.go) — one struct populated from
// either source, rather than two parallel configuration shapes.
type RunOptions struct {
	Trace bool
}

// RunSource lexes, parses, and executes source against ctx, following
// mliezun-grotsky's internal/interp.go driver shape
// (RunSourceWithPrinter: scan -> check errors -> parse -> check errors ->
// interpret). Returns the first lexer, parser, or evaluator error
// encountered; nil on success.
func RunSource(source string, ctx Context, opts RunOptions, logger *logrus.Logger) error {
	lx := NewLexer(source)
	tokens, err := lx.Tokenize()
	if err != nil {
		logFailure(logger, err)
		return err
	}

	p := NewParser(tokens)
	program, err := p.Parse()
	if err != nil {
		logFailure(logger, err)
		return err
	}

	cl := NewClosure()
	for _, stmt := range program.Stmts {
		if opts.Trace {
			traceStatement(logger, fmt.Sprintf("%T", stmt))
		}
		if _, err := stmt.Execute(cl, ctx); err != nil {
			logFailure(logger, err)
			return err
		}
	}
	return nil
}
