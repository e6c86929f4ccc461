package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewDiagnosticsLogger builds the logrus.Logger used for run tracing and
// error reporting. mliezun-grotsky's go.mod carries logrus without ever
// importing it in the snapshot this project was grown from; this wires it
// in rather than dropping it, in the plain-text register a CLI tool in this
// corpus would use (no JSON formatter, full timestamps).
func NewDiagnosticsLogger(out io.Writer, trace bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if trace {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// traceStatement logs one debug line per top-level statement class executed,
// gated by -trace.
func traceStatement(logger *logrus.Logger, kind string) {
	logger.WithField("statement", kind).Debug("executing")
}

// logFailure reports a MythonError/SyntaxError with structured fields
// instead of a bare message, so downstream tooling can filter by kind/line.
func logFailure(logger *logrus.Logger, err error) {
	switch e := err.(type) {
	case *MythonError:
		logger.WithFields(logrus.Fields{"kind": e.Kind.String(), "line": e.Line}).Error(e.Detail)
	case *SyntaxError:
		logger.WithFields(logrus.Fields{"kind": "SyntaxError", "line": e.Line}).Error(e.Message)
	default:
		logger.Error(err.Error())
	}
}
