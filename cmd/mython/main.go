package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mython/internal"

	"github.com/labstack/gommon/color"
)

func main() {
	manifestPath := flag.String("manifest", "", "path to a YAML run manifest")
	trace := flag.Bool("trace", false, "log per-statement execution trace")
	flag.Parse()

	source, opts, err := loadProgram(*manifestPath, *trace, flag.Args())
	if err != nil {
		fail(err)
	}

	// Without -trace the logrus records are discarded, so a failed run leaves
	// only fail's one line on stderr.
	logOut := io.Discard
	if opts.Trace {
		logOut = os.Stderr
	}
	logger := internal.NewDiagnosticsLogger(logOut, opts.Trace)
	ctx := internal.NewSimpleContext(os.Stdout)

	if err := internal.RunSource(source, ctx, opts, logger); err != nil {
		fail(err)
	}
}

// loadProgram resolves the source text and run options from either a
// manifest (-manifest path.yaml), a positional file argument, or stdin —
// grounded on mliezun-grotsky's cmd/grotsky/main.go (file-path argument,
// ioutil.ReadAll) extended with the manifest path and a stdin fallback per
// SPEC_FULL.md §6.
func loadProgram(manifestPath string, trace bool, args []string) (string, internal.RunOptions, error) {
	if manifestPath != "" {
		m, err := internal.LoadManifest(manifestPath)
		if err != nil {
			return "", internal.RunOptions{}, err
		}
		data, err := os.ReadFile(m.Entry)
		if err != nil {
			return "", internal.RunOptions{}, fmt.Errorf("reading entry %s: %w", m.Entry, err)
		}
		return string(data), internal.RunOptions{Trace: trace || m.Trace}, nil
	}

	opts := internal.RunOptions{Trace: trace}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", opts, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), opts, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", opts, fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), opts, nil
}

// fail prints one diagnostic line to stderr, colorized when stderr is a
// terminal (gommon/color no-ops on non-TTY output, so piped/redirected runs
// see plain text), and exits non-zero — the one-line-diagnostic,
// non-zero-exit contract of §6/§7.
func fail(err error) {
	fmt.Fprintln(os.Stderr, color.Red(err.Error()))
	os.Exit(1)
}
