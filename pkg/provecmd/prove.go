package provecmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gokiburi-labs/folprover/pkg/parser"
	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/qe"
	"github.com/gokiburi-labs/folprover/pkg/trace"
)

// runProve is the root command's default action: decide every formula read
// from --file or stdin, one per line, printing "true"/"false" per line to
// stdout. A proof trace is printed to stderr per formula when --verbose is
// set; any line that fails to parse is reported to stderr and sets the
// process exit status to 2.
func runProve(cmd *cobra.Command, args []string) {
	filename := GetString(cmd, "file")
	verbose := GetFlag(cmd, "verbose")
	traceJSON := GetFlag(cmd, "trace-json")
	maxConstraints := GetInt(cmd, "max-constraints")

	var (
		in     io.Reader
		prompt bool
	)

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1

			return
		}
		defer f.Close()

		in = f
	} else {
		in = os.Stdin
		prompt = term.IsTerminal(int(os.Stdin.Fd()))
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0

	for {
		if prompt {
			fmt.Fprint(os.Stdout, "> ")
		}

		if !scanner.Scan() {
			break
		}

		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;") {
			continue
		}

		f, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %s\n", lineNo, err)
			exitCode = 2

			continue
		}

		var tr *trace.Trace
		if verbose || traceJSON {
			tr = trace.New()
		}

		verdict, err := qe.IsTheoremTraced(f, maxConstraints, tr)
		if err != nil {
			reportProveError(lineNo, err)

			continue
		}

		if tr != nil {
			if traceJSON {
				tr.WriteJSON(os.Stderr)
			} else {
				tr.WriteHuman(os.Stderr)
			}
		}

		fmt.Fprintf(os.Stdout, "%t\n", verdict)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}
}

func reportProveError(lineNo int, err error) {
	fmt.Fprintf(os.Stderr, "line %d: %s\n", lineNo, err)

	if _, ok := err.(*proverr.ResourceExhaustedError); ok {
		exitCode = 2
		return
	}

	exitCode = 1
}
