// Command folprover decides theoremhood of closed first-order formulas over
// linear arithmetic on the rationals (§6's CLI surface): one formula per
// line on stdin (or --file), "true"/"false" per line on stdout.
//
// Grounded on the Consensys-go-corset teacher's cmd/main.go + pkg/cmd
// (cobra root command, Version var filled by "make" or else
// runtime/debug.ReadBuildInfo, GetFlag-style flag accessors) and its
// pkg/util/termio use of golang.org/x/term for tty detection. Lives in its
// own pkg/provecmd package, named to avoid colliding with the original
// go-corset CLI package name.
package main

import (
	"os"

	"github.com/gokiburi-labs/folprover/pkg/provecmd"
)

func main() {
	provecmd.Execute()
	os.Exit(provecmd.ExitCode())
}
