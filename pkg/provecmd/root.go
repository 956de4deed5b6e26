// Package provecmd implements the folprover command line: a cobra root
// command that reads formulas (one per line, §6's grammar) from stdin or
// --file, decides each with pkg/qe.IsTheoremTraced, and prints
// "true"/"false" per line. Grounded on the Consensys-go-corset teacher's
// pkg/cmd/root.go (Version var + "go install"/"make" fallback, GetFlag-style
// accessors, PersistentFlags on the root command). --verbose prints each
// formula's proof trace to stderr; the logrus level is left at its default,
// so pkg/trace's debug-level log lines are not shown.
package provecmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "folprover",
	Short: "A decision procedure for linear arithmetic over the rationals.",
	Long: `folprover decides theoremhood of closed first-order formulas over
linear arithmetic on the rationals, by quantifier elimination
(Fourier-Motzkin). Formulas are read one per line from stdin or --file;
each line's verdict ("true" or "false") is printed to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}

		runProve(cmd, args)
	},
}

func printVersion() {
	fmt.Print("folprover ")

	if Version != "" {
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Printf("%s", info.Main.Version)
	} else {
		fmt.Printf("(unknown version)")
	}

	fmt.Println()
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main(); use ExitCode afterwards for the process exit
// status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if exitCode == 0 {
			exitCode = 1
		}
	}
}

// ExitCode returns the process exit status Execute determined: 0 on normal
// completion (regardless of individual true/false verdicts); otherwise the
// status set by the most recent failure — 2 for an input line that failed to
// parse or exceeded --max-constraints, 1 for any other error.
func ExitCode() int {
	return exitCode
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().StringP("file", "f", "", "read formulas from this file instead of stdin")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print a proof trace for each formula to stderr")
	rootCmd.PersistentFlags().Bool("trace-json", false, "emit the proof trace as JSON instead of plain text")
	rootCmd.PersistentFlags().Int("max-constraints", 0, "bound Fourier-Motzkin row growth per elimination step (0 = unbounded)")

	rootCmd.AddCommand(lspCmd)
}

// GetFlag gets an expected bool flag, exiting via log.Fatalf (status 1) if
// it is missing — a programmer error, since every flag used here is declared in
// init.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatalf("flag %q: %s", flag, err)
	}

	return r
}

// GetString gets an expected string flag.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Fatalf("flag %q: %s", flag, err)
	}

	return r
}

// GetInt gets an expected int flag.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		log.Fatalf("flag %q: %s", flag, err)
	}

	return r
}
