package provecmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gokiburi-labs/folprover/pkg/langserver"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run a Language Server Protocol server over stdio.",
	Long:  `lsp starts folprover's language server, speaking LSP over stdin/stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := langserver.Run(cmd.Context(), os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		}
	},
}
