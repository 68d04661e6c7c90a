// Command kjsonctl is a small demonstration and debugging front end for the
// kjson core: it parses, renders, patches, and walks dot-paths over JSON
// documents from the command line, and reports diagnostics through the same
// Logger hook the library itself expects a host to supply.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var limitsPath string

func main() {
	root := &cobra.Command{
		Use:           "kjsonctl",
		Short:         "Inspect and manipulate JSON documents with the kjson core",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&limitsPath, "limits", "", "path to a YAML file overriding the default parse Limits (read by the parse subcommand only)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}

// readInput reads path's contents, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
