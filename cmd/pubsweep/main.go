package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pubsweep/internal/diag"
	"pubsweep/internal/diagfmt"
	"pubsweep/internal/source"
	"pubsweep/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pubsweep",
	Short: "Visibility rewriter for Rust-style declaration files",
	Long: `pubsweep makes the declarations in a source file public, recursively
or shallowly, honoring per-node #[pubsweep(exclude)] markers.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return n
}

// printDiagnostics renders a bag to stderr, quietly skipping empty ones.
func printDiagnostics(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !bag.HasErrors() {
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowNotes:  true,
		ShowSource: true,
	})
}
