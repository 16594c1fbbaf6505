package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pubsweep/internal/diagfmt"
	"pubsweep/internal/driver"
	"pubsweep/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file down into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fs := source.NewFileSet()
	fid, err := fs.Load(filePath)
	if err != nil {
		return fmt.Errorf("load %s: %w", filePath, err)
	}

	tokens, bag := driver.TokenizeFile(fs, fid, maxDiagnostics(cmd))
	printDiagnostics(cmd, fs, bag)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
