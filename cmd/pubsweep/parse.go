package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pubsweep/internal/diagfmt"
	"pubsweep/internal/driver"
	"pubsweep/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rs",
	Short: "Parse a source file and print its declaration tree",
	Long: `Parse builds the declaration tree of a source file and prints it,
showing each item's kind, name and visibility.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	builder, astFile, bag := driver.ParseOne(fs, fid, maxDiagnostics(cmd))
	printDiagnostics(cmd, fs, bag)
	if bag.HasErrors() {
		return fmt.Errorf("parse failed with %d diagnostics", bag.Len())
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTTree(os.Stdout, builder, astFile, fs)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, builder, astFile, fs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
