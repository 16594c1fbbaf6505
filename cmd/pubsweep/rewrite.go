package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pubsweep/internal/driver"
	"pubsweep/internal/project"
	"pubsweep/internal/rewrite"
	"pubsweep/internal/source"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] <file.rs|directory>",
	Short: "Make the declarations in a file or directory public",
	Long: `Rewrite promotes every eligible declaration to pub, including struct
and union fields, impl members and extern block members. With
--recursive the promotion also descends into inline mod bodies.
Declarations carrying a #[pubsweep(exclude)] marker are left untouched
and the marker itself is removed from the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().String("arg", "", "configuration token, empty or \"recursive\"")
	rewriteCmd.Flags().Bool("recursive", false, "also descend into inline mod bodies")
	rewriteCmd.Flags().Bool("write", false, "write results back in place instead of printing")
	rewriteCmd.Flags().String("backup-suffix", "", "keep the original under this suffix when writing")
	rewriteCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	rewriteCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	rewriteCmd.Flags().StringSlice("exclude", nil, "glob patterns of paths to skip")
	rewriteCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	startDir := target
	if !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, _, err := project.Discover(startDir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("arg") {
		token, _ := flags.GetString("arg")
		recursive, modeErr := rewrite.ParseMode(token, source.Span{})
		if modeErr != nil {
			return modeErr
		}
		cfg.Rewrite.Recursive = recursive
	}
	if flags.Changed("recursive") {
		cfg.Rewrite.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("write") {
		cfg.Output.Write, _ = flags.GetBool("write")
	}
	if flags.Changed("backup-suffix") {
		cfg.Output.BackupSuffix, _ = flags.GetString("backup-suffix")
	}
	if extra, _ := flags.GetStringSlice("exclude"); len(extra) > 0 {
		cfg.Rewrite.Exclude = append(cfg.Rewrite.Exclude, extra...)
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}

	opts := driver.Options{
		Recursive:      cfg.Rewrite.Recursive,
		MaxDiagnostics: maxDiagnostics(cmd),
		Write:          cfg.Output.Write,
		BackupSuffix:   cfg.Output.BackupSuffix,
		Extensions:     cfg.Rewrite.Extensions,
		Excludes:       cfg.Rewrite.Exclude,
	}

	if !st.IsDir() {
		return rewriteSingle(cmd, target, opts)
	}

	opts.Jobs, _ = flags.GetInt("jobs")
	if cfg.Cache.Enabled {
		cache, cacheErr := driver.OpenDiskCache("pubsweep", cfg.Cache.Dir)
		if cacheErr != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}
	return rewriteDir(cmd, target, opts)
}

func rewriteSingle(cmd *cobra.Command, path string, opts driver.Options) error {
	fs, result, err := driver.RewriteFile(path, opts)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	printDiagnostics(cmd, fs, result.Bag)
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: rewrite aborted", path)
	}

	if !opts.Write {
		_, err = os.Stdout.Write(result.Output)
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintln(os.Stdout, summaryLine(&result))
	}
	return nil
}

func rewriteDir(cmd *cobra.Command, dir string, opts driver.Options) error {
	uiValue, _ := cmd.Flags().GetString("ui")
	mode, err := parseUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if shouldUseTUI(mode) {
		fs, results, err = runRewriteWithUI(cmd.Context(), "pubsweep "+dir, dir, opts)
	} else {
		fs, results, err = driver.RewriteDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	failed := 0
	changed := 0
	for i := range results {
		r := &results[i]
		printDiagnostics(cmd, fs, r.Bag)
		if r.Bag != nil && r.Bag.HasErrors() {
			failed++
			continue
		}
		if r.Changed {
			changed++
		}
		if !quiet {
			fmt.Fprintln(os.Stdout, summaryLine(r))
		}
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "%d files, %d rewritten, %d failed\n",
			len(results), changed, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func summaryLine(r *driver.FileResult) string {
	status := "unchanged"
	switch {
	case r.Changed && r.CacheHit:
		status = "rewritten (cached)"
	case r.Changed:
		status = "rewritten"
	case r.CacheHit:
		status = "unchanged (cached)"
	}
	if r.Markers > 0 {
		return fmt.Sprintf("%s: %s, %d markers removed", r.Path, status, r.Markers)
	}
	return fmt.Sprintf("%s: %s", r.Path, status)
}
