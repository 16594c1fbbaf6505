package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pubsweep/internal/driver"
	"pubsweep/internal/source"
	"pubsweep/internal/ui"
)

type rewriteOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

func runRewriteWithUI(ctx context.Context, title, dir string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".rs"}
	}
	files, err := driver.ListSourceFiles(dir, exts, opts.Excludes)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan rewriteOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = func(ev driver.Event) {
			events <- ev
		}
		fs, results, err := driver.RewriteDir(ctx, dir, optsCopy)
		outcomeCh <- rewriteOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := awaitOutcome(events, outcomeCh)
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

// awaitOutcome drains leftover events before waiting. When the view
// quits early the workers may still be blocked on the event channel.
func awaitOutcome(events <-chan driver.Event, outcomeCh <-chan rewriteOutcome) rewriteOutcome {
	for range events {
	}
	return <-outcomeCh
}
