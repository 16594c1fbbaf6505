package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	codeColor = color.New(color.Bold)
)

// Pretty formats diagnostics for humans, one block per entry:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// The bag should be sorted first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d, fs, opts)
	}
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatLocation(fs, d.Primary, opts.PathMode),
		severityLabel(d.Severity, opts.Color),
		codeLabel(d.Code, opts.Color),
		d.Message,
	)
	if opts.ShowSource {
		printSourceLine(w, fs, d.Primary)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", formatLocation(fs, n.Span, opts.PathMode), n.Msg)
			if opts.ShowSource {
				printSourceLine(w, fs, n.Span)
			}
		}
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(sev.String())
	case diag.SevWarning:
		return warnColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

func codeLabel(code diag.Code, colored bool) string {
	if !colored {
		return code.String()
	}
	return codeColor.Sprint(code.String())
}

func formatLocation(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(f, mode), start.Line, start.Col)
}

func displayPath(f *source.File, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	default:
		return f.DisplayPath()
	}
}

// printSourceLine shows the first line the span touches with a caret
// run underneath.
func printSourceLine(w io.Writer, fs *source.FileSet, sp source.Span) {
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && sp.Len() == 0 && int(sp.Start) >= len(f.Content) {
		return
	}
	fmt.Fprintf(w, "    %s\n", strings.TrimRight(line, "\r\n"))

	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	}
	if caretStart < 0 || caretStart > len(line) {
		return
	}
	fmt.Fprintf(w, "    %s%s\n",
		strings.Repeat(" ", caretStart),
		strings.Repeat("^", caretLen),
	)
}
