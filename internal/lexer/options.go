package lexer

import (
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diagnostic
// storage. The outer layer decides where reports go.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}

// BagReporter adapts a diag.Bag to the lexer Reporter interface.
type BagReporter struct {
	Bag *diag.Bag
}

func (r *BagReporter) Report(code diag.Code, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(diag.NewError(code, span, msg))
}
