package rewrite

import (
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

// Error is a rewrite failure pinned to a source span. The first error
// aborts the whole file so a half-promoted tree is never written.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Diagnostic converts the error for bag storage and printing.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

func errAt(code diag.Code, sp source.Span, msg string) *Error {
	return &Error{Code: code, Span: sp, Msg: msg}
}
