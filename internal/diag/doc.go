// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with a
// stable string form, a human-oriented Message, the Primary source.Span
// pointing at the issue, and optional Notes adding secondary context.
//
// Phases emit through a Reporter so producers stay decoupled from storage;
// BagReporter aggregates into a Bag, which supports limits, sorting, and
// deduplication. Rendering lives in internal/diagfmt; this package performs
// no formatting or IO.
//
// Code spaces: 1xxx lexical, 2xxx syntax, 4xxx rewrite, 9xxx I/O.
package diag
