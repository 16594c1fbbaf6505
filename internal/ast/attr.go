package ast

import "pubsweep/internal/source"

// Attr is one outer #[...] attribute attached to a declaration or to
// one of its members. Only the shapes the rewriter cares about are
// modelled precisely; everything else keeps its raw span.
type Attr struct {
	// Path is the attribute path when it is a single identifier,
	// NoStringID otherwise.
	Path source.StringID
	// Arg is the argument when the attribute has exactly one
	// identifier inside its parens, NoStringID otherwise.
	Arg source.StringID
	// ArgRaw is the trimmed raw argument text, for diagnostics.
	ArgRaw source.StringID
	// HasArgs reports whether a (...) argument list was present.
	HasArgs bool
	// Span covers the whole attribute, # through ].
	Span source.Span
	// ArgsSpan covers the text between the argument parens. Empty
	// when HasArgs is false.
	ArgsSpan source.Span
}

// IsPath reports whether the attribute path is exactly name.
func (a Attr) IsPath(name source.StringID) bool {
	return a.Path != source.NoStringID && a.Path == name
}
