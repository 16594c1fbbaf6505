package rewrite

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

// takeExclude scans an attribute list left to right for the tool's
// marker, removes every occurrence, and reports whether the node is
// excluded. Malformed markers, unknown arguments and duplicates are
// errors; foreign attributes pass through untouched.
func (r *Rewriter) takeExclude(attrs *[]ast.Attr) (bool, *Error) {
	exclude := false
	kept := (*attrs)[:0]
	for _, a := range *attrs {
		if !a.IsPath(r.marker) {
			kept = append(kept, a)
			continue
		}
		if !a.HasArgs {
			return false, errAt(diag.RewriteMalformedMarker, a.Span,
				"expected arguments in parentheses: `"+MarkerName+"("+excludeArg+")`")
		}
		if a.Arg == source.NoStringID {
			return false, errAt(diag.RewriteMalformedMarker, r.argSpan(a),
				"expected a single identifier argument to `"+MarkerName+"`")
		}
		if a.Arg != r.exclude {
			raw := r.builder.Interner.MustLookup(a.ArgRaw)
			return false, errAt(diag.RewriteUnknownMarkerArg, r.argSpan(a),
				"unknown "+MarkerName+" attribute `"+raw+"`")
		}
		if exclude {
			return false, errAt(diag.RewriteDuplicateMarker, a.Span,
				"duplicate "+MarkerName+" attribute `"+excludeArg+"`")
		}
		exclude = true
		r.stripped = append(r.stripped, a.Span)
	}
	*attrs = kept
	return exclude, nil
}

// argSpan points at the argument list when there is one, else at the
// whole attribute.
func (r *Rewriter) argSpan(a ast.Attr) source.Span {
	if !a.ArgsSpan.Empty() {
		return a.ArgsSpan
	}
	return a.Span
}
