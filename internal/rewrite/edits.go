package rewrite

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/format"
	"pubsweep/internal/source"
)

// Edits turns the mutated arenas plus the stripped marker spans into
// splice edits over the original bytes. Nodes whose visibility kept
// its parsed value produce no edit, so untouched files come back
// byte-identical.
func (r *Rewriter) Edits(sf *source.File, f *ast.File) []format.Edit {
	var edits []format.Edit
	for _, id := range f.Items {
		r.itemEdits(sf, id, &edits)
	}
	for _, sp := range r.stripped {
		edits = append(edits, markerDelete(sf, sp))
	}
	return edits
}

func (r *Rewriter) itemEdits(sf *source.File, id ast.ItemID, edits *[]format.Edit) {
	item := r.builder.Items.Get(id)
	if item == nil {
		return
	}
	switch {
	case item.Kind.IsSimple():
		decl := r.builder.Items.Simple(id)
		visEdit(sf, decl.Vis, decl.VisSpan, edits)
	case item.Kind == ast.ItemForeign:
		decl := r.builder.Items.Foreign(id)
		for i := range decl.Members {
			visEdit(sf, decl.Members[i].Vis, decl.Members[i].VisSpan, edits)
		}
	case item.Kind == ast.ItemImpl:
		decl := r.builder.Items.Impl(id)
		for i := range decl.Members {
			visEdit(sf, decl.Members[i].Vis, decl.Members[i].VisSpan, edits)
		}
	case item.Kind == ast.ItemMod:
		decl := r.builder.Items.Mod(id)
		visEdit(sf, decl.Vis, decl.VisSpan, edits)
		for _, child := range decl.Items {
			r.itemEdits(sf, child, edits)
		}
	case item.Kind == ast.ItemStruct:
		decl := r.builder.Items.Struct(id)
		visEdit(sf, decl.Vis, decl.VisSpan, edits)
		for i := range decl.Fields {
			visEdit(sf, decl.Fields[i].Vis, decl.Fields[i].VisSpan, edits)
		}
	case item.Kind == ast.ItemUnion:
		decl := r.builder.Items.Union(id)
		visEdit(sf, decl.Vis, decl.VisSpan, edits)
		for i := range decl.Fields {
			visEdit(sf, decl.Fields[i].Vis, decl.Fields[i].VisSpan, edits)
		}
	}
}

// visEdit materializes one visibility slot. Nothing is emitted for
// private nodes or for nodes already spelled exactly `pub`, which is
// what keeps the rewrite idempotent.
func visEdit(sf *source.File, vis ast.Visibility, visSpan source.Span, edits *[]format.Edit) {
	if vis != ast.VisPublic {
		return
	}
	if visSpan.Empty() {
		*edits = append(*edits, format.Edit{Span: visSpan, Text: "pub "})
		return
	}
	if string(sf.Content[visSpan.Start:visSpan.End]) != "pub" {
		*edits = append(*edits, format.Edit{Span: visSpan, Text: "pub"})
	}
}

// markerDelete widens a removed attribute span over its trailing
// blanks. A marker alone on its line disappears together with the
// line's indent and newline.
func markerDelete(sf *source.File, sp source.Span) format.Edit {
	content := sf.Content
	start, end := sp.Start, sp.End
	for int(end) < len(content) && (content[end] == ' ' || content[end] == '\t') {
		end++
	}
	if int(end) < len(content) && content[end] == '\n' {
		lineStart := start
		for lineStart > 0 && (content[lineStart-1] == ' ' || content[lineStart-1] == '\t') {
			lineStart--
		}
		if lineStart == 0 || content[lineStart-1] == '\n' {
			start = lineStart
			end++
		}
	}
	return format.Edit{Span: source.Span{File: sp.File, Start: start, End: end}}
}
