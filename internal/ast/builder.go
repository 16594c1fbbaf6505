package ast

import "pubsweep/internal/source"

// Builder owns the arenas produced by one parse and the interner the
// parser wrote names into.
type Builder struct {
	Files    Files
	Items    Items
	Interner *source.Interner
}

func NewBuilder(in *source.Interner) *Builder {
	if in == nil {
		in = source.NewInterner()
	}
	return &Builder{Interner: in}
}
