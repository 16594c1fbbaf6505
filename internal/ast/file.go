package ast

import "pubsweep/internal/source"

// File is the parsed top level of one source file.
type File struct {
	Source source.FileID
	Span   source.Span
	Items  []ItemID
}

// Files owns the parsed files of a Builder.
type Files struct {
	arena Arena[File]
}

func (fs *Files) New(f File) FileID {
	return FileID(fs.arena.Alloc(f))
}

func (fs *Files) Get(id FileID) *File {
	return fs.arena.Get(PayloadID(id))
}

func (fs *Files) Len() int { return fs.arena.Len() }
