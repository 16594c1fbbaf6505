package format

import (
	"testing"

	"pubsweep/internal/source"
)

func newTestFile(content string) *source.File {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("edit.rs", []byte(content))
	return fs.Get(fid)
}

func span(f *source.File, start, end uint32) source.Span {
	return source.Span{File: f.ID, Start: start, End: end}
}

func TestApplyNoEditsIsIdentity(t *testing.T) {
	sf := newTestFile("fn main() {}\n")
	out, err := Apply(sf, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out) != string(sf.Content) {
		t.Fatalf("identity failed: %q", out)
	}
}

func TestApplyInsertReplaceDelete(t *testing.T) {
	sf := newTestFile("fn a() {}\nstruct B;\n")
	edits := []Edit{
		{Span: span(sf, 0, 0), Text: "pub "},
		{Span: span(sf, 10, 10), Text: "pub "},
		{Span: span(sf, 3, 4), Text: "renamed"},
	}
	out, err := Apply(sf, edits)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "pub fn renamed() {}\npub struct B;\n"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestApplyUnorderedEdits(t *testing.T) {
	sf := newTestFile("abcdef")
	edits := []Edit{
		{Span: span(sf, 4, 5), Text: "E"},
		{Span: span(sf, 0, 1), Text: "A"},
	}
	out, err := Apply(sf, edits)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(out) != "AbcdEf" {
		t.Fatalf("got %q", out)
	}
}

func TestApplyRejectsOverlap(t *testing.T) {
	sf := newTestFile("abcdef")
	edits := []Edit{
		{Span: span(sf, 0, 3), Text: "x"},
		{Span: span(sf, 2, 4), Text: "y"},
	}
	if _, err := Apply(sf, edits); err == nil {
		t.Fatalf("expected overlap error")
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	sf := newTestFile("ab")
	if _, err := Apply(sf, []Edit{{Span: span(sf, 1, 9), Text: ""}}); err == nil {
		t.Fatalf("expected range error")
	}
}
