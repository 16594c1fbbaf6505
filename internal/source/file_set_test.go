package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualSetsFlagAndHash(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.rs", []byte("pub fn f() {}\n"))
	file := fs.Get(id)

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
	var zero [32]byte
	if file.Hash == zero {
		t.Error("expected content hash to be computed")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.rs")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("struct A;\r\nstruct B;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	file := fs.Get(id)

	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if string(file.Content) != "struct A;\nstruct B;\n" {
		t.Errorf("unexpected normalized content %q", string(file.Content))
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rs", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline terminates line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tc := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if got != tc.want {
			t.Errorf("offset %d: expected %+v, got %+v", tc.off, tc.want, got)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rs", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	if got := file.GetLine(1); got != "first" {
		t.Errorf("line 1: expected %q, got %q", "first", got)
	}
	if got := file.GetLine(2); got != "second" {
		t.Errorf("line 2: expected %q, got %q", "second", got)
	}
	if got := file.GetLine(3); got != "third" {
		t.Errorf("line 3: expected %q, got %q", "third", got)
	}
	if got := file.GetLine(4); got != "" {
		t.Errorf("line 4: expected empty, got %q", got)
	}
	if got := file.GetLine(0); got != "" {
		t.Errorf("line 0: expected empty, got %q", got)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("v.rs", []byte("one"), 0)
	id2 := fs.Add("v.rs", []byte("two"), 0)

	if id1 == id2 {
		t.Fatal("expected a fresh FileID for the second Add")
	}
	latest, ok := fs.GetByPath("v.rs")
	if !ok {
		t.Fatal("expected path to be indexed")
	}
	if string(latest.Content) != "two" {
		t.Errorf("expected index to point at latest version, got %q", string(latest.Content))
	}
}
