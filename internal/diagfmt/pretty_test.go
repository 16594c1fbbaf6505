package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

func testBag() (*diag.Bag, *source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("lib.rs", []byte("fn main() {}\nlet bad\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnexpectedToken,
		source.Span{File: fid, Start: 13, End: 16}, "unexpected 'let'"))
	return bag, fs, fid
}

func TestPrettyPlain(t *testing.T) {
	bag, fs, _ := testBag()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})
	out := buf.String()
	if !strings.Contains(out, "lib.rs:2:1: ERROR SYN-UNEXPECTED-TOKEN: unexpected 'let'") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "let bad") || !strings.Contains(out, "^^^") {
		t.Fatalf("source context missing:\n%s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs, _ := testBag()
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Total != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN-UNEXPECTED-TOKEN" || d.Location.StartLine != 2 {
		t.Fatalf("unexpected entry: %+v", d)
	}
}

func TestJSONTruncation(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("x.rs", []byte("abc"))
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fid}, "x"))
	}
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Diagnostics) != 2 || !out.Truncated || out.Total != 3 {
		t.Fatalf("truncation wrong: %+v", out)
	}
}
