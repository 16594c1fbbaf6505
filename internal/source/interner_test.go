package source

import "testing"

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()

	a := in.Intern("exclude")
	b := in.Intern("exclude")
	if a != b {
		t.Fatalf("expected equal IDs for equal strings, got %d and %d", a, b)
	}
	if a == NoStringID {
		t.Fatal("expected a non-zero ID for a non-empty string")
	}

	c := in.InternBytes([]byte("recursive"))
	if c == a {
		t.Fatal("expected distinct IDs for distinct strings")
	}

	got, ok := in.Lookup(c)
	if !ok || got != "recursive" {
		t.Fatalf("Lookup(%d) = %q, %v", c, got, ok)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("expected empty string to map to NoStringID, got %d", id)
	}
	if in.Len() != 1 {
		t.Fatalf("expected fresh interner length 1, got %d", in.Len())
	}
}

func TestInternerInvalidLookup(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Fatal("expected lookup of unknown ID to fail")
	}
}
