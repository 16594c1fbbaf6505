package diag

import (
	"testing"

	"pubsweep/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(RewriteDuplicateMarker, source.Span{}, "one")) {
		t.Fatal("first add should succeed")
	}
	if !bag.Add(NewError(RewriteDuplicateMarker, source.Span{}, "two")) {
		t.Fatal("second add should succeed")
	}
	if bag.Add(NewError(RewriteDuplicateMarker, source.Span{}, "three")) {
		t.Fatal("third add should be dropped: bag is full")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("fresh bag should be clean")
	}

	bag.Add(NewWarning(SynExpectSemicolon, source.Span{}, "missing semicolon"))
	if bag.HasErrors() {
		t.Fatal("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("expected HasWarnings after a warning")
	}

	bag.Add(NewError(RewriteUnknownMarkerArg, source.Span{}, "bad argument"))
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors after an error")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 50, End: 51}, "late"))
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 10, End: 11}, "mid"))
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 2, End: 3}, "early"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "early" || items[1].Message != "mid" || items[2].Message != "late" {
		t.Fatalf("unexpected order: %v, %v, %v", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 5, End: 9}
	bag.Add(NewError(RewriteDuplicateMarker, sp, "dup"))
	bag.Add(NewError(RewriteDuplicateMarker, sp, "dup again"))
	bag.Add(NewError(RewriteUnknownMarkerArg, sp, "different code"))
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", bag.Len())
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(5)
	var r Reporter = &BagReporter{Bag: bag}
	r.Report(RewriteInvalidModeArg, SevError, source.Span{Start: 1, End: 2}, "bad mode", nil)

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != RewriteInvalidModeArg || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}
