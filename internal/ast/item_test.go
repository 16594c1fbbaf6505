package ast

import (
	"testing"

	"pubsweep/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestSimpleRoundTrip(t *testing.T) {
	b := NewBuilder(nil)
	name := b.Interner.Intern("answer")
	id := b.Items.NewSimple(ItemConst, sp(0, 20), SimpleDecl{
		Name: name,
		Vis:  VisPrivate,
	})
	if !id.IsValid() {
		t.Fatalf("expected valid item id")
	}
	item := b.Items.Get(id)
	if item == nil || item.Kind != ItemConst {
		t.Fatalf("unexpected item: %+v", item)
	}
	decl := b.Items.Simple(id)
	if decl == nil || decl.Name != name {
		t.Fatalf("unexpected payload: %+v", decl)
	}
	if b.Items.Struct(id) != nil {
		t.Fatalf("kind mismatch must return nil")
	}
}

func TestPayloadMutationSticks(t *testing.T) {
	b := NewBuilder(nil)
	id := b.Items.NewStruct(sp(0, 30), StructDecl{
		Body: FieldsNamed,
		Fields: []Field{
			{Vis: VisPrivate, Span: sp(10, 18)},
			{Vis: VisPrivate, Span: sp(20, 28)},
		},
	})
	decl := b.Items.Struct(id)
	decl.Vis = VisPublic
	decl.Fields[1].Vis = VisPublic
	again := b.Items.Struct(id)
	if again.Vis != VisPublic || again.Fields[1].Vis != VisPublic {
		t.Fatalf("mutation through accessor did not persist")
	}
	if again.Fields[0].Vis != VisPrivate {
		t.Fatalf("untouched field changed")
	}
}

func TestOpaqueHasNoPayload(t *testing.T) {
	b := NewBuilder(nil)
	id := b.Items.NewOpaque(ItemUse, sp(0, 12))
	item := b.Items.Get(id)
	if item.Payload != NoPayloadID {
		t.Fatalf("opaque item must carry no payload")
	}
	if !item.Kind.IsOpaque() || item.Kind.IsSimple() {
		t.Fatalf("kind classification wrong for %v", item.Kind)
	}
}

func TestKindNames(t *testing.T) {
	if got := ItemForeign.String(); got != "extern_block" {
		t.Fatalf("ItemForeign.String() = %q", got)
	}
	if got := ItemKind(200).String(); got != "kind?" {
		t.Fatalf("unknown kind = %q", got)
	}
}
