package ast

import "pubsweep/internal/source"

// ItemKind discriminates the payload of an Item.
type ItemKind uint8

const (
	ItemInvalid ItemKind = iota

	// Simple declarations: one name, one visibility slot.
	ItemConst
	ItemStatic
	ItemFn
	ItemEnum
	ItemTrait
	ItemTraitAlias
	ItemTypeAlias

	// Compound declarations with their own payload shape.
	ItemStruct
	ItemUnion
	ItemMod
	ItemImpl
	ItemForeign

	// Opaque declarations the rewriter never touches.
	ItemExternCrate
	ItemUse
	ItemMacro
	ItemOther
)

var itemKindNames = map[ItemKind]string{
	ItemInvalid:     "invalid",
	ItemConst:       "const",
	ItemStatic:      "static",
	ItemFn:          "fn",
	ItemEnum:        "enum",
	ItemTrait:       "trait",
	ItemTraitAlias:  "trait_alias",
	ItemTypeAlias:   "type_alias",
	ItemStruct:      "struct",
	ItemUnion:       "union",
	ItemMod:         "mod",
	ItemImpl:        "impl",
	ItemForeign:     "extern_block",
	ItemExternCrate: "extern_crate",
	ItemUse:         "use",
	ItemMacro:       "macro",
	ItemOther:       "other",
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return "kind?"
}

// IsSimple reports whether the kind stores a SimpleDecl payload.
func (k ItemKind) IsSimple() bool {
	switch k {
	case ItemConst, ItemStatic, ItemFn, ItemEnum, ItemTrait, ItemTraitAlias, ItemTypeAlias:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether the kind carries no payload at all.
func (k ItemKind) IsOpaque() bool {
	switch k {
	case ItemExternCrate, ItemUse, ItemMacro, ItemOther:
		return true
	default:
		return false
	}
}

// Item is one top-level or nested declaration.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// SimpleDecl backs the kinds for which only the leading visibility
// matters.
type SimpleDecl struct {
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
}

// MemberKind classifies a member of an impl or extern block.
type MemberKind uint8

const (
	MemberOther MemberKind = iota
	MemberConst
	MemberFn
	MemberStatic
	MemberType
	MemberMacro
)

// Member is one declaration inside an impl or extern block.
type Member struct {
	Kind    MemberKind
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
	Span    source.Span
}

// ForeignDecl is an extern "abi" { ... } block.
type ForeignDecl struct {
	Attrs   []Attr
	Abi     source.StringID
	Members []Member
}

// ImplDecl is an inherent or trait impl block. Trait impls keep their
// members untouched, inherent impls expose them.
type ImplDecl struct {
	Attrs    []Attr
	HasTrait bool
	Members  []Member
}

// ModDecl is a module declaration, inline or out-of-line.
type ModDecl struct {
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
	HasBody bool
	Items   []ItemID
}

// FieldsKind says how a struct lays out its fields.
type FieldsKind uint8

const (
	FieldsUnit FieldsKind = iota
	FieldsNamed
	FieldsTuple
)

// Field is one named or positional struct/union field.
type Field struct {
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
	Span    source.Span
}

// StructDecl backs struct declarations of every body shape.
type StructDecl struct {
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
	Body    FieldsKind
	Fields  []Field
}

// UnionDecl backs union declarations, always with named fields.
type UnionDecl struct {
	Name    source.StringID
	Attrs   []Attr
	Vis     Visibility
	VisSpan source.Span
	Fields  []Field
}

// Items owns every item node of a Builder together with the per-kind
// payload arenas.
type Items struct {
	arena    Arena[Item]
	simples  Arena[SimpleDecl]
	foreigns Arena[ForeignDecl]
	impls    Arena[ImplDecl]
	mods     Arena[ModDecl]
	structs  Arena[StructDecl]
	unions   Arena[UnionDecl]
}

func (it *Items) alloc(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	id := it.arena.Alloc(Item{Kind: kind, Span: span, Payload: payload})
	return ItemID(id)
}

// NewSimple records a declaration with a SimpleDecl payload. The kind
// must satisfy IsSimple.
func (it *Items) NewSimple(kind ItemKind, span source.Span, decl SimpleDecl) ItemID {
	return it.alloc(kind, span, it.simples.Alloc(decl))
}

func (it *Items) NewForeign(span source.Span, decl ForeignDecl) ItemID {
	return it.alloc(ItemForeign, span, it.foreigns.Alloc(decl))
}

func (it *Items) NewImpl(span source.Span, decl ImplDecl) ItemID {
	return it.alloc(ItemImpl, span, it.impls.Alloc(decl))
}

func (it *Items) NewMod(span source.Span, decl ModDecl) ItemID {
	return it.alloc(ItemMod, span, it.mods.Alloc(decl))
}

func (it *Items) NewStruct(span source.Span, decl StructDecl) ItemID {
	return it.alloc(ItemStruct, span, it.structs.Alloc(decl))
}

func (it *Items) NewUnion(span source.Span, decl UnionDecl) ItemID {
	return it.alloc(ItemUnion, span, it.unions.Alloc(decl))
}

// NewOpaque records a declaration the rewriter copies through
// verbatim. The kind must satisfy IsOpaque.
func (it *Items) NewOpaque(kind ItemKind, span source.Span) ItemID {
	return it.alloc(kind, span, NoPayloadID)
}

// Get returns the item node, or nil for an unknown id.
func (it *Items) Get(id ItemID) *Item {
	return it.arena.Get(PayloadID(id))
}

func (it *Items) Len() int { return it.arena.Len() }

func (it *Items) Simple(id ItemID) *SimpleDecl {
	item := it.Get(id)
	if item == nil || !item.Kind.IsSimple() {
		return nil
	}
	return it.simples.Get(item.Payload)
}

func (it *Items) Foreign(id ItemID) *ForeignDecl {
	item := it.Get(id)
	if item == nil || item.Kind != ItemForeign {
		return nil
	}
	return it.foreigns.Get(item.Payload)
}

func (it *Items) Impl(id ItemID) *ImplDecl {
	item := it.Get(id)
	if item == nil || item.Kind != ItemImpl {
		return nil
	}
	return it.impls.Get(item.Payload)
}

func (it *Items) Mod(id ItemID) *ModDecl {
	item := it.Get(id)
	if item == nil || item.Kind != ItemMod {
		return nil
	}
	return it.mods.Get(item.Payload)
}

func (it *Items) Struct(id ItemID) *StructDecl {
	item := it.Get(id)
	if item == nil || item.Kind != ItemStruct {
		return nil
	}
	return it.structs.Get(item.Payload)
}

func (it *Items) Union(id ItemID) *UnionDecl {
	item := it.Get(id)
	if item == nil || item.Kind != ItemUnion {
		return nil
	}
	return it.unions.Get(item.Payload)
}
