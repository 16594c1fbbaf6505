package parser

import (
	"testing"

	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/lexer"
	"pubsweep/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Builder, *ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.rs", []byte(src))
	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(fid), lexer.Options{Reporter: &lexer.BagReporter{Bag: bag}})
	arenas := ast.NewBuilder(nil)
	res := ParseFile(fs, lx, arenas, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return arenas, arenas.Files.Get(res.File), bag
}

func mustParse(t *testing.T, src string) (*ast.Builder, *ast.File) {
	t.Helper()
	b, f, bag := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return b, f
}

func kinds(b *ast.Builder, f *ast.File) []ast.ItemKind {
	out := make([]ast.ItemKind, 0, len(f.Items))
	for _, id := range f.Items {
		out = append(out, b.Items.Get(id).Kind)
	}
	return out
}

func TestParseSimpleDecls(t *testing.T) {
	b, f := mustParse(t, `
const ANSWER: u32 = 42;
static NAME: &str = "x";
fn run() { let _ = '{'; }
enum Color { Red, Green }
trait Walk { fn步(&self); }
type Pair = (u32, u32);
`)
	want := []ast.ItemKind{
		ast.ItemConst, ast.ItemStatic, ast.ItemFn,
		ast.ItemEnum, ast.ItemTrait, ast.ItemTypeAlias,
	}
	got := kinds(b, f)
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
	decl := b.Items.Simple(f.Items[0])
	if b.Interner.MustLookup(decl.Name) != "ANSWER" {
		t.Fatalf("const name = %q", b.Interner.MustLookup(decl.Name))
	}
	if decl.Vis != ast.VisPrivate || !decl.VisSpan.Empty() {
		t.Fatalf("const should be private with an insertion span: %+v", decl)
	}
}

func TestParseVisibilityForms(t *testing.T) {
	b, f := mustParse(t, `
pub fn a() {}
pub(crate) fn b() {}
pub(in crate::x) fn c() {}
fn d() {}
`)
	a := b.Items.Simple(f.Items[0])
	if a.Vis != ast.VisPublic || a.VisSpan.Len() != 3 {
		t.Fatalf("pub fn: %+v", a)
	}
	restricted := b.Items.Simple(f.Items[1])
	if restricted.Vis != ast.VisPrivate || restricted.VisSpan.Len() != 10 {
		t.Fatalf("pub(crate) fn: %+v", restricted)
	}
	inPath := b.Items.Simple(f.Items[2])
	if inPath.Vis != ast.VisPrivate || inPath.VisSpan.Empty() {
		t.Fatalf("pub(in ...) fn: %+v", inPath)
	}
	plain := b.Items.Simple(f.Items[3])
	if !plain.VisSpan.Empty() {
		t.Fatalf("private fn must carry an empty insertion span: %+v", plain)
	}
}

func TestParseStructShapes(t *testing.T) {
	b, f := mustParse(t, `
struct Unit;
struct Tuple(u8, pub String);
struct Named { a: u8, pub b: std::collections::HashMap<String, u32> }
`)
	unit := b.Items.Struct(f.Items[0])
	if unit.Body != ast.FieldsUnit || len(unit.Fields) != 0 {
		t.Fatalf("unit struct: %+v", unit)
	}
	tuple := b.Items.Struct(f.Items[1])
	if tuple.Body != ast.FieldsTuple || len(tuple.Fields) != 2 {
		t.Fatalf("tuple struct: %+v", tuple)
	}
	if tuple.Fields[1].Vis != ast.VisPublic {
		t.Fatalf("second tuple field should be public")
	}
	named := b.Items.Struct(f.Items[2])
	if named.Body != ast.FieldsNamed || len(named.Fields) != 2 {
		t.Fatalf("named struct: %+v", named)
	}
	if b.Interner.MustLookup(named.Fields[1].Name) != "b" {
		t.Fatalf("field name: %q", b.Interner.MustLookup(named.Fields[1].Name))
	}
}

func TestParseGenericFieldCommas(t *testing.T) {
	b, f := mustParse(t, `struct S { m: HashMap<K, V>, n: u8 }`)
	s := b.Items.Struct(f.Items[0])
	if len(s.Fields) != 2 {
		t.Fatalf("generic commas split the field list: %d fields", len(s.Fields))
	}
}

func TestParseUnion(t *testing.T) {
	b, f := mustParse(t, `union Bits { int: u32, float: f32 }`)
	u := b.Items.Union(f.Items[0])
	if u == nil || len(u.Fields) != 2 {
		t.Fatalf("union: %+v", u)
	}
}

func TestParseModInlineAndOutOfLine(t *testing.T) {
	b, f := mustParse(t, `
mod outer {
    fn inner() {}
    mod deep { const X: u8 = 0; }
}
mod elsewhere;
`)
	outer := b.Items.Mod(f.Items[0])
	if !outer.HasBody || len(outer.Items) != 2 {
		t.Fatalf("outer mod: %+v", outer)
	}
	deep := b.Items.Mod(outer.Items[1])
	if deep == nil || !deep.HasBody || len(deep.Items) != 1 {
		t.Fatalf("nested mod: %+v", deep)
	}
	off := b.Items.Mod(f.Items[1])
	if off.HasBody {
		t.Fatalf("out-of-line mod must have no body")
	}
}

func TestParseImplInherentVsTrait(t *testing.T) {
	b, f := mustParse(t, `
impl Point {
    fn new() -> Self { Self }
    const MAX: u8 = 255;
    type Alias = u8;
}
impl Display for Point {
    fn fmt(&self, f: &mut Formatter) -> Result { Ok(()) }
}
impl<T> Wrap<T> where for<'a> T: Fn(&'a u8) {
    fn get(&self) {}
}
`)
	inherent := b.Items.Impl(f.Items[0])
	if inherent.HasTrait {
		t.Fatalf("inherent impl flagged as trait impl")
	}
	if len(inherent.Members) != 3 {
		t.Fatalf("inherent members = %d", len(inherent.Members))
	}
	wantKinds := []ast.MemberKind{ast.MemberFn, ast.MemberConst, ast.MemberType}
	for i, mk := range wantKinds {
		if inherent.Members[i].Kind != mk {
			t.Fatalf("member %d kind = %v, want %v", i, inherent.Members[i].Kind, mk)
		}
	}
	traitImpl := b.Items.Impl(f.Items[1])
	if !traitImpl.HasTrait {
		t.Fatalf("trait impl not detected")
	}
	hrtb := b.Items.Impl(f.Items[2])
	if hrtb.HasTrait {
		t.Fatalf("for<'a> binder mistaken for a trait impl")
	}
}

func TestParseExternForms(t *testing.T) {
	b, f := mustParse(t, `
extern crate alloc;
extern "C" {
    fn strlen(s: *const c_char) -> usize;
    static ERRNO: i32;
    type Opaque;
}
extern "C" fn callback() {}
`)
	got := kinds(b, f)
	want := []ast.ItemKind{ast.ItemExternCrate, ast.ItemForeign, ast.ItemFn}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
	block := b.Items.Foreign(f.Items[1])
	wantKinds := []ast.MemberKind{ast.MemberFn, ast.MemberStatic, ast.MemberType}
	if len(block.Members) != 3 {
		t.Fatalf("foreign members = %d", len(block.Members))
	}
	for i, mk := range wantKinds {
		if block.Members[i].Kind != mk {
			t.Fatalf("foreign member %d = %v, want %v", i, block.Members[i].Kind, mk)
		}
	}
}

func TestParseOpaqueItems(t *testing.T) {
	b, f := mustParse(t, `
use std::fmt::{self, Debug};
macro_rules! ping { () => {}; }
lazy_static! { static ref X: u8 = 0; }
`)
	got := kinds(b, f)
	want := []ast.ItemKind{ast.ItemUse, ast.ItemMacro, ast.ItemMacro}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseAttrs(t *testing.T) {
	b, f := mustParse(t, `
#[derive(Debug, Clone)]
#[serde(rename_all = "camelCase")]
#[pubsweep(exclude)]
struct S { x: u8 }
`)
	s := b.Items.Struct(f.Items[0])
	if len(s.Attrs) != 3 {
		t.Fatalf("attrs = %d", len(s.Attrs))
	}
	derive := s.Attrs[0]
	if b.Interner.MustLookup(derive.Path) != "derive" || derive.Arg != source.NoStringID {
		t.Fatalf("derive attr: %+v", derive)
	}
	if b.Interner.MustLookup(derive.ArgRaw) != "Debug, Clone" {
		t.Fatalf("derive raw args: %q", b.Interner.MustLookup(derive.ArgRaw))
	}
	marker := s.Attrs[2]
	if b.Interner.MustLookup(marker.Path) != "pubsweep" {
		t.Fatalf("marker path: %+v", marker)
	}
	if b.Interner.MustLookup(marker.Arg) != "exclude" {
		t.Fatalf("marker arg: %+v", marker)
	}
	if marker.Span.Len() == 0 || marker.Span.Start >= marker.ArgsSpan.Start {
		t.Fatalf("marker spans: %+v", marker)
	}
}

func TestParseInnerAttrsSkipped(t *testing.T) {
	b, f := mustParse(t, `
#![allow(dead_code)]
fn only() {}
`)
	if len(f.Items) != 1 {
		t.Fatalf("items = %d", len(f.Items))
	}
	if len(b.Items.Simple(f.Items[0]).Attrs) != 0 {
		t.Fatalf("inner attribute attached to the next item")
	}
}

func TestParseRecoversAfterGarbage(t *testing.T) {
	b, f, bag := parseSrc(t, `
@@@
fn ok() {}
`)
	if !bag.HasErrors() {
		t.Fatalf("expected a syntax error")
	}
	if len(f.Items) != 1 || b.Items.Get(f.Items[0]).Kind != ast.ItemFn {
		t.Fatalf("parser did not recover: %v", kinds(b, f))
	}
}

func TestParseConstFnForms(t *testing.T) {
	b, f := mustParse(t, `
const fn compute() -> u8 { 0 }
const _: () = ();
async fn fetch() {}
unsafe fn poke() {}
`)
	want := []ast.ItemKind{ast.ItemFn, ast.ItemConst, ast.ItemFn, ast.ItemFn}
	got := kinds(b, f)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
}
