package rewrite

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/source"
)

// Rewriter promotes the visibility of declarations in one parsed
// file. It mutates the AST payloads in place and remembers which
// marker attributes it removed, so rendering can splice them out.
type Rewriter struct {
	builder  *ast.Builder
	marker   source.StringID
	exclude  source.StringID
	stripped []source.Span
}

// New prepares a rewriter over the builder's arenas.
func New(b *ast.Builder) *Rewriter {
	return &Rewriter{
		builder: b,
		marker:  b.Interner.Intern(MarkerName),
		exclude: b.Interner.Intern(excludeArg),
	}
}

// Stripped returns the spans of every removed marker attribute.
func (r *Rewriter) Stripped() []source.Span {
	return r.stripped
}

// File promotes every top-level declaration of the file. The first
// error stops the walk; callers must not render after an error.
func (r *Rewriter) File(f *ast.File, recursive bool) *Error {
	for _, id := range f.Items {
		if err := r.Item(id, recursive); err != nil {
			return err
		}
	}
	return nil
}

// Item promotes one declaration according to its kind. Uses, extern
// crates and macros stay untouched; trait impls are exempt together
// with their markers; everything else is made public unless excluded.
func (r *Rewriter) Item(id ast.ItemID, recursive bool) *Error {
	item := r.builder.Items.Get(id)
	if item == nil || item.Kind.IsOpaque() {
		return nil
	}

	switch {
	case item.Kind.IsSimple():
		decl := r.builder.Items.Simple(id)
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if !ex {
			decl.Vis = ast.VisPublic
		}

	case item.Kind == ast.ItemForeign:
		decl := r.builder.Items.Foreign(id)
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if ex {
			return nil
		}
		return r.members(decl.Members, ast.MemberFn, ast.MemberStatic, ast.MemberType)

	case item.Kind == ast.ItemImpl:
		decl := r.builder.Items.Impl(id)
		if decl.HasTrait {
			return nil
		}
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if ex {
			return nil
		}
		return r.members(decl.Members, ast.MemberConst, ast.MemberFn, ast.MemberType)

	case item.Kind == ast.ItemMod:
		decl := r.builder.Items.Mod(id)
		if !decl.HasBody {
			return nil
		}
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if ex {
			return nil
		}
		decl.Vis = ast.VisPublic
		if recursive {
			for _, child := range decl.Items {
				if err := r.Item(child, recursive); err != nil {
					return err
				}
			}
		}

	case item.Kind == ast.ItemStruct:
		decl := r.builder.Items.Struct(id)
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if ex {
			return nil
		}
		decl.Vis = ast.VisPublic
		return r.fields(decl.Fields)

	case item.Kind == ast.ItemUnion:
		decl := r.builder.Items.Union(id)
		ex, err := r.takeExclude(&decl.Attrs)
		if err != nil {
			return err
		}
		if ex {
			return nil
		}
		decl.Vis = ast.VisPublic
		return r.fields(decl.Fields)
	}
	return nil
}

// members promotes the eligible members of an impl or extern block.
// Macro members and anything outside the eligible kinds keep their
// attributes and visibility as written.
func (r *Rewriter) members(members []ast.Member, eligible ...ast.MemberKind) *Error {
	for i := range members {
		m := &members[i]
		ok := false
		for _, k := range eligible {
			if m.Kind == k {
				ok = true
				break
			}
		}
		if !ok {
			continue
		}
		ex, err := r.takeExclude(&m.Attrs)
		if err != nil {
			return err
		}
		if !ex {
			m.Vis = ast.VisPublic
		}
	}
	return nil
}

func (r *Rewriter) fields(fields []ast.Field) *Error {
	for i := range fields {
		f := &fields[i]
		ex, err := r.takeExclude(&f.Attrs)
		if err != nil {
			return err
		}
		if !ex {
			f.Vis = ast.VisPublic
		}
	}
	return nil
}
