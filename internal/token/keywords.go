package token

var keywords = map[string]Kind{
	"pub":     KwPub,
	"const":   KwConst,
	"static":  KwStatic,
	"fn":      KwFn,
	"struct":  KwStruct,
	"enum":    KwEnum,
	"trait":   KwTrait,
	"type":    KwType,
	"impl":    KwImpl,
	"mod":     KwMod,
	"extern":  KwExtern,
	"crate":   KwCrate,
	"use":     KwUse,
	"for":     KwFor,
	"where":   KwWhere,
	"unsafe":  KwUnsafe,
	"async":   KwAsync,
	"mut":     KwMut,
	"default": KwDefault,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
// Note that 'union' is contextual and deliberately absent here.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
