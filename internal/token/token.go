package token

import (
	"pubsweep/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a grammar keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPub, KwConst, KwStatic, KwFn, KwStruct, KwEnum, KwUnion, KwTrait,
		KwType, KwImpl, KwMod, KwExtern, KwCrate, KwUse, KwFor, KwWhere,
		KwUnsafe, KwAsync, KwMut, KwDefault:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
