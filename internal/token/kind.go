package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime token such as 'a.
	Lifetime

	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwUnion represents the contextual 'union' keyword; the lexer emits
	// Ident and the parser retags it when it starts a union declaration.
	KwUnion // union
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwType represents the 'type' keyword.
	KwType // type
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwCrate represents the 'crate' keyword.
	KwCrate // crate
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe // unsafe
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwDefault represents the 'default' keyword on associated items.
	KwDefault // default

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit

	// Pound represents '#'.
	Pound // #
	// Bang represents '!'.
	Bang // !
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Eq represents '='.
	Eq // =
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Arrow represents '->'.
	Arrow // ->
	// FatArrow represents '=>'.
	FatArrow // =>
	// Amp represents '&'.
	Amp // &
	// Star represents '*'.
	Star // *
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Dot represents '.'.
	Dot // .
	// Question represents '?'.
	Question // ?
	// Punct is the catch-all for punctuation the grammar does not care about.
	// It only ever appears inside skipped regions.
	Punct
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Lifetime:   "Lifetime",
	KwPub:      "pub",
	KwConst:    "const",
	KwStatic:   "static",
	KwFn:       "fn",
	KwStruct:   "struct",
	KwEnum:     "enum",
	KwUnion:    "union",
	KwTrait:    "trait",
	KwType:     "type",
	KwImpl:     "impl",
	KwMod:      "mod",
	KwExtern:   "extern",
	KwCrate:    "crate",
	KwUse:      "use",
	KwFor:      "for",
	KwWhere:    "where",
	KwUnsafe:   "unsafe",
	KwAsync:    "async",
	KwMut:      "mut",
	KwDefault:  "default",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	CharLit:    "CharLit",
	Pound:      "#",
	Bang:       "!",
	LBracket:   "[",
	RBracket:   "]",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Semicolon:  ";",
	Comma:      ",",
	Colon:      ":",
	ColonColon: "::",
	Eq:         "=",
	Lt:         "<",
	Gt:         ">",
	Arrow:      "->",
	FatArrow:   "=>",
	Amp:        "&",
	Star:       "*",
	Plus:       "+",
	Minus:      "-",
	Dot:        ".",
	Question:   "?",
	Punct:      "Punct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsOpenDelim reports whether the token opens a bracketed group.
func (k Kind) IsOpenDelim() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsCloseDelim reports whether the token closes a bracketed group.
func (k Kind) IsCloseDelim() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// MatchingClose returns the closing delimiter for an opening one.
func (k Kind) MatchingClose() Kind {
	switch k {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace:
		return RBrace
	default:
		return Invalid
	}
}
