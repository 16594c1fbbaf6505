package lexer

import (
	"testing"

	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(src))
	lx := New(fs.Get(id), Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
		if len(toks) > 10000 {
			t.Fatal("lexer did not reach EOF")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, expected ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	expected = append(expected, token.EOF)
	if len(got) != len(expected) {
		t.Fatalf("source %q: expected %d tokens %v, got %d: %v", src, len(expected), expected, len(got), got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("source %q: token %d: expected %v, got %v (all: %v)", src, i, expected[i], got[i], got)
		}
	}
}

func TestLexDeclarationHead(t *testing.T) {
	expectKinds(t, "pub const MAX: u32 = 10;",
		token.KwPub, token.KwConst, token.Ident, token.Colon, token.Ident,
		token.Eq, token.IntLit, token.Semicolon)
}

func TestLexAttribute(t *testing.T) {
	expectKinds(t, "#[pubsweep(exclude)]",
		token.Pound, token.LBracket, token.Ident, token.LParen, token.Ident,
		token.RParen, token.RBracket)
}

func TestLexPathsAndArrows(t *testing.T) {
	expectKinds(t, "use std::mem; fn f() -> T => x",
		token.KwUse, token.Ident, token.ColonColon, token.Ident, token.Semicolon,
		token.KwFn, token.Ident, token.LParen, token.RParen, token.Arrow,
		token.Ident, token.FatArrow, token.Ident)
}

func TestLexLifetimeVsChar(t *testing.T) {
	expectKinds(t, "<'a> 'x' '\\n'",
		token.Lt, token.Lifetime, token.Gt, token.CharLit, token.CharLit)
}

func TestLexBracesInsideStringDoNotNest(t *testing.T) {
	toks := lexAll(t, `fn f() { let s = "{{}}"; }`)
	opens, closes := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.LBrace:
			opens++
		case token.RBrace:
			closes++
		}
	}
	if opens != 1 || closes != 1 {
		t.Fatalf("expected braces inside string literals to stay opaque, got %d open / %d close", opens, closes)
	}
}

func TestLexCommentsAreTrivia(t *testing.T) {
	toks := lexAll(t, "// leading\n/* block */ struct S;")
	if toks[0].Kind != token.KwStruct {
		t.Fatalf("expected first token to be 'struct', got %v", toks[0].Kind)
	}
	if len(toks[0].Leading) == 0 {
		t.Fatal("expected leading trivia on the first token")
	}
	sawLine, sawBlock := false, false
	for _, tr := range toks[0].Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			sawLine = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Fatalf("expected both comment kinds in trivia, got %+v", toks[0].Leading)
	}
}

func TestLexNumbers(t *testing.T) {
	expectKinds(t, "0xFF_u8 1_000 1.5 2e10 1..2",
		token.IntLit, token.IntLit, token.FloatLit, token.FloatLit,
		token.IntLit, token.Dot, token.Dot, token.IntLit)
}

func TestLexUnionIsIdent(t *testing.T) {
	// 'union' is contextual; the lexer must not reserve it.
	expectKinds(t, "union U", token.Ident, token.Ident)
}

func TestLexSpansCoverSource(t *testing.T) {
	src := "mod name;"
	toks := lexAll(t, src)
	if toks[0].Span.Start != 0 || toks[0].Span.End != 3 {
		t.Fatalf("unexpected span for 'mod': %v", toks[0].Span)
	}
	if toks[1].Text != "name" {
		t.Fatalf("unexpected text %q", toks[1].Text)
	}
	if toks[2].Kind != token.Semicolon || toks[2].Span.Start != 8 {
		t.Fatalf("unexpected semicolon token %+v", toks[2])
	}
}
