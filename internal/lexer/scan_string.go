package lexer

import (
	"pubsweep/internal/diag"
	"pubsweep/internal/token"
)

// scanString scans a double-quoted string literal. Escapes are consumed but
// not validated deeply; unterminated strings are reported.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanTickOrChar disambiguates lifetimes from char literals. After a tick, an
// identifier without a closing quote is a lifetime ('a); otherwise it is a
// char literal ('x', '\n', '\u{1F600}').
func (lx *Lexer) scanTickOrChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.Peek() != '\\' {
		// Possible lifetime: ident-like run not followed by a closing tick.
		probe := lx.cursor.Mark()
		r, sz := lx.peekRune()
		if sz > 0 && isIdentStartRune(r) {
			lx.bumpRune()
			for {
				r2, sz2 := lx.peekRune()
				if sz2 == 0 || !isIdentContinueRune(r2) {
					break
				}
				lx.bumpRune()
			}
			if lx.cursor.Peek() != '\'' {
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.Lifetime, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			lx.cursor.Reset(probe)
		}
	}

	// Char literal: consume until the closing tick on the same line.
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
