package lexer

import (
	"pubsweep/internal/token"
)

// scanNumber scans integer and float literals, including prefixed (0x, 0o,
// 0b), underscored, and suffixed (42usize, 1.5f64) forms. The rewriter never
// interprets numeric values, so no range validation happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'x' || b1 == 'o' || b1 == 'b') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isHexDigitOrSep(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.eatSuffix()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// Fractional part only when a digit follows the dot; `1..2` and `x.len()`
	// must keep their dots.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		probe := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(probe)
		}
	}

	lx.eatSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// eatSuffix consumes a type suffix like i32 or usize glued to a number.
func (lx *Lexer) eatSuffix() {
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
}

func isHexDigitOrSep(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_'
}
