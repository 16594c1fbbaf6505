package lexer

import (
	"pubsweep/internal/token"
)

// Greedy matching: two-byte sequences first, then single bytes. Anything the
// grammar has no opinion about becomes Punct so skipped regions stay balanced.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	}

	b := lx.cursor.Bump()
	switch b {
	case '#':
		return emit(token.Pound)
	case '!':
		return emit(token.Bang)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '*':
		return emit(token.Star)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '.':
		return emit(token.Dot)
	case '?':
		return emit(token.Question)
	default:
		return emit(token.Punct)
	}
}

// try2 consumes two bytes when they match exactly.
func (lx *Lexer) try2(b0, b1 byte) bool {
	c0, c1, ok := lx.cursor.Peek2()
	if !ok || c0 != b0 || c1 != b1 {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
