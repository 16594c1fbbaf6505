package parser

import (
	"slices"

	"pubsweep/internal/diag"
	"pubsweep/internal/token"
)

// skipBalanced consumes an opening delimiter and everything through
// its matching closer. The lexer keeps string and char literals as
// single tokens, so stray braces inside them never unbalance us.
func (p *Parser) skipBalanced() bool {
	open := p.lx.Peek()
	if !open.Kind.IsOpenDelim() {
		return false
	}
	p.advance()
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.report(diag.SynUnclosedDelimiter, diag.SevError, open.Span,
				"unclosed '"+open.Kind.String()+"'")
			return false
		case tok.Kind.IsOpenDelim():
			depth++
		case tok.Kind.IsCloseDelim():
			depth--
		}
		p.advance()
	}
	return true
}

// skipUntilTop advances until one of the stop kinds shows up outside
// any nested delimiter group. The stop token is left unconsumed.
func (p *Parser) skipUntilTop(stops ...token.Kind) token.Kind {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return token.EOF
		}
		if slices.Contains(stops, tok.Kind) {
			return tok.Kind
		}
		if tok.Kind.IsOpenDelim() {
			p.skipBalanced()
			continue
		}
		if tok.Kind.IsCloseDelim() {
			return tok.Kind
		}
		p.advance()
	}
}

// skipGenerics consumes a <...> parameter list when present. Angle
// depth is tracked separately because the lexer emits '>' one byte at
// a time.
func (p *Parser) skipGenerics() {
	if !p.at(token.Lt) {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			p.err(diag.SynUnclosedDelimiter, "unclosed generic parameter list")
			return
		case token.Lt:
			depth++
			p.advance()
		case token.Gt:
			depth--
			p.advance()
		default:
			if tok.Kind.IsOpenDelim() {
				p.skipBalanced()
				continue
			}
			if tok.Kind.IsCloseDelim() {
				p.err(diag.SynUnclosedDelimiter, "unclosed generic parameter list")
				return
			}
			p.advance()
		}
	}
}

// skipFieldType advances over one type in field position until a stop
// token. Commas inside <...> belong to the type, so angle depth is
// tracked on top of the delimiter groups.
func (p *Parser) skipFieldType(stops ...token.Kind) token.Kind {
	angles := 0
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return token.EOF
		}
		if angles == 0 && slices.Contains(stops, tok.Kind) {
			return tok.Kind
		}
		switch {
		case tok.Kind == token.Lt:
			angles++
			p.advance()
		case tok.Kind == token.Gt:
			if angles > 0 {
				angles--
			}
			p.advance()
		case tok.Kind.IsOpenDelim():
			p.skipBalanced()
		case tok.Kind.IsCloseDelim():
			return tok.Kind
		default:
			p.advance()
		}
	}
}

// skipToSemicolon consumes through the terminating ';' of a
// declaration tail.
func (p *Parser) skipToSemicolon() {
	if p.skipUntilTop(token.Semicolon) == token.Semicolon {
		p.advance()
		return
	}
	p.err(diag.SynExpectSemicolon, "expected ';'")
}

func isItemStarter(k token.Kind) bool {
	switch k {
	case token.Pound, token.KwPub, token.KwConst, token.KwStatic, token.KwFn,
		token.KwStruct, token.KwEnum, token.KwTrait, token.KwType, token.KwImpl,
		token.KwMod, token.KwExtern, token.KwUse, token.KwUnsafe, token.KwAsync:
		return true
	default:
		return false
	}
}

// resyncItem recovers after a failed item: scroll to the next thing
// that can start a declaration, a ';', or the enclosing stop token.
func (p *Parser) resyncItem(stop token.Kind) {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || tok.Kind == stop || isItemStarter(tok.Kind) {
			return
		}
		if tok.Kind == token.Semicolon {
			p.advance()
			return
		}
		if tok.Kind.IsOpenDelim() {
			p.skipBalanced()
			continue
		}
		p.advance()
	}
}
