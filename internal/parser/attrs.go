package parser

import (
	"strings"

	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseOuterAttrs collects the #[...] attributes in front of a
// declaration. Inner #![...] attributes belong to the enclosing scope
// and are skipped without being attached.
func (p *Parser) parseOuterAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.at(token.Pound) {
		start := p.advance().Span
		if p.at(token.Bang) {
			p.advance()
			if p.at(token.LBracket) {
				p.skipBalanced()
			} else {
				p.err(diag.SynMalformedAttribute, "expected '[' after '#!'")
			}
			continue
		}
		if !p.at(token.LBracket) {
			p.err(diag.SynMalformedAttribute, "expected '[' after '#'")
			continue
		}
		p.advance()

		attr, ok := p.parseAttrBody(start)
		if !ok {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

// parseAttrBody parses everything between '[' and ']'. Only
// single-identifier paths and single-identifier argument lists are
// modelled precisely; the rest keeps raw text for diagnostics.
func (p *Parser) parseAttrBody(start source.Span) (ast.Attr, bool) {
	var attr ast.Attr

	segments := 0
	var pathText string
	if p.at(token.ColonColon) {
		p.advance()
		segments = 2 // absolute paths are never the plain tool path
	}
	for {
		tok := p.lx.Peek()
		if tok.Kind != token.Ident && !tok.IsKeyword() {
			break
		}
		p.advance()
		segments++
		pathText = tok.Text
		if !p.at(token.ColonColon) {
			break
		}
		p.advance()
		segments++
	}
	if segments == 0 {
		p.err(diag.SynMalformedAttribute, "expected attribute path")
		p.skipAttrTail()
		return attr, false
	}
	if segments == 1 {
		attr.Path = p.arenas.Interner.Intern(pathText)
	}

	switch p.lx.Peek().Kind {
	case token.RBracket:
	case token.LParen:
		lparen := p.advance()
		p.scanAttrArgs(&attr, lparen.Span)
	case token.Eq:
		p.advance()
		p.skipUntilTop(token.RBracket)
	default:
		p.err(diag.SynMalformedAttribute, "unexpected token in attribute")
		p.skipAttrTail()
		return attr, false
	}

	end, ok := p.expect(token.RBracket, diag.SynMalformedAttribute, "expected ']' to close attribute")
	if !ok {
		p.skipAttrTail()
		return attr, false
	}
	attr.Span = start.Cover(end.Span)
	return attr, true
}

// scanAttrArgs consumes the (...) argument list, remembering whether
// it held exactly one identifier.
func (p *Parser) scanAttrArgs(attr *ast.Attr, lparen source.Span) {
	attr.HasArgs = true
	argStart := lparen.End

	count := 0
	var only token.Token
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.report(diag.SynUnclosedDelimiter, diag.SevError, lparen, "unclosed '(' in attribute")
			return
		case tok.Kind.IsOpenDelim():
			if depth == 1 {
				count++
				only = tok
			}
			depth++
		case tok.Kind.IsCloseDelim():
			depth--
			if depth == 0 {
				attr.ArgsSpan = source.Span{File: lparen.File, Start: argStart, End: tok.Span.Start}
				raw := strings.TrimSpace(p.text(attr.ArgsSpan))
				attr.ArgRaw = p.arenas.Interner.Intern(raw)
				if count == 1 && only.Kind == token.Ident {
					attr.Arg = p.arenas.Interner.Intern(only.Text)
				}
				p.advance()
				return
			}
		default:
			if depth == 1 {
				count++
				only = tok
			}
		}
		p.advance()
	}
}

// skipAttrTail recovers from a malformed attribute by scrolling past
// its closing ']'.
func (p *Parser) skipAttrTail() {
	if p.skipUntilTop(token.RBracket) == token.RBracket {
		p.advance()
	}
}
