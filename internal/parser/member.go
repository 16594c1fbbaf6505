package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

type memberCtx uint8

const (
	memberCtxImpl memberCtx = iota
	memberCtxForeign
)

// parseMember parses one declaration inside an impl or extern block.
func (p *Parser) parseMember(ctx memberCtx) (ast.Member, bool) {
	start := p.lx.Peek().Span
	attrs := p.parseOuterAttrs()
	if p.at(token.RBrace) || p.at(token.EOF) {
		if len(attrs) > 0 {
			p.err(diag.SynUnexpectedToken, "expected declaration after attributes")
		}
		return ast.Member{}, false
	}
	vis, visSpan := p.parseVisibility()
	m := ast.Member{Attrs: attrs, Vis: vis, VisSpan: visSpan}

	if ctx == memberCtxImpl && p.at(token.KwDefault) {
		p.advance()
	}

	switch p.lx.Peek().Kind {
	case token.KwConst:
		p.advance()
		if p.at(token.Ident) {
			m.Kind = ast.MemberConst
			name, ok := p.parseIdent()
			if !ok {
				return ast.Member{}, false
			}
			m.Name = name
			p.skipToSemicolon()
			break
		}
		return p.parseMemberFnTail(m, start)
	case token.KwStatic:
		p.advance()
		if p.at(token.KwMut) {
			p.advance()
		}
		m.Kind = ast.MemberStatic
		name, ok := p.parseIdent()
		if !ok {
			return ast.Member{}, false
		}
		m.Name = name
		p.skipToSemicolon()
	case token.KwType:
		p.advance()
		m.Kind = ast.MemberType
		name, ok := p.parseIdent()
		if !ok {
			return ast.Member{}, false
		}
		m.Name = name
		p.skipToSemicolon()
	case token.KwFn, token.KwAsync, token.KwUnsafe, token.KwExtern:
		return p.parseMemberFnTail(m, start)
	case token.Ident:
		p.advance()
		for p.at(token.ColonColon) {
			p.advance()
			if p.at(token.Ident) {
				p.advance()
			}
		}
		if !p.at(token.Bang) {
			p.err(diag.SynUnexpectedToken, "unexpected identifier in block")
			return ast.Member{}, false
		}
		p.advance()
		open := p.lx.Peek()
		if !open.Kind.IsOpenDelim() {
			p.err(diag.SynUnexpectedToken, "expected macro delimiter")
			return ast.Member{}, false
		}
		p.skipBalanced()
		if open.Kind != token.LBrace {
			p.skipToSemicolon()
		}
		m.Kind = ast.MemberMacro
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token in block")
		return ast.Member{}, false
	}

	m.Span = p.spanFrom(start)
	return m, true
}

// parseMemberFnTail finishes a function member. Foreign functions
// usually end with ';', impl functions with a body; both are accepted
// in both contexts.
func (p *Parser) parseMemberFnTail(m ast.Member, start source.Span) (ast.Member, bool) {
	for p.atOr(token.KwConst, token.KwAsync, token.KwUnsafe) {
		p.advance()
	}
	if p.at(token.KwExtern) {
		p.advance()
		if p.at(token.StringLit) {
			p.advance()
		}
	}
	if _, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected 'fn'"); !ok {
		return ast.Member{}, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return ast.Member{}, false
	}
	m.Kind = ast.MemberFn
	m.Name = name
	p.skipGenerics()
	if !p.at(token.LParen) {
		p.err(diag.SynUnexpectedToken, "expected '(' after function name")
		return ast.Member{}, false
	}
	p.skipBalanced()
	switch p.skipUntilTop(token.LBrace, token.Semicolon) {
	case token.LBrace:
		p.skipBalanced()
	case token.Semicolon:
		p.advance()
	default:
		p.err(diag.SynExpectBody, "expected function body or ';'")
		return ast.Member{}, false
	}
	m.Span = p.spanFrom(start)
	return m, true
}

// resyncMember recovers inside an impl or extern block.
func (p *Parser) resyncMember() {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || tok.Kind == token.RBrace || isItemStarter(tok.Kind) {
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
