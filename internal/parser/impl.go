package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseImplItem parses an impl block. The header is scanned for a
// 'for' outside delimiters and before any where clause, which is what
// separates trait impls from inherent ones.
func (p *Parser) parseImplItem(start source.Span, attrs []ast.Attr) (ast.ItemID, bool) {
	p.advance() // 'impl'
	p.skipGenerics()

	decl := ast.ImplDecl{Attrs: attrs}
	angles := 0
	sawWhere := false
scan:
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.err(diag.SynExpectBody, "expected impl body")
			return ast.NoItemID, false
		case tok.Kind == token.LBrace && angles == 0:
			break scan
		case tok.Kind == token.Lt:
			angles++
			p.advance()
		case tok.Kind == token.Gt:
			if angles > 0 {
				angles--
			}
			p.advance()
		case tok.Kind == token.KwWhere && angles == 0:
			sawWhere = true
			p.advance()
		case tok.Kind == token.KwFor && angles == 0:
			// for<'a> opens a higher-ranked bound, any other 'for'
			// names the implemented trait
			p.advance()
			if !sawWhere && !p.at(token.Lt) {
				decl.HasTrait = true
			}
		case tok.Kind.IsOpenDelim():
			p.skipBalanced()
		case tok.Kind.IsCloseDelim():
			p.err(diag.SynExpectBody, "expected impl body")
			return ast.NoItemID, false
		default:
			p.advance()
		}
	}

	p.advance() // '{'
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		m, ok := p.parseMember(memberCtxImpl)
		if !ok {
			p.resyncMember()
			continue
		}
		decl.Members = append(decl.Members, m)
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close impl block")
	return p.arenas.Items.NewImpl(p.spanFrom(start), decl), true
}
