package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseExternItem handles everything behind an 'extern' in item
// position: extern crate declarations, extern "abi" fn items, and
// foreign blocks.
func (p *Parser) parseExternItem(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	p.advance() // 'extern'

	if p.at(token.KwCrate) {
		p.advance()
		p.skipToSemicolon()
		return p.arenas.Items.NewOpaque(ast.ItemExternCrate, p.spanFrom(start)), true
	}

	decl := ast.ForeignDecl{Attrs: attrs}
	if p.at(token.StringLit) {
		abi := p.advance()
		decl.Abi = p.arenas.Interner.Intern(abi.Text)
	}
	if p.at(token.KwFn) {
		return p.parseFnTail(start, attrs, vis, visSpan)
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBody, "expected '{' to open extern block")
		return ast.NoItemID, false
	}
	p.advance()
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		m, ok := p.parseMember(memberCtxForeign)
		if !ok {
			p.resyncMember()
			continue
		}
		decl.Members = append(decl.Members, m)
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close extern block")
	return p.arenas.Items.NewForeign(p.spanFrom(start), decl), true
}
