package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseModItem parses `mod name;` and `mod name { ... }`. Inline
// bodies are parsed into nested items so recursive runs can reach
// them; out-of-line modules carry no body here.
func (p *Parser) parseModItem(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	p.advance() // 'mod'
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	decl := ast.ModDecl{Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan}

	switch p.lx.Peek().Kind {
	case token.Semicolon:
		p.advance()
	case token.LBrace:
		p.advance()
		decl.HasBody = true
		p.parseItems(func(id ast.ItemID) {
			decl.Items = append(decl.Items, id)
		}, token.RBrace)
		p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close module")
	default:
		p.err(diag.SynUnexpectedToken, "expected ';' or '{' after module name")
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewMod(p.spanFrom(start), decl), true
}
