package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseItem reads one declaration: attributes, visibility, then the
// construct picked by the leading keyword.
func (p *Parser) parseItem(stop token.Kind) (ast.ItemID, bool) {
	start := p.lx.Peek().Span
	attrs := p.parseOuterAttrs()
	if p.at(stop) || p.at(token.EOF) {
		if len(attrs) > 0 {
			p.err(diag.SynUnexpectedToken, "expected declaration after attributes")
		}
		return ast.NoItemID, false
	}
	vis, visSpan := p.parseVisibility()
	return p.parseItemAfterVis(start, attrs, vis, visSpan)
}

func (p *Parser) parseItemAfterVis(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwConst:
		p.advance()
		if p.at(token.Ident) {
			return p.parseTerminatedTail(start, attrs, vis, visSpan, ast.ItemConst)
		}
		return p.parseFnTail(start, attrs, vis, visSpan)
	case token.KwStatic:
		p.advance()
		if p.at(token.KwMut) {
			p.advance()
		}
		return p.parseTerminatedTail(start, attrs, vis, visSpan, ast.ItemStatic)
	case token.KwFn, token.KwAsync:
		return p.parseFnTail(start, attrs, vis, visSpan)
	case token.KwUnsafe:
		p.advance()
		switch p.lx.Peek().Kind {
		case token.KwTrait:
			p.advance()
			return p.parseTraitTail(start, attrs, vis, visSpan)
		case token.KwImpl:
			return p.parseImplItem(start, attrs)
		case token.KwExtern:
			return p.parseExternItem(start, attrs, vis, visSpan)
		default:
			return p.parseFnTail(start, attrs, vis, visSpan)
		}
	case token.KwEnum:
		p.advance()
		return p.parseBracedTail(start, attrs, vis, visSpan, ast.ItemEnum)
	case token.KwStruct:
		p.advance()
		return p.parseStructItem(start, attrs, vis, visSpan)
	case token.KwTrait:
		p.advance()
		return p.parseTraitTail(start, attrs, vis, visSpan)
	case token.KwType:
		p.advance()
		return p.parseTerminatedTail(start, attrs, vis, visSpan, ast.ItemTypeAlias)
	case token.KwMod:
		return p.parseModItem(start, attrs, vis, visSpan)
	case token.KwImpl:
		return p.parseImplItem(start, attrs)
	case token.KwExtern:
		return p.parseExternItem(start, attrs, vis, visSpan)
	case token.KwUse:
		p.advance()
		p.skipToSemicolon()
		return p.arenas.Items.NewOpaque(ast.ItemUse, p.spanFrom(start)), true
	case token.Ident:
		tok := p.advance()
		if tok.Text == "union" && p.at(token.Ident) {
			return p.parseUnionItem(start, attrs, vis, visSpan)
		}
		for p.at(token.ColonColon) {
			p.advance()
			if p.at(token.Ident) {
				p.advance()
			}
		}
		if p.at(token.Bang) {
			return p.parseMacroTail(start)
		}
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, tok.Span,
			"unexpected '"+tok.Text+"' at declaration level")
		return ast.NoItemID, false
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected token at declaration level")
		return ast.NoItemID, false
	}
}

// parseTerminatedTail finishes const, static and type alias
// declarations: a name, then everything through the ';'.
func (p *Parser) parseTerminatedTail(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span, kind ast.ItemKind) (ast.ItemID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipToSemicolon()
	return p.arenas.Items.NewSimple(kind, p.spanFrom(start), ast.SimpleDecl{
		Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan,
	}), true
}

// parseFnTail finishes a function: remaining qualifiers, 'fn', name,
// generics, parameters, then the body or a ';'.
func (p *Parser) parseFnTail(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
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
		return ast.NoItemID, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipGenerics()
	if !p.at(token.LParen) {
		p.err(diag.SynUnexpectedToken, "expected '(' after function name")
		return ast.NoItemID, false
	}
	p.skipBalanced()
	switch p.skipUntilTop(token.LBrace, token.Semicolon) {
	case token.LBrace:
		p.skipBalanced()
	case token.Semicolon:
		p.advance()
	default:
		p.err(diag.SynExpectBody, "expected function body")
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewSimple(ast.ItemFn, p.spanFrom(start), ast.SimpleDecl{
		Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan,
	}), true
}

// parseBracedTail finishes declarations whose tail is a name, optional
// generics and where clause, then one braced body. Enums land here.
func (p *Parser) parseBracedTail(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span, kind ast.ItemKind) (ast.ItemID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipGenerics()
	if p.skipUntilTop(token.LBrace) != token.LBrace {
		p.err(diag.SynExpectBody, "expected '{'")
		return ast.NoItemID, false
	}
	p.skipBalanced()
	return p.arenas.Items.NewSimple(kind, p.spanFrom(start), ast.SimpleDecl{
		Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan,
	}), true
}

// parseTraitTail finishes a trait or trait alias declaration.
func (p *Parser) parseTraitTail(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipGenerics()
	if p.at(token.Eq) {
		p.skipToSemicolon()
		return p.arenas.Items.NewSimple(ast.ItemTraitAlias, p.spanFrom(start), ast.SimpleDecl{
			Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan,
		}), true
	}
	if p.skipUntilTop(token.LBrace) != token.LBrace {
		p.err(diag.SynExpectBody, "expected trait body")
		return ast.NoItemID, false
	}
	p.skipBalanced()
	return p.arenas.Items.NewSimple(ast.ItemTrait, p.spanFrom(start), ast.SimpleDecl{
		Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan,
	}), true
}

// parseMacroTail finishes macro_rules definitions and bang macro
// invocations in declaration position. Both stay untouched.
func (p *Parser) parseMacroTail(start source.Span) (ast.ItemID, bool) {
	p.advance() // '!'
	if p.at(token.Ident) {
		p.advance() // macro_rules! name
	}
	open := p.lx.Peek()
	if !open.Kind.IsOpenDelim() {
		p.err(diag.SynUnexpectedToken, "expected macro delimiter")
		return ast.NoItemID, false
	}
	p.skipBalanced()
	if open.Kind != token.LBrace {
		p.skipToSemicolon()
	}
	return p.arenas.Items.NewOpaque(ast.ItemMacro, p.spanFrom(start)), true
}
