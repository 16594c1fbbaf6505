package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseStructItem finishes a struct declaration after the 'struct'
// keyword: unit, tuple, or named body, each with its own field shape.
func (p *Parser) parseStructItem(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipGenerics()

	decl := ast.StructDecl{Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan}

	switch p.lx.Peek().Kind {
	case token.Semicolon:
		p.advance()
		decl.Body = ast.FieldsUnit
	case token.LParen:
		decl.Body = ast.FieldsTuple
		decl.Fields = p.parseTupleFields()
		p.skipToSemicolon()
	default:
		switch p.skipUntilTop(token.LBrace, token.Semicolon) {
		case token.LBrace:
			decl.Body = ast.FieldsNamed
			decl.Fields = p.parseNamedFields()
		case token.Semicolon:
			p.advance()
			decl.Body = ast.FieldsUnit
		default:
			p.err(diag.SynExpectBody, "expected struct body")
			return ast.NoItemID, false
		}
	}
	return p.arenas.Items.NewStruct(p.spanFrom(start), decl), true
}

// parseUnionItem finishes a union declaration. Unions always carry a
// named field body.
func (p *Parser) parseUnionItem(start source.Span, attrs []ast.Attr, vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.skipGenerics()
	if p.skipUntilTop(token.LBrace) != token.LBrace {
		p.err(diag.SynExpectBody, "expected union body")
		return ast.NoItemID, false
	}
	fields := p.parseNamedFields()
	return p.arenas.Items.NewUnion(p.spanFrom(start), ast.UnionDecl{
		Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan, Fields: fields,
	}), true
}

// parseNamedFields consumes a { name: Type, ... } body including both
// braces.
func (p *Parser) parseNamedFields() []ast.Field {
	p.advance() // '{'
	var fields []ast.Field
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.lx.Peek().Span
		attrs := p.parseOuterAttrs()
		if p.at(token.RBrace) {
			break
		}
		vis, visSpan := p.parseVisibility()
		name, ok := p.parseIdent()
		if !ok {
			p.skipFieldType(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name")
		p.skipFieldType(token.Comma, token.RBrace)
		fields = append(fields, ast.Field{
			Name: name, Attrs: attrs, Vis: vis, VisSpan: visSpan, Span: p.spanFrom(start),
		})
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close field list")
	return fields
}

// parseTupleFields consumes a ( Type, ... ) body including both
// parens. Positional fields have no name.
func (p *Parser) parseTupleFields() []ast.Field {
	p.advance() // '('
	var fields []ast.Field
	for !p.at(token.RParen) && !p.at(token.EOF) {
		start := p.lx.Peek().Span
		attrs := p.parseOuterAttrs()
		if p.at(token.RParen) {
			break
		}
		vis, visSpan := p.parseVisibility()
		p.skipFieldType(token.Comma, token.RParen)
		fields = append(fields, ast.Field{
			Attrs: attrs, Vis: vis, VisSpan: visSpan, Span: p.spanFrom(start),
		})
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close field list")
	return fields
}
