package parser

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// parseVisibility reads an optional visibility modifier. When nothing
// is there the returned span is empty and marks where a modifier would
// be inserted. Restricted forms like pub(crate) come back as private
// with a span covering the whole modifier, so promotion replaces them.
func (p *Parser) parseVisibility() (ast.Visibility, source.Span) {
	if !p.at(token.KwPub) {
		sp := p.lx.Peek().Span
		return ast.VisPrivate, source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	pubTok := p.advance()
	if !p.at(token.LParen) {
		return ast.VisPublic, pubTok.Span
	}
	p.skipBalanced()
	return ast.VisPrivate, p.spanFrom(pubTok.Span)
}
