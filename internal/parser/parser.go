package parser

import (
	"slices"

	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/lexer"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	src      *source.File
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one file into the builder's arenas. The lexer must
// already be positioned at the start of the file.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	start := lx.Peek().Span
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		src:      fs.Get(start.File),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.file = arenas.Files.New(ast.File{Source: start.File, Span: start})

	p.parseItems(func(id ast.ItemID) {
		f := arenas.Files.Get(p.file)
		f.Items = append(f.Items, id)
	}, token.EOF)

	arenas.Files.Get(p.file).Span = start.Cover(p.lastSpan)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

// parseItems runs the item loop until the stop token (EOF at top
// level, RBrace inside an inline mod). The stop token is not consumed.
func (p *Parser) parseItems(push func(ast.ItemID), stop token.Kind) {
	for !p.at(stop) && !p.at(token.EOF) {
		id, ok := p.parseItem(stop)
		if !ok {
			p.resyncItem(stop)
			continue
		}
		push(id)
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}
