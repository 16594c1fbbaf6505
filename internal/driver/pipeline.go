package driver

import (
	"pubsweep/internal/ast"
	"pubsweep/internal/diag"
	"pubsweep/internal/format"
	"pubsweep/internal/lexer"
	"pubsweep/internal/parser"
	"pubsweep/internal/rewrite"
	"pubsweep/internal/source"
	"pubsweep/internal/token"
)

// FileResult is the outcome of rewriting one file.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Output   []byte // nil when diagnostics aborted the run
	Changed  bool
	Markers  int // stripped exclusion markers
	Bag      *diag.Bag
	CacheHit bool
}

// TokenizeFile lexes one loaded file into its full token stream.
func TokenizeFile(fs *source.FileSet, fid source.FileID, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fid)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, bag
}

// ParseOne parses one loaded file into a fresh builder.
func ParseOne(fs *source.FileSet, fid source.FileID, maxDiagnostics int) (*ast.Builder, ast.FileID, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fid)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(nil)
	res := parser.ParseFile(fs, lx, builder, parser.Options{
		MaxErrors: maxErrorsFor(maxDiagnostics),
		Reporter:  &diag.BagReporter{Bag: bag},
	})
	return builder, res.File, bag
}

// RewriteOne runs the whole pipeline over one loaded file. Output is
// nil when lexing, parsing or rewriting produced an error, so a
// broken file is never half-written.
func RewriteOne(fs *source.FileSet, fid source.FileID, recursive bool, maxDiagnostics int) FileResult {
	sf := fs.Get(fid)
	result := FileResult{Path: sf.Path, FileID: fid}

	builder, astFile, bag := ParseOne(fs, fid, maxDiagnostics)
	result.Bag = bag
	if bag.HasErrors() {
		return result
	}

	f := builder.Files.Get(astFile)
	r := rewrite.New(builder)
	if err := r.File(f, recursive); err != nil {
		bag.Add(err.Diagnostic())
		return result
	}
	result.Markers = len(r.Stripped())

	edits := r.Edits(sf, f)
	out, err := format.Apply(sf, edits)
	if err != nil {
		bag.Add(diag.NewError(diag.RewriteInfo, source.Span{File: fid}, err.Error()))
		return result
	}
	result.Output = out
	result.Changed = len(edits) > 0
	return result
}

// RewritePath loads one file from disk and rewrites it in memory.
func RewritePath(path string, recursive bool, maxDiagnostics int) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	fid, err := fs.Load(path)
	if err != nil {
		return fs, FileResult{Path: path}, err
	}
	result := RewriteOne(fs, fid, recursive, maxDiagnostics)
	result.Path = path
	return fs, result, nil
}

// RewriteFile loads one file, rewrites it, and writes the result back
// when opts.Write is set. A backup copy is kept when opts.BackupSuffix
// is non-empty.
func RewriteFile(path string, opts Options) (*source.FileSet, FileResult, error) {
	fs, result, err := RewritePath(path, opts.Recursive, opts.MaxDiagnostics)
	if err != nil {
		return fs, result, err
	}
	writeBack(&result, fs.Get(result.FileID), &opts)
	return fs, result, nil
}

func maxErrorsFor(maxDiagnostics int) uint {
	if maxDiagnostics <= 0 {
		return 0
	}
	return uint(maxDiagnostics)
}
