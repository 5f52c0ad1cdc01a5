// Package parser implements a recursive-descent parser for converting
// AutoLang source into the ast package's tree form. AutoLang's full
// surface grammar is out of the incremental engine's scope (spec.md
// treats the lexer/parser as an external collaborator); this package
// implements just the literal grammar spec.md's worked scenarios in
// §8 exercise, in the style of gapil/parser (one file per construct,
// synchronise-and-continue error recovery).
package parser

import (
	"fmt"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/lexer"
)

// spanBase builds the ast.Base embedded by every node constructed here,
// covering the half-open byte range [start, end).
func spanBase(start, end int) ast.Base {
	return ast.Base{Sp: ast.Span{Start: start, End: end}}
}

// Parser holds the token cursor and accumulated error list for one
// parse of a single file.
type Parser struct {
	toks   []lexer.Token
	pos    int
	Errors ErrorList
}

// Parse parses data as a complete AutoLang source file. If data is not
// syntactically valid, the returned *ast.File is the best-effort,
// possibly incomplete, tree and Errors.Errors is non-empty.
func Parse(data string, errorLimit int) (*ast.File, ErrorList) {
	p := &Parser{toks: lexer.All(data), Errors: ErrorList{Limit: errorLimit}}
	f := p.parseFile()
	return f, p.Errors
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.EOF }

func (p *Parser) isKeyword(kw string) bool {
	t := p.cur()
	return t.Kind == lexer.Keyword && t.Text == kw
}

func (p *Parser) isPunct(s string) bool {
	t := p.cur()
	return t.Kind == lexer.Punct && t.Text == s
}

func (p *Parser) isOp(s string) bool {
	t := p.cur()
	return t.Kind == lexer.Op && t.Text == s
}

func (p *Parser) errorf(span ast.Span, format string, args ...interface{}) {
	p.Errors.Add(Error{Message: fmt.Sprintf(format, args...), Span: span})
}

// expectPunct consumes a punctuation token if it matches, else records
// an error and leaves the cursor in place (caller synchronises).
func (p *Parser) expectPunct(s string) bool {
	if p.isPunct(s) {
		p.advance()
		return true
	}
	p.errorf(ast.Span{Start: p.cur().Start, End: p.cur().End}, "expected %q, got %q", s, p.cur().Text)
	return false
}

func (p *Parser) expectIdent() *ast.Identifier {
	t := p.cur()
	if t.Kind != lexer.Ident {
		p.errorf(ast.Span{Start: t.Start, End: t.End}, "expected identifier, got %q", t.Text)
		return &ast.Identifier{Base: spanBase(t.Start, t.Start), Value: "<error>"}
	}
	p.advance()
	return &ast.Identifier{Base: spanBase(t.Start, t.End), Value: t.Text}
}

// synchronize skips tokens until the start of the next statement or
// top-level item boundary, so one syntax error does not cascade. It
// mirrors spec §7's "synchronise at the next statement boundary" rule.
func (p *Parser) synchronize() {
	for !p.atEOF() {
		if p.isKeyword("fn") || p.isKeyword("tag") || p.isKeyword("alias") ||
			p.isKeyword("use") || p.isKeyword("let") || p.isKeyword("return") ||
			p.isPunct(";") || p.isPunct("}") {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseFile() *ast.File {
	f := &ast.File{}
	for !p.atEOF() {
		if p.Errors.Full() {
			break
		}
		switch {
		case p.isKeyword("use"):
			f.Uses = append(f.Uses, p.parseUse())
		case p.isKeyword("fn"):
			f.Items = append(f.Items, p.parseFunction())
		case p.isKeyword("tag"):
			f.Items = append(f.Items, p.parseTagDecl())
		case p.isKeyword("alias"):
			f.Items = append(f.Items, p.parseAliasDecl())
		default:
			start := p.cur().Start
			e := p.parseExpr()
			p.consumeOptional(";")
			f.Items = append(f.Items, &ast.TopLevelStmt{Base: spanBase(start, p.prevEnd()), Value: e})
		}
	}
	return f
}

func (p *Parser) consumeOptional(s string) {
	if p.isPunct(s) {
		p.advance()
	}
}

func (p *Parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End
}

// parseUse parses `use a.b.c` or `use a.b.c: Alias`.
func (p *Parser) parseUse() *ast.Use {
	start := p.cur().Start
	p.advance() // 'use'
	var path []string
	path = append(path, p.expectIdent().Value)
	for p.isOp(".") {
		p.advance()
		path = append(path, p.expectIdent().Value)
	}
	var alias *ast.Identifier
	if p.isPunct(":") {
		p.advance()
		alias = p.expectIdent()
	}
	return &ast.Use{Base: spanBase(start, p.prevEnd()), Path: path, Alias: alias}
}
