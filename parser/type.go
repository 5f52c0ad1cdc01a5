package parser

import "github.com/auto-stack/autolang/ast"

// parseType parses a TypeRef: `T`, `?T`, `[T]`, `T<A, B>`, and any
// combination (e.g. `?[int]`).
func (p *Parser) parseType() *ast.TypeRef {
	start := p.cur().Start
	ref := &ast.TypeRef{}
	if p.isOp("?") {
		p.advance()
		ref.May = true
	}
	if p.isPunct("[") {
		p.advance()
		ref.List = true
		inner := p.parseType()
		ref.Name = inner.Name
		ref.Arguments = inner.Arguments
		p.expectPunct("]")
		ref.Base = spanBase(start, p.prevEnd())
		return ref
	}
	ref.Name = p.expectIdent()
	if p.isOp("<") {
		p.advance()
		for !p.isOp(">") && !p.atEOF() {
			ref.Arguments = append(ref.Arguments, p.parseType())
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if p.isOp(">") {
			p.advance()
		} else {
			p.errorf(ast.Span{Start: p.cur().Start, End: p.cur().End}, "expected %q, got %q", ">", p.cur().Text)
		}
	}
	ref.Base = spanBase(start, p.prevEnd())
	return ref
}
