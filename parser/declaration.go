package parser

import "github.com/auto-stack/autolang/ast"

// parseGenerics parses an optional `<A, B, ...>` generic parameter list.
func (p *Parser) parseGenerics() []*ast.Identifier {
	if !p.isOp("<") {
		return nil
	}
	p.advance()
	var out []*ast.Identifier
	for !p.isOp(">") && !p.atEOF() {
		out = append(out, p.expectIdent())
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
	return out
}

// parseFunction parses `fn name<generics>(params) returnType { body }`.
func (p *Parser) parseFunction() *ast.Function {
	start := p.cur().Start
	p.advance() // 'fn'
	fn := &ast.Function{Name: p.expectIdent()}
	fn.Generics = p.parseGenerics()

	if p.expectPunct("(") {
		for !p.isPunct(")") && !p.atEOF() {
			pstart := p.cur().Start
			name := p.expectIdent()
			typ := p.parseType()
			fn.Parameters = append(fn.Parameters, &ast.Parameter{
				Base: spanBase(pstart, p.prevEnd()),
				Name: name,
				Type: typ,
			})
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		p.expectPunct(")")
	}

	if !p.isPunct("{") {
		fn.ReturnType = p.parseType()
	}
	fn.Body = p.parseBlock()
	fn.Base = spanBase(start, p.prevEnd())
	return fn
}

// parseTagDecl parses `tag Name<generics> { entry1, entry2(T), ... }`.
func (p *Parser) parseTagDecl() *ast.TagDecl {
	start := p.cur().Start
	p.advance() // 'tag'
	decl := &ast.TagDecl{Name: p.expectIdent()}
	decl.Generics = p.parseGenerics()

	if p.expectPunct("{") {
		for !p.isPunct("}") && !p.atEOF() {
			estart := p.cur().Start
			entry := &ast.TagEntry{Name: p.expectIdent()}
			if p.isPunct("(") {
				p.advance()
				entry.Payload = p.parseType()
				p.expectPunct(")")
			}
			entry.Base = spanBase(estart, p.prevEnd())
			decl.Entries = append(decl.Entries, entry)
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		p.expectPunct("}")
	}
	decl.Base = spanBase(start, p.prevEnd())
	return decl
}

// parseAliasDecl parses `alias Name<generics> = Type`.
func (p *Parser) parseAliasDecl() *ast.AliasDecl {
	start := p.cur().Start
	p.advance() // 'alias'
	decl := &ast.AliasDecl{Name: p.expectIdent()}
	decl.Generics = p.parseGenerics()
	if p.isOp("=") {
		p.advance()
	} else {
		p.errorf(ast.Span{Start: p.cur().Start, End: p.cur().End}, "expected %q, got %q", "=", p.cur().Text)
	}
	decl.Target = p.parseType()
	p.consumeOptional(";")
	decl.Base = spanBase(start, p.prevEnd())
	return decl
}
