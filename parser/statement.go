package parser

import "github.com/auto-stack/autolang/ast"

// parseBlock parses a `{ stmt* }` sequence.
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur().Start
	block := &ast.Block{}
	if !p.expectPunct("{") {
		block.Base = spanBase(start, p.prevEnd())
		return block
	}
	for !p.isPunct("}") && !p.atEOF() {
		if p.Errors.Full() {
			break
		}
		before := p.pos
		block.Stmts = append(block.Stmts, p.parseStatement())
		if p.pos == before {
			// parseStatement made no progress; avoid an infinite loop by
			// synchronising to the next recognisable boundary.
			p.synchronize()
			if p.pos == before {
				p.advance()
			}
		}
	}
	p.expectPunct("}")
	block.Base = spanBase(start, p.prevEnd())
	return block
}

// parseStatement parses one statement: `let`, `return`, or a bare
// expression statement.
func (p *Parser) parseStatement() ast.Stmt {
	start := p.cur().Start
	switch {
	case p.isKeyword("let"):
		p.advance()
		name := p.expectIdent()
		var typ *ast.TypeRef
		if p.isPunct(":") {
			p.advance()
			typ = p.parseType()
		}
		if p.isOp("=") {
			p.advance()
		} else {
			p.errorf(ast.Span{Start: p.cur().Start, End: p.cur().End}, "expected %q, got %q", "=", p.cur().Text)
		}
		value := p.parseExpr()
		p.consumeOptional(";")
		return &ast.LetStmt{Base: spanBase(start, p.prevEnd()), Name: name, Type: typ, Value: value}

	case p.isKeyword("return"):
		p.advance()
		var value ast.Expr
		if !p.isPunct(";") && !p.isPunct("}") && !p.atEOF() {
			value = p.parseExpr()
		}
		p.consumeOptional(";")
		return &ast.ReturnStmt{Base: spanBase(start, p.prevEnd()), Value: value}

	default:
		value := p.parseExpr()
		p.consumeOptional(";")
		return &ast.ExprStmt{Base: spanBase(start, p.prevEnd()), Value: value}
	}
}
