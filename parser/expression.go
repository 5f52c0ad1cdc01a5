package parser

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/lexer"
)

// parseExpr parses a full expression via precedence climbing, bottoming
// out at parseOr.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	start := p.cur().Start
	lhs := p.parseAnd()
	for p.isOp("||") {
		op := p.advance().Text
		rhs := p.parseAnd()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseAnd() ast.Expr {
	start := p.cur().Start
	lhs := p.parseEquality()
	for p.isOp("&&") {
		op := p.advance().Text
		rhs := p.parseEquality()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseEquality() ast.Expr {
	start := p.cur().Start
	lhs := p.parseComparison()
	for p.isOp("==") || p.isOp("!=") {
		op := p.advance().Text
		rhs := p.parseComparison()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseComparison() ast.Expr {
	start := p.cur().Start
	lhs := p.parseAdditive()
	for p.isOp("<") || p.isOp("<=") || p.isOp(">") || p.isOp(">=") {
		op := p.advance().Text
		rhs := p.parseAdditive()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseAdditive() ast.Expr {
	start := p.cur().Start
	lhs := p.parseMultiplicative()
	for p.isOp("+") || p.isOp("-") {
		op := p.advance().Text
		rhs := p.parseMultiplicative()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseMultiplicative() ast.Expr {
	start := p.cur().Start
	lhs := p.parseUnary()
	for p.isOp("*") || p.isOp("/") || p.isOp("%") {
		op := p.advance().Text
		rhs := p.parseUnary()
		lhs = &ast.BinaryOp{Base: spanBase(start, p.prevEnd()), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs
}

func (p *Parser) parseUnary() ast.Expr {
	start := p.cur().Start
	if p.isOp("-") || p.isOp("!") {
		op := p.advance().Text
		operand := p.parseUnary()
		return &ast.UnaryOp{Base: spanBase(start, p.prevEnd()), Op: op, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix handles call, member, index and the `.?` may-propagation
// suffix, left-associatively chained.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.cur().Start
	expr := p.parsePrimary()
	for {
		switch {
		case p.isOp(".?"):
			p.advance()
			expr = &ast.Postfix{Base: spanBase(start, p.prevEnd()), Op: "?", Operand: expr}

		case p.isOp("."):
			p.advance()
			name := p.expectIdent()
			expr = &ast.Member{Base: spanBase(start, p.prevEnd()), Object: expr, Name: name}

		case p.isPunct("("):
			p.advance()
			var args []ast.Expr
			for !p.isPunct(")") && !p.atEOF() {
				args = append(args, p.parseExpr())
				if p.isPunct(",") {
					p.advance()
					continue
				}
				break
			}
			p.expectPunct(")")
			expr = &ast.Call{Base: spanBase(start, p.prevEnd()), Target: expr, Arguments: args}

		case p.isPunct("["):
			p.advance()
			idx := p.parseExpr()
			p.expectPunct("]")
			expr = &ast.Index{Base: spanBase(start, p.prevEnd()), Object: expr, Index: idx}

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur().Start
	t := p.cur()
	switch {
	case t.Kind == lexer.Int:
		p.advance()
		return &ast.IntLit{Base: spanBase(start, p.prevEnd()), Value: t.Text}

	case t.Kind == lexer.Float:
		p.advance()
		return &ast.FloatLit{Base: spanBase(start, p.prevEnd()), Value: t.Text}

	case t.Kind == lexer.String:
		p.advance()
		return &ast.StringLit{Base: spanBase(start, p.prevEnd()), Value: t.Text}

	case p.isKeyword("true"):
		p.advance()
		return &ast.BoolLit{Base: spanBase(start, p.prevEnd()), Value: true}

	case p.isKeyword("false"):
		p.advance()
		return &ast.BoolLit{Base: spanBase(start, p.prevEnd()), Value: false}

	case p.isKeyword("if"):
		return p.parseIf()

	case p.isKeyword("is"):
		return p.parseIsExpr()

	case t.Kind == lexer.Ident:
		p.advance()
		return &ast.Ident{Base: spanBase(start, p.prevEnd()), Name: t.Text}

	case p.isPunct("("):
		p.advance()
		inner := p.parseExpr()
		p.expectPunct(")")
		return inner

	case p.isPunct("["):
		p.advance()
		var elems []ast.Expr
		for !p.isPunct("]") && !p.atEOF() {
			elems = append(elems, p.parseExpr())
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		p.expectPunct("]")
		return &ast.ArrayLit{Base: spanBase(start, p.prevEnd()), Elems: elems}

	case p.isPunct("{"):
		block := p.parseBlock()
		return &ast.BlockExpr{Base: spanBase(start, p.prevEnd()), Block: block}

	default:
		p.errorf(ast.Span{Start: t.Start, End: t.End}, "unexpected token %q", t.Text)
		p.advance()
		return &ast.Ident{Base: spanBase(start, p.prevEnd()), Name: "<error>"}
	}
}

// parseIf parses `if cond { ... } [else { ... }]`, usable as an
// expression per spec §4.C.
func (p *Parser) parseIf() ast.Expr {
	start := p.cur().Start
	p.advance() // 'if'
	cond := p.parseExpr()
	then := p.parseBlock()
	var elseBlock *ast.Block
	if p.isKeyword("else") {
		p.advance()
		if p.isKeyword("if") {
			inner := p.parseIf()
			elseBlock = &ast.Block{
				Base:  spanBase(p.prevEnd(), p.prevEnd()),
				Stmts: []ast.Stmt{&ast.ExprStmt{Base: spanBase(p.prevEnd(), p.prevEnd()), Value: inner}},
			}
		} else {
			elseBlock = p.parseBlock()
		}
	}
	return &ast.If{Base: spanBase(start, p.prevEnd()), Condition: cond, Then: then, Else: elseBlock}
}

// parseIsExpr parses `is scrutinee { pattern => body, ... }`.
func (p *Parser) parseIsExpr() ast.Expr {
	start := p.cur().Start
	p.advance() // 'is'
	scrutinee := p.parseExpr()
	is := &ast.Is{Scrutinee: scrutinee}
	if p.expectPunct("{") {
		for !p.isPunct("}") && !p.atEOF() {
			arm := p.parseMatchArm()
			is.Arms = append(is.Arms, arm)
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		p.expectPunct("}")
	}
	is.Base = spanBase(start, p.prevEnd())
	return is
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.cur().Start
	pattern := p.parsePattern()
	if p.isOp("=>") {
		p.advance()
	} else {
		p.errorf(ast.Span{Start: p.cur().Start, End: p.cur().End}, "expected %q, got %q", "=>", p.cur().Text)
	}
	body := p.parseExpr()
	return &ast.MatchArm{Base: spanBase(start, p.prevEnd()), Pattern: pattern, Body: body}
}

// parsePattern parses a wildcard `_`, a bind pattern, or a tag pattern
// like `Opt.some(x)`.
func (p *Parser) parsePattern() ast.Pattern {
	start := p.cur().Start
	t := p.cur()
	if t.Kind == lexer.Ident && t.Text == "_" {
		p.advance()
		return &ast.WildcardPattern{Base: spanBase(start, p.prevEnd())}
	}
	name := p.expectIdent()
	if p.isOp(".") {
		p.advance()
		entry := p.expectIdent()
		tp := &ast.TagPattern{Tag: name, Entry: entry}
		if p.isPunct("(") {
			p.advance()
			for !p.isPunct(")") && !p.atEOF() {
				tp.Bindings = append(tp.Bindings, p.expectIdent())
				if p.isPunct(",") {
					p.advance()
					continue
				}
				break
			}
			p.expectPunct(")")
		}
		tp.Base = spanBase(start, p.prevEnd())
		return tp
	}
	return &ast.BindPattern{Base: spanBase(start, p.prevEnd()), Name: name}
}
