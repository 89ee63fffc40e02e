package parser

import (
	"github.com/shiro/map2-legacy/parser/node"
	"github.com/shiro/map2-legacy/parser/source"
	"github.com/shiro/map2-legacy/token"
)

// ParseStmt dispatches over all statement productions. Keyword-prefixed
// productions come first; the expression-statement fallback accepts the
// widest input and must stay last. Once a leading keyword has matched,
// no other production can consume as much input, so the longest-match
// tie-break in Alt reports the committed production's failure.
func (p *Parser) ParseStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "Statement"))

	return Context("statement", Alt(
		p.ParseLetStmt,
		p.ParseIfStmt,
		p.ParseWhileStmt,
		p.ParseForStmt,
		p.ParseBreakStmt,
		p.ParseContinueStmt,
		p.ParseReturnStmt,
		p.ParseBlockStmtNode,
		p.ParseExprStmt,
	))(c)
}

// ParseContinueStmt parses "continue" ws ";".
func (p *Parser) ParseContinueStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "ContinueStmt"))

	return Context("continue_statement",
		Map(Seq3(Keyword("continue"), Ws0, Literal(";")),
			func(t Triple[Lexeme, Lexeme, Lexeme]) node.Stmt {
				return &node.BranchStmt{Token: token.Continue, TokenPos: t.A.Pos}
			}))(c)
}

// ParseBreakStmt parses "break" ws ";".
func (p *Parser) ParseBreakStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "BreakStmt"))

	return Context("break_statement",
		Map(Seq3(Keyword("break"), Ws0, Literal(";")),
			func(t Triple[Lexeme, Lexeme, Lexeme]) node.Stmt {
				return &node.BranchStmt{Token: token.Break, TokenPos: t.A.Pos}
			}))(c)
}

// ParseReturnStmt parses "return" ws expr? ws ";".
func (p *Parser) ParseReturnStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "ReturnStmt"))

	return Context("return_statement",
		Map(Seq5(Keyword("return"), Ws0, Opt(p.ParseExpr), Ws0, Literal(";")),
			func(t Quint[Lexeme, Lexeme, *node.Expr, Lexeme, Lexeme]) node.Stmt {
				ret := &node.ReturnStmt{ReturnPos: t.A.Pos}
				if t.C != nil {
					ret.Result = *t.C
				}
				return ret
			}))(c)
}

// ParseLetStmt parses "let" ws ident (ws "=" ws expr)? ws ";".
func (p *Parser) ParseLetStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "LetStmt"))

	return Context("let_statement", func(c source.Cursor) Result[node.Stmt] {
		head := p.parseLetHeader(c)
		if !head.OK() {
			return Fail[node.Stmt](head.Fail)
		}
		semi := Literal(";")(Ws0(head.Next).Next)
		if !semi.OK() {
			return Fail[node.Stmt](semi.Fail)
		}
		return Success[node.Stmt](semi.Next, head.Value)
	})(c)
}

// parseLetHeader parses a let declaration without the trailing ';' so
// for-loop initializers can reuse it.
func (p *Parser) parseLetHeader(c source.Cursor) Result[*node.LetStmt] {
	kw := Keyword("let")(c)
	if !kw.OK() {
		return Fail[*node.LetStmt](kw.Fail)
	}
	ident := p.ParseIdent(Ws0(kw.Next).Next)
	if !ident.OK() {
		return Fail[*node.LetStmt](ident.Fail)
	}

	let := &node.LetStmt{LetPos: kw.Value.Pos, Ident: ident.Value}

	eq := Literal("=")(Ws0(ident.Next).Next)
	if !eq.OK() {
		return Success(ident.Next, let)
	}
	value := p.ParseExpr(Ws0(eq.Next).Next)
	if !value.OK() {
		return Fail[*node.LetStmt](value.Fail)
	}
	let.Value = value.Value
	return Success(value.Next, let)
}

// ParseIfStmt parses "if" ws expr ws block ("else" ws (if | block))?.
func (p *Parser) ParseIfStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "IfStmt"))

	return Context("if_statement", func(c source.Cursor) Result[node.Stmt] {
		kw := Keyword("if")(c)
		if !kw.OK() {
			return Fail[node.Stmt](kw.Fail)
		}
		cond := p.ParseExpr(Ws0(kw.Next).Next)
		if !cond.OK() {
			return Fail[node.Stmt](cond.Fail)
		}
		body := p.ParseBlockStmt(Ws0(cond.Next).Next)
		if !body.OK() {
			return Fail[node.Stmt](body.Fail)
		}

		stmt := &node.IfStmt{
			IfPos: kw.Value.Pos,
			Cond:  cond.Value,
			Body:  body.Value,
		}

		els := Keyword("else")(Ws0(body.Next).Next)
		if !els.OK() {
			return Success[node.Stmt](body.Next, stmt)
		}
		// the else keyword commits; anything but an if or a block
		// is a hard failure
		alt := Alt(p.ParseIfStmt, p.ParseBlockStmtNode)(Ws0(els.Next).Next)
		if !alt.OK() {
			return Fail[node.Stmt](alt.Fail)
		}
		stmt.Else = alt.Value
		return Success[node.Stmt](alt.Next, stmt)
	})(c)
}

// ParseWhileStmt parses "while" ws expr ws block.
func (p *Parser) ParseWhileStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "WhileStmt"))

	return Context("while_statement", func(c source.Cursor) Result[node.Stmt] {
		kw := Keyword("while")(c)
		if !kw.OK() {
			return Fail[node.Stmt](kw.Fail)
		}
		cond := p.ParseExpr(Ws0(kw.Next).Next)
		if !cond.OK() {
			return Fail[node.Stmt](cond.Fail)
		}
		body := p.ParseBlockStmt(Ws0(cond.Next).Next)
		if !body.OK() {
			return Fail[node.Stmt](body.Fail)
		}
		return Success[node.Stmt](body.Next, &node.WhileStmt{
			WhilePos: kw.Value.Pos,
			Cond:     cond.Value,
			Body:     body.Value,
		})
	})(c)
}

// ParseForStmt parses "for" ws "(" init? ";" cond? ";" post? ")" ws block.
// Each header slot may be empty.
func (p *Parser) ParseForStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "ForStmt"))

	return Context("for_statement", func(c source.Cursor) Result[node.Stmt] {
		kw := Keyword("for")(c)
		if !kw.OK() {
			return Fail[node.Stmt](kw.Fail)
		}
		lp := Literal("(")(Ws0(kw.Next).Next)
		if !lp.OK() {
			return Fail[node.Stmt](lp.Fail)
		}

		stmt := &node.ForStmt{ForPos: kw.Value.Pos}

		cur := Ws0(lp.Next).Next
		if init := p.parseForInit(cur); init.OK() {
			stmt.Init = init.Value
			cur = init.Next
		}
		semi := Literal(";")(Ws0(cur).Next)
		if !semi.OK() {
			return Fail[node.Stmt](semi.Fail)
		}

		cur = Ws0(semi.Next).Next
		if cond := p.ParseExpr(cur); cond.OK() {
			stmt.Cond = cond.Value
			cur = cond.Next
		}
		semi = Literal(";")(Ws0(cur).Next)
		if !semi.OK() {
			return Fail[node.Stmt](semi.Fail)
		}

		cur = Ws0(semi.Next).Next
		if post := p.ParseSimpleStmt(cur); post.OK() {
			stmt.Post = post.Value
			cur = post.Next
		}
		rp := Literal(")")(Ws0(cur).Next)
		if !rp.OK() {
			return Fail[node.Stmt](rp.Fail)
		}

		body := p.ParseBlockStmt(Ws0(rp.Next).Next)
		if !body.OK() {
			return Fail[node.Stmt](body.Fail)
		}
		stmt.Body = body.Value
		return Success[node.Stmt](body.Next, stmt)
	})(c)
}

func (p *Parser) parseForInit(c source.Cursor) Result[node.Stmt] {
	if head := p.parseLetHeader(c); head.OK() {
		return Success[node.Stmt](head.Next, head.Value)
	}
	return p.ParseSimpleStmt(c)
}

// ParseSimpleStmt parses an assignment or a bare expression, without a
// trailing ';'. It backs the expression-statement production and the
// for-loop header slots.
func (p *Parser) ParseSimpleStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "SimpleStmt"))

	if id := p.ParseIdent(c); id.OK() {
		eq := Literal("=")(Ws0(id.Next).Next)
		// "==" is a comparison, not an assignment
		if eq.OK() && eq.Next.Byte() != '=' {
			rhs := p.ParseExpr(Ws0(eq.Next).Next)
			if !rhs.OK() {
				return Fail[node.Stmt](rhs.Fail)
			}
			return Success[node.Stmt](rhs.Next, &node.AssignStmt{
				LHS:      id.Value,
				RHS:      rhs.Value,
				TokenPos: eq.Value.Pos,
			})
		}
	}

	expr := p.ParseExpr(c)
	if !expr.OK() {
		return Fail[node.Stmt](expr.Fail)
	}
	return Success[node.Stmt](expr.Next, &node.ExprStmt{Expr: expr.Value})
}

// ParseExprStmt parses a simple statement terminated by ';'. It is the
// widest production and must be the dispatcher's last alternative.
func (p *Parser) ParseExprStmt(c source.Cursor) Result[node.Stmt] {
	defer untracep(tracep(p, "ExprStmt"))

	return Context("expression_statement",
		Map(Seq3(p.ParseSimpleStmt, Ws0, Literal(";")),
			func(t Triple[node.Stmt, Lexeme, Lexeme]) node.Stmt {
				return t.A
			}))(c)
}

// ParseBlockStmt parses "{" statements "}".
func (p *Parser) ParseBlockStmt(c source.Cursor) Result[*node.BlockStmt] {
	defer untracep(tracep(p, "BlockStmt"))

	return Context("block_statement", func(c source.Cursor) Result[*node.BlockStmt] {
		lb := Literal("{")(c)
		if !lb.OK() {
			return Fail[*node.BlockStmt](lb.Fail)
		}
		body := p.ParseStmtList(lb.Next, "}")
		if !body.OK() {
			return Fail[*node.BlockStmt](body.Fail)
		}
		rb := Literal("}")(body.Next)
		if !rb.OK() {
			return Fail[*node.BlockStmt](rb.Fail)
		}
		return Success(rb.Next, &node.BlockStmt{
			Stmts:  body.Value,
			LBrace: lb.Value.Pos,
			RBrace: rb.Value.Pos,
		})
	})(c)
}

// ParseBlockStmtNode is ParseBlockStmt as a statement production.
func (p *Parser) ParseBlockStmtNode(c source.Cursor) Result[node.Stmt] {
	r := p.ParseBlockStmt(c)
	if !r.OK() {
		return Fail[node.Stmt](r.Fail)
	}
	return Success[node.Stmt](r.Next, r.Value)
}

// ParseStmtList assembles a statement sequence. With end == "" the
// terminator is end of input; otherwise scanning stops with the cursor
// positioned at the end literal, which the caller consumes. Reaching end
// of input while a closing literal is required is an unterminated block.
func (p *Parser) ParseStmtList(c source.Cursor, end string) Result[node.Stmts] {
	defer untracep(tracep(p, "StmtList"))

	var stmts node.Stmts
	for {
		c = Ws0(c).Next
		if end != "" {
			if r := Literal(end)(c); r.OK() {
				// leave the terminator for the caller
				return Success(c, stmts)
			}
			if c.EOF() {
				return Fail[node.Stmts](unterminatedBlock(c.Pos()))
			}
		} else if c.EOF() {
			return Success(c, stmts)
		}

		r := p.ParseStmt(c)
		if !r.OK() {
			return Fail[node.Stmts](r.Fail)
		}
		stmts.Append(r.Value)
		c = r.Next
	}
}
