package parser

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shiro/map2-legacy/parser/node"
	"github.com/shiro/map2-legacy/parser/source"
	"github.com/shiro/map2-legacy/quote"
	"github.com/shiro/map2-legacy/runehelper"
	"github.com/shiro/map2-legacy/token"
)

// binary operators ordered so that multi-character operators are tried
// before their single-character prefixes.
var binaryOps = []struct {
	lit string
	tok token.Token
}{
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"<=", token.LessEq},
	{">=", token.GreaterEq},
	{"&&", token.LAnd},
	{"||", token.LOr},
	{"+", token.Add},
	{"-", token.Sub},
	{"*", token.Mul},
	{"/", token.Quo},
	{"%", token.Rem},
	{"<", token.Less},
	{">", token.Greater},
}

func binaryOp(c source.Cursor) (tok token.Token, r Result[Lexeme], ok bool) {
	for _, op := range binaryOps {
		if r = Literal(op.lit)(c); r.OK() {
			return op.tok, r, true
		}
	}
	return token.Illegal, r, false
}

// ParseExpr parses an expression. This is the single entry point the
// statement grammar consumes.
func (p *Parser) ParseExpr(c source.Cursor) Result[node.Expr] {
	defer untracep(tracep(p, "Expression"))

	return Context("expression", p.binaryExpr(token.LowestPrec+1))(c)
}

// binaryExpr climbs operator precedence the usual way: parse one unary
// operand, then greedily extend with operators of at least prec1.
func (p *Parser) binaryExpr(prec1 int) ParseFunc[node.Expr] {
	return func(c source.Cursor) Result[node.Expr] {
		r := p.ParseUnaryExpr(c)
		if !r.OK() {
			return r
		}

		x, cur := r.Value, r.Next
		for {
			after := Ws0(cur).Next
			tok, op, ok := binaryOp(after)
			if !ok || tok.Precedence() < prec1 {
				return Success(cur, x)
			}

			rhs := p.binaryExpr(tok.Precedence() + 1)(Ws0(op.Next).Next)
			if !rhs.OK() {
				return rhs
			}
			x = &node.BinaryExpr{
				LHS:      x,
				RHS:      rhs.Value,
				Token:    tok,
				TokenPos: op.Value.Pos,
			}
			cur = rhs.Next
		}
	}
}

// ParseUnaryExpr parses a prefix '!' or '-' chain, then a primary.
func (p *Parser) ParseUnaryExpr(c source.Cursor) Result[node.Expr] {
	defer untracep(tracep(p, "UnaryExpression"))

	for _, op := range []struct {
		lit string
		tok token.Token
	}{{"!", token.Not}, {"-", token.Sub}} {
		r := Literal(op.lit)(c)
		if !r.OK() {
			continue
		}
		expr := p.ParseUnaryExpr(Ws0(r.Next).Next)
		if !expr.OK() {
			return expr
		}
		return Success[node.Expr](expr.Next, &node.UnaryExpr{
			Expr:     expr.Value,
			Token:    op.tok,
			TokenPos: r.Value.Pos,
		})
	}
	return p.ParsePrimaryExpr(c)
}

// ParsePrimaryExpr parses an operand followed by any number of call
// argument lists.
func (p *Parser) ParsePrimaryExpr(c source.Cursor) Result[node.Expr] {
	defer untracep(tracep(p, "PrimaryExpression"))

	r := p.ParseOperand(c)
	if !r.OK() {
		return r
	}

	x, cur := r.Value, r.Next
	for {
		lp := Literal("(")(Ws0(cur).Next)
		if !lp.OK() {
			return Success(cur, x)
		}
		call := p.parseCallArgs(x, lp.Value.Pos, lp.Next)
		if !call.OK() {
			return call
		}
		x, cur = call.Value, call.Next
	}
}

func (p *Parser) parseCallArgs(fn node.Expr, lparen source.Pos, c source.Cursor) Result[node.Expr] {
	var args []node.Expr

	c = Ws0(c).Next
	if rp := Literal(")")(c); rp.OK() {
		return Success[node.Expr](rp.Next, &node.CallExpr{
			Func: fn, LParen: lparen, RParen: rp.Value.Pos,
		})
	}

	for {
		arg := p.ParseExpr(c)
		if !arg.OK() {
			return Fail[node.Expr](arg.Fail)
		}
		args = append(args, arg.Value)

		c = Ws0(arg.Next).Next
		if comma := Literal(",")(c); comma.OK() {
			c = Ws0(comma.Next).Next
			continue
		}
		rp := Literal(")")(c)
		if !rp.OK() {
			return Fail[node.Expr](rp.Fail)
		}
		return Success[node.Expr](rp.Next, &node.CallExpr{
			Func: fn, LParen: lparen, Args: args, RParen: rp.Value.Pos,
		})
	}
}

// ParseOperand parses a literal, identifier or parenthesized expression.
func (p *Parser) ParseOperand(c source.Cursor) Result[node.Expr] {
	defer untracep(tracep(p, "Operand"))

	if c.EOF() {
		return Fail[node.Expr](unexpectedEOF(c.Pos()))
	}

	switch b := c.Byte(); {
	case runehelper.IsDigitByte(b):
		return p.parseNumberLit(c)
	case b == '"':
		return p.parseStringLit(c)
	case runehelper.IsIdentifierStartByte(b):
		return p.parseIdentOrKeywordLit(c)
	case b == '(':
		return p.parseParenExpr(c)
	}
	return Fail[node.Expr](expectedLiteral("expression", c.Pos()))
}

func (p *Parser) parseNumberLit(c source.Cursor) Result[node.Expr] {
	rest := c.Rest()
	n := 0
	for n < len(rest) && runehelper.IsDigitByte(rest[n]) {
		n++
	}

	// fractional part makes it a decimal literal
	if n+1 < len(rest) && rest[n] == '.' && runehelper.IsDigitByte(rest[n+1]) {
		n++
		for n < len(rest) && runehelper.IsDigitByte(rest[n]) {
			n++
		}
		lit := string(rest[:n])
		value, err := decimal.NewFromString(lit)
		if err != nil {
			return Fail[node.Expr](expectedLiteral("number", c.Pos()))
		}
		return Success[node.Expr](c.Advance(n), &node.DecimalLit{
			Value: value, Literal: lit, ValuePos: c.Pos(),
		})
	}

	lit := string(rest[:n])
	value, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Fail[node.Expr](expectedLiteral("number", c.Pos()))
	}
	return Success[node.Expr](c.Advance(n), &node.IntLit{
		Value: value, Literal: lit, ValuePos: c.Pos(),
	})
}

func (p *Parser) parseStringLit(c source.Cursor) Result[node.Expr] {
	value, n, ok := quote.Unquote(c.Rest())
	if !ok {
		return Fail[node.Expr](expectedLiteral("string", c.Pos()))
	}
	return Success[node.Expr](c.Advance(n), &node.StringLit{
		Value:    value,
		Literal:  string(c.Rest()[:n]),
		ValuePos: c.Pos(),
	})
}

func (p *Parser) parseIdentOrKeywordLit(c source.Cursor) Result[node.Expr] {
	lex, ok := identLexeme(c)
	if !ok {
		return Fail[node.Expr](expectedLiteral("identifier", c.Pos()))
	}

	switch token.Lookup(lex.Lit) {
	case token.True:
		return Success[node.Expr](c.Advance(len(lex.Lit)), &node.BoolLit{
			Value: true, Literal: lex.Lit, ValuePos: lex.Pos,
		})
	case token.False:
		return Success[node.Expr](c.Advance(len(lex.Lit)), &node.BoolLit{
			Value: false, Literal: lex.Lit, ValuePos: lex.Pos,
		})
	case token.Ident:
		return Success[node.Expr](c.Advance(len(lex.Lit)), &node.Ident{
			Name: lex.Lit, NamePos: lex.Pos,
		})
	}
	// reserved word, not usable as an operand
	return Fail[node.Expr](expectedLiteral("expression", c.Pos()))
}

func (p *Parser) parseParenExpr(c source.Cursor) Result[node.Expr] {
	lp := Literal("(")(c)
	if !lp.OK() {
		return Fail[node.Expr](lp.Fail)
	}
	inner := p.ParseExpr(Ws0(lp.Next).Next)
	if !inner.OK() {
		return inner
	}
	rp := Literal(")")(Ws0(inner.Next).Next)
	if !rp.OK() {
		return Fail[node.Expr](rp.Fail)
	}
	return Success[node.Expr](rp.Next, &node.ParenExpr{
		Expr:   inner.Value,
		LParen: lp.Value.Pos,
		RParen: rp.Value.Pos,
	})
}

// ParseIdent parses an identifier; reserved words are rejected.
func (p *Parser) ParseIdent(c source.Cursor) Result[*node.Ident] {
	lex, ok := identLexeme(c)
	if !ok || token.Lookup(lex.Lit) != token.Ident {
		return Fail[*node.Ident](expectedLiteral("identifier", c.Pos()))
	}
	return Success(c.Advance(len(lex.Lit)), &node.Ident{
		Name: lex.Lit, NamePos: lex.Pos,
	})
}

func identLexeme(c source.Cursor) (Lexeme, bool) {
	rest := c.Rest()
	if len(rest) == 0 || !runehelper.IsIdentifierStartByte(rest[0]) {
		return Lexeme{}, false
	}
	n := 1
	for n < len(rest) && runehelper.IsIdentifierByte(rest[n]) {
		n++
	}
	return Lexeme{Lit: string(rest[:n]), Pos: c.Pos()}, true
}
