// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package token

import "strconv"

var keywords map[string]Token

// Token represents a token.
type Token int

// List of tokens
const (
	Illegal Token = iota
	EOF
	LiteralBegin_
	Ident
	Int
	Decimal
	String
	LiteralEnd_
	OperatorBegin_
	Add       // +
	Sub       // -
	Mul       // *
	Quo       // /
	Rem       // %
	LAnd      // &&
	LOr       // ||
	Equal     // ==
	NotEqual  // !=
	Less      // <
	Greater   // >
	LessEq    // <=
	GreaterEq // >=
	Assign    // =
	Not       // !
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	OperatorEnd_
	KeywordBegin_
	Break
	Continue
	Else
	For
	If
	Let
	Return
	While
	True
	False
	KeywordEnd_
)

var tokens = [...]string{
	Illegal:   "ILLEGAL",
	EOF:       "EOF",
	Ident:     "IDENT",
	Int:       "INT",
	Decimal:   "DECIMAL",
	String:    "STRING",
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Quo:       "/",
	Rem:       "%",
	LAnd:      "&&",
	LOr:       "||",
	Equal:     "==",
	NotEqual:  "!=",
	Less:      "<",
	Greater:   ">",
	LessEq:    "<=",
	GreaterEq: ">=",
	Assign:    "=",
	Not:       "!",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Semicolon: ";",
	Break:     "break",
	Continue:  "continue",
	Else:      "else",
	For:       "for",
	If:        "if",
	Let:       "let",
	Return:    "return",
	While:     "while",
	True:      "true",
	False:     "false",
}

func (tok Token) String() string {
	s := ""

	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}

	return s
}

// LowestPrec represents lowest operator precedence.
const LowestPrec = 0

// Precedence returns the precedence for the operator token.
func (tok Token) Precedence() int {
	switch tok {
	case LOr:
		return 1
	case LAnd:
		return 2
	case Equal, NotEqual, Less, LessEq, Greater, GreaterEq:
		return 3
	case Add, Sub:
		return 4
	case Mul, Quo, Rem:
		return 5
	}
	return LowestPrec
}

// IsLiteral returns true if the token is a literal.
func (tok Token) IsLiteral() bool {
	return LiteralBegin_ < tok && tok < LiteralEnd_
}

// IsOperator returns true if the token is an operator.
func (tok Token) IsOperator() bool {
	return OperatorBegin_ < tok && tok < OperatorEnd_
}

// IsBinaryOperator reports whether token is a binary operator.
func (tok Token) IsBinaryOperator() bool {
	switch tok {
	case Add, Sub, Mul, Quo, Rem,
		LAnd, LOr, Equal, NotEqual,
		Less, LessEq, Greater, GreaterEq:
		return true
	}
	return false
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return KeywordBegin_ < tok && tok < KeywordEnd_
}

// Lookup returns corresponding keyword if ident is a keyword.
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return Ident
}

func init() {
	keywords = make(map[string]Token)
	for i := KeywordBegin_ + 1; i < KeywordEnd_; i++ {
		keywords[tokens[i]] = i
	}
}
