// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Copyright (c) 2019 Daniel Kang.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE.tengo file.

// Copyright 2009 The ToInterface Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.golang file.

package node

import (
	"strings"

	"github.com/shiro/map2-legacy/parser/ast"
	"github.com/shiro/map2-legacy/parser/source"
	"github.com/shiro/map2-legacy/token"
)

// Stmt represents a statement in the AST.
type Stmt interface {
	ast.Node
	StmtNode()
}

type Stmts []Stmt

func (s *Stmts) Append(n ...Stmt) {
	*s = append(*s, n...)
}

func (s Stmts) String() string {
	var list []string
	for _, st := range s {
		list = append(list, st.String())
	}
	return strings.Join(list, "; ")
}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *ExprStmt) Pos() source.Pos {
	return s.Expr.Pos()
}

// End returns the position of first character immediately after the node.
func (s *ExprStmt) End() source.Pos {
	return s.Expr.End()
}

func (s *ExprStmt) String() string {
	return s.Expr.String()
}

// AssignStmt represents an assignment statement.
type AssignStmt struct {
	LHS      *Ident
	RHS      Expr
	TokenPos source.Pos
}

func (s *AssignStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *AssignStmt) Pos() source.Pos {
	return s.LHS.Pos()
}

// End returns the position of first character immediately after the node.
func (s *AssignStmt) End() source.Pos {
	return s.RHS.End()
}

func (s *AssignStmt) String() string {
	return s.LHS.String() + " = " + s.RHS.String()
}

// LetStmt represents a variable declaration statement.
type LetStmt struct {
	LetPos source.Pos
	Ident  *Ident
	Value  Expr // or nil
}

func (s *LetStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *LetStmt) Pos() source.Pos {
	return s.LetPos
}

// End returns the position of first character immediately after the node.
func (s *LetStmt) End() source.Pos {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Ident.End()
}

func (s *LetStmt) String() string {
	if s.Value != nil {
		return "let " + s.Ident.String() + " = " + s.Value.String()
	}
	return "let " + s.Ident.String()
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	Token    token.Token
	TokenPos source.Pos
}

func (s *BranchStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *BranchStmt) Pos() source.Pos {
	return s.TokenPos
}

// End returns the position of first character immediately after the node.
func (s *BranchStmt) End() source.Pos {
	return source.Pos(int(s.TokenPos) + len(s.Token.String()))
}

func (s *BranchStmt) String() string {
	return s.Token.String()
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	ReturnPos source.Pos
	Result    Expr // or nil
}

func (s *ReturnStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *ReturnStmt) Pos() source.Pos {
	return s.ReturnPos
}

// End returns the position of first character immediately after the node.
func (s *ReturnStmt) End() source.Pos {
	if s.Result != nil {
		return s.Result.End()
	}
	return s.ReturnPos + 6 // len("return")
}

func (s *ReturnStmt) String() string {
	if s.Result != nil {
		return "return " + s.Result.String()
	}
	return "return"
}

// BlockStmt represents a statement block.
type BlockStmt struct {
	Stmts  Stmts
	LBrace source.Pos
	RBrace source.Pos
}

func (s *BlockStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *BlockStmt) Pos() source.Pos {
	return s.LBrace
}

// End returns the position of first character immediately after the node.
func (s *BlockStmt) End() source.Pos {
	return s.RBrace + 1
}

func (s *BlockStmt) String() string {
	return "{" + s.Stmts.String() + "}"
}

// IfStmt represents an if statement.
type IfStmt struct {
	IfPos source.Pos
	Cond  Expr
	Body  *BlockStmt
	Else  Stmt // else-if chains nest here; or nil
}

func (s *IfStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *IfStmt) Pos() source.Pos {
	return s.IfPos
}

// End returns the position of first character immediately after the node.
func (s *IfStmt) End() source.Pos {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Body.End()
}

func (s *IfStmt) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(s.Cond.String())
	out.WriteString(" ")
	out.WriteString(s.Body.String())
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(s.Else.String())
	}
	return out.String()
}

// WhileStmt represents a while loop statement.
type WhileStmt struct {
	WhilePos source.Pos
	Cond     Expr
	Body     *BlockStmt
}

func (s *WhileStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *WhileStmt) Pos() source.Pos {
	return s.WhilePos
}

// End returns the position of first character immediately after the node.
func (s *WhileStmt) End() source.Pos {
	return s.Body.End()
}

func (s *WhileStmt) String() string {
	return "while " + s.Cond.String() + " " + s.Body.String()
}

// ForStmt represents a for loop statement with a C-style header. Any of
// Init, Cond and Post may be nil.
type ForStmt struct {
	ForPos source.Pos
	Init   Stmt
	Cond   Expr
	Post   Stmt
	Body   *BlockStmt
}

func (s *ForStmt) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *ForStmt) Pos() source.Pos {
	return s.ForPos
}

// End returns the position of first character immediately after the node.
func (s *ForStmt) End() source.Pos {
	return s.Body.End()
}

func (s *ForStmt) String() string {
	var out strings.Builder
	out.WriteString("for (")
	if s.Init != nil {
		out.WriteString(s.Init.String())
	}
	out.WriteString("; ")
	if s.Cond != nil {
		out.WriteString(s.Cond.String())
	}
	out.WriteString("; ")
	if s.Post != nil {
		out.WriteString(s.Post.String())
	}
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}
