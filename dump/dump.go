// Package dump renders a parsed AST as an indented tree for inspection.
package dump

import (
	"github.com/xlab/treeprint"

	"github.com/shiro/map2-legacy/parser"
	"github.com/shiro/map2-legacy/parser/ast"
	"github.com/shiro/map2-legacy/parser/node"
)

// File renders a whole parsed file.
func File(f *parser.File) string {
	tree := treeprint.NewWithRoot(f.InputFile.Name)
	for _, s := range f.Stmts {
		build(tree, s)
	}
	return tree.String()
}

// Tree renders a single node.
func Tree(n ast.Node) string {
	tree := treeprint.New()
	build(tree, n)
	return tree.String()
}

func build(tree treeprint.Tree, n ast.Node) {
	switch n := n.(type) {
	case *node.BlockStmt:
		br := tree.AddBranch("block")
		for _, s := range n.Stmts {
			build(br, s)
		}
	case *node.IfStmt:
		br := tree.AddBranch("if")
		build(br.AddBranch("cond"), n.Cond)
		build(br.AddBranch("then"), n.Body)
		if n.Else != nil {
			build(br.AddBranch("else"), n.Else)
		}
	case *node.WhileStmt:
		br := tree.AddBranch("while")
		build(br.AddBranch("cond"), n.Cond)
		build(br.AddBranch("body"), n.Body)
	case *node.ForStmt:
		br := tree.AddBranch("for")
		if n.Init != nil {
			build(br.AddBranch("init"), n.Init)
		}
		if n.Cond != nil {
			build(br.AddBranch("cond"), n.Cond)
		}
		if n.Post != nil {
			build(br.AddBranch("post"), n.Post)
		}
		build(br.AddBranch("body"), n.Body)
	case *node.BranchStmt:
		tree.AddNode(n.Token.String())
	case *node.ReturnStmt:
		br := tree.AddBranch("return")
		if n.Result != nil {
			build(br, n.Result)
		}
	case *node.LetStmt:
		br := tree.AddBranch("let " + n.Ident.Name)
		if n.Value != nil {
			build(br, n.Value)
		}
	case *node.AssignStmt:
		br := tree.AddBranch(n.LHS.Name + " =")
		build(br, n.RHS)
	case *node.ExprStmt:
		build(tree, n.Expr)
	case *node.BinaryExpr:
		br := tree.AddBranch(n.Token.String())
		build(br, n.LHS)
		build(br, n.RHS)
	case *node.UnaryExpr:
		br := tree.AddBranch(n.Token.String())
		build(br, n.Expr)
	case *node.ParenExpr:
		build(tree, n.Expr)
	case *node.CallExpr:
		br := tree.AddBranch("call " + n.Func.String())
		for _, a := range n.Args {
			build(br, a)
		}
	default:
		tree.AddNode(n.String())
	}
}
