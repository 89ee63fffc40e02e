package dump_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiro/map2-legacy/dump"
	"github.com/shiro/map2-legacy/parser"
)

func TestFile(t *testing.T) {
	f, err := parser.Parse("if a < 1 { continue; } else { f(x); }", "test", nil)
	require.NoError(t, err)

	out := dump.File(f)
	require.Contains(t, out, "test")
	require.Contains(t, out, "if")
	require.Contains(t, out, "cond")
	require.Contains(t, out, "then")
	require.Contains(t, out, "else")
	require.Contains(t, out, "continue")
	require.Contains(t, out, "call f")
}

func TestTree(t *testing.T) {
	f, err := parser.Parse("let x = 1 + 2;", "test", nil)
	require.NoError(t, err)
	require.Len(t, f.Stmts, 1)

	out := dump.Tree(f.Stmts[0])
	require.Contains(t, out, "let x")
	require.Contains(t, out, "+")
	require.Contains(t, out, "1")
	require.Contains(t, out, "2")
}
