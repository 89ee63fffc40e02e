package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiro/map2-legacy/token"
)

func TestLookup(t *testing.T) {
	require.Equal(t, token.Continue, token.Lookup("continue"))
	require.Equal(t, token.Break, token.Lookup("break"))
	require.Equal(t, token.Let, token.Lookup("let"))
	require.Equal(t, token.True, token.Lookup("true"))
	require.Equal(t, token.Ident, token.Lookup("continued"))
	require.Equal(t, token.Ident, token.Lookup("foo"))
}

func TestPredicates(t *testing.T) {
	require.True(t, token.Continue.IsKeyword())
	require.False(t, token.Add.IsKeyword())
	require.True(t, token.Add.IsOperator())
	require.True(t, token.Add.IsBinaryOperator())
	require.False(t, token.Not.IsBinaryOperator())
	require.True(t, token.Int.IsLiteral())
	require.False(t, token.If.IsLiteral())
}

func TestPrecedence(t *testing.T) {
	require.Greater(t, token.Mul.Precedence(), token.Add.Precedence())
	require.Greater(t, token.Add.Precedence(), token.Less.Precedence())
	require.Greater(t, token.Less.Precedence(), token.LAnd.Precedence())
	require.Greater(t, token.LAnd.Precedence(), token.LOr.Precedence())
	require.Equal(t, token.LowestPrec, token.Assign.Precedence())
}

func TestString(t *testing.T) {
	require.Equal(t, "continue", token.Continue.String())
	require.Equal(t, ";", token.Semicolon.String())
	require.Equal(t, "==", token.Equal.String())
}
