package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/shiro/map2-legacy/parser"
	"github.com/shiro/map2-legacy/parser/source"
)

func cursorFor(t *testing.T, input string) source.Cursor {
	t.Helper()
	fileSet := source.NewFileSet()
	srcFile := fileSet.AddFileData("test", -1, []byte(input))
	return source.NewCursor(srcFile, 0)
}

func TestLiteral(t *testing.T) {
	c := cursorFor(t, "continue;")

	r := Literal("continue")(c)
	require.Nil(t, r.Fail)
	require.Equal(t, "continue", r.Value.Lit)
	require.Equal(t, c.Pos(), r.Value.Pos)
	require.Equal(t, 8, r.Next.Offset())

	r = Literal("break")(c)
	require.NotNil(t, r.Fail)
	require.Equal(t, ExpectedLiteral, r.Fail.Cause)
	require.Equal(t, "break", r.Fail.Want)
	require.Equal(t, c.Pos(), r.Fail.Pos)

	// the input cursor is untouched by a failure
	require.Equal(t, 0, c.Offset())
}

func TestKeywordWordBoundary(t *testing.T) {
	r := Keyword("continue")(cursorFor(t, "continue;"))
	require.Nil(t, r.Fail)

	r = Keyword("continue")(cursorFor(t, "continue"))
	require.Nil(t, r.Fail)

	// an identifier continuation byte after the literal must not match
	r = Keyword("continue")(cursorFor(t, "continued = 1;"))
	require.NotNil(t, r.Fail)
	require.Equal(t, ExpectedLiteral, r.Fail.Cause)

	r = Keyword("continue")(cursorFor(t, "continue_x"))
	require.NotNil(t, r.Fail)
}

func TestWs0(t *testing.T) {
	c := cursorFor(t, " \t\r\n x")
	r := Ws0(c)
	require.Nil(t, r.Fail)
	require.Equal(t, 5, r.Next.Offset())

	// zero width at a non-space and at end of input
	r = Ws0(r.Next)
	require.Nil(t, r.Fail)
	require.Equal(t, 5, r.Next.Offset())

	r = Ws0(cursorFor(t, ""))
	require.Nil(t, r.Fail)
}

func TestSeq(t *testing.T) {
	c := cursorFor(t, "continue ;")

	r := Seq3(Literal("continue"), Ws0, Literal(";"))(c)
	require.Nil(t, r.Fail)
	require.Equal(t, "continue", r.Value.A.Lit)
	require.Equal(t, ";", r.Value.C.Lit)
	require.Equal(t, 10, r.Next.Offset())

	// short-circuits on the first failing step
	bad := Seq3(Literal("continue"), Ws0, Literal("}"))(c)
	require.NotNil(t, bad.Fail)
	require.Equal(t, "}", bad.Fail.Want)
	require.Equal(t, 9, int(bad.Fail.Pos)-1)
}

func TestAltLongestMatch(t *testing.T) {
	c := cursorFor(t, "continue")

	r := Alt(
		Map(Literal("break"), func(l Lexeme) string { return l.Lit }),
		Map(Seq2(Literal("continue"), Literal(";")), func(p Pair[Lexeme, Lexeme]) string { return p.A.Lit }),
	)(c)
	require.NotNil(t, r.Fail)
	require.Equal(t, AllAlternativesFailed, r.Fail.Cause)

	// the alternative that consumed the most input wins the tie-break
	term := r.Fail.Terminal()
	require.Equal(t, ExpectedLiteral, term.Cause)
	require.Equal(t, ";", term.Want)
	require.Equal(t, 8, int(term.Pos)-1)
}

func TestAltFirstSuccessWins(t *testing.T) {
	c := cursorFor(t, "ab")

	r := Alt(Literal("a"), Literal("ab"))(c)
	require.Nil(t, r.Fail)
	require.Equal(t, "a", r.Value.Lit)
}

func TestOpt(t *testing.T) {
	c := cursorFor(t, ";")

	r := Opt(Literal(";"))(c)
	require.Nil(t, r.Fail)
	require.NotNil(t, r.Value)
	require.Equal(t, 1, r.Next.Offset())

	r = Opt(Literal("x"))(c)
	require.Nil(t, r.Fail)
	require.Nil(t, r.Value)
	require.Equal(t, 0, r.Next.Offset())
}

func TestMany0(t *testing.T) {
	c := cursorFor(t, "ababa")

	r := Many0(Seq2(Literal("a"), Literal("b")))(c)
	require.Nil(t, r.Fail)
	require.Len(t, r.Value, 2)
	// the trailing partial match is discarded
	require.Equal(t, 4, r.Next.Offset())

	r2 := Many0(Literal("x"))(c)
	require.Nil(t, r2.Fail)
	require.Len(t, r2.Value, 0)
	require.Equal(t, 0, r2.Next.Offset())
}

func TestContextFrames(t *testing.T) {
	c := cursorFor(t, "y")

	r := Context("outer", Context("inner", Literal("x")))(c)
	require.NotNil(t, r.Fail)

	frames := r.Fail.AllFrames()
	require.Len(t, frames, 2)
	require.Equal(t, "inner", frames[0].Label)
	require.Equal(t, "outer", frames[1].Label)
	require.Equal(t, "inner", r.Fail.InnermostLabel())
	require.Equal(t, "outer: inner: expected 'x'", r.Fail.Message())
}

func TestContextSuccessUntouched(t *testing.T) {
	c := cursorFor(t, "x")

	r := Context("outer", Literal("x"))(c)
	require.Nil(t, r.Fail)
	require.Equal(t, "x", r.Value.Lit)
	require.Equal(t, 1, r.Next.Offset())
}
