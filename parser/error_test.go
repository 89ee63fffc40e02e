package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/shiro/map2-legacy/parser"
	"github.com/shiro/map2-legacy/parser/source"
)

func TestError(t *testing.T) {
	err := &Error{
		Pos: source.SourceFilePos{Offset: 10, Line: 1, Column: 10},
		Msg: "test",
	}
	require.Equal(t, "Parse Error: test\n\tat 1:10", err.Error())

	err = &Error{Msg: "test"}
	require.Equal(t, "Parse Error: test", err.Error())
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	require.NoError(t, list.Err())
	require.Equal(t, "no errors", list.Error())

	list.Add(source.SourceFilePos{Line: 3, Column: 1}, "second")
	list.Add(source.SourceFilePos{Line: 1, Column: 2}, "first")
	list.Sort()

	require.Equal(t, "first", list[0].Msg)
	require.Equal(t, "second", list[1].Msg)
	require.Error(t, list.Err())
	require.Contains(t, list.Error(), "(and 1 more errors)")
}

func TestFailureMessage(t *testing.T) {
	c := cursorFor(t, "continue")

	r := Context("block_statement",
		Context("continue_statement",
			Seq3(Keyword("continue"), Ws0, Literal(";"))))(c)
	require.NotNil(t, r.Fail)
	require.Equal(t,
		"block_statement: continue_statement: expected ';'",
		r.Fail.Message())
	require.Equal(t, "expected ';'", r.Fail.CauseMessage())
}

func TestFailureCauses(t *testing.T) {
	require.Equal(t, "unexpected end of input",
		failureOf(t, "let x = ").CauseMessage())
	require.Equal(t, "unterminated block",
		failureOf(t, "{ continue;").CauseMessage())
	require.Equal(t, "expected ';'",
		failureOf(t, "continue").CauseMessage())
}

func failureOf(t *testing.T, input string) *Failure {
	t.Helper()
	fileSet := source.NewFileSet()
	srcFile := fileSet.AddFileData("test", -1, []byte(input))
	p := NewParser(srcFile, nil)

	r := p.ParseStmtList(source.NewCursor(srcFile, 0), "")
	require.NotNil(t, r.Fail, "input %q", input)
	return r.Fail
}
