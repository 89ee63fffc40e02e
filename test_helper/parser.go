package test_helper

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/shiro/map2-legacy/parser"
	"github.com/shiro/map2-legacy/parser/node"
	"github.com/shiro/map2-legacy/parser/source"
)

// Pfn resolves a (line, column) pair to a file set position.
type Pfn func(line, column int) source.Pos

// ExpectParse parses input and compares the statements against the ones
// built by fn.
func ExpectParse(t *testing.T, input string, fn func(p Pfn) node.Stmts) {
	t.Helper()

	fileSet := source.NewFileSet()
	srcFile := fileSet.AddFileData("test", -1, []byte(input))

	p := parser.NewParser(srcFile, nil)
	actual, err := p.ParseFile()
	require.NoError(t, err)

	expected := fn(func(line, column int) source.Pos {
		return source.Pos(int(srcFile.LineStart(line)) + column - 1)
	})
	require.Equal(t, len(expected), len(actual.Stmts),
		"statement count mismatch, parsed: %s", actual.String())

	for i := range expected {
		require.Equal(t, expected[i], actual.Stmts[i])
	}
}

// ExpectParseString parses input and compares the round-tripped String()
// form, printing a unified diff on mismatch.
func ExpectParseString(t *testing.T, input, expected string) {
	t.Helper()

	f, err := parser.Parse(input, "test", nil)
	require.NoError(t, err)

	actual := f.String()
	if actual == expected {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	require.Failf(t, "parse mismatch", "%s", diff)
}

// ExpectParseError parses input, requires a failure and returns the error
// for further assertions.
func ExpectParseError(t *testing.T, input string) error {
	t.Helper()

	_, err := parser.Parse(input, "test", nil)
	require.Error(t, err)
	return err
}
