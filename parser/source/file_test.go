package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiro/map2-legacy/parser/source"
)

func TestAddFileData(t *testing.T) {
	fileSet := source.NewFileSet()
	f := fileSet.AddFileData("test", -1, []byte("a\nbb\nccc"))

	require.Equal(t, 8, f.Size)
	require.Equal(t, []int{0, 2, 5}, f.Lines)
	require.Equal(t, 3, f.LineCount())

	require.Equal(t, source.Pos(f.Base), f.LineStart(1))
	require.Equal(t, source.Pos(f.Base+2), f.LineStart(2))
	require.Equal(t, source.Pos(f.Base+5), f.LineStart(3))
}

func TestFilePosition(t *testing.T) {
	fileSet := source.NewFileSet()
	f := fileSet.AddFileData("test", -1, []byte("a\nbb\nccc"))

	pos := f.Position(f.FileSetPos(3))
	require.Equal(t, 3, pos.Offset)
	require.Equal(t, 2, pos.Line)
	require.Equal(t, 2, pos.Column)
	require.Equal(t, "test:2:2", pos.String())

	pos = f.Position(f.FileSetPos(0))
	require.Equal(t, 1, pos.Line)
	require.Equal(t, 1, pos.Column)

	// EOF has a position too
	pos = f.Position(f.FileSetPos(8))
	require.Equal(t, 3, pos.Line)
	require.Equal(t, 4, pos.Column)
}

func TestFileSetPosition(t *testing.T) {
	fileSet := source.NewFileSet()
	a := fileSet.AddFileData("a", -1, []byte("xx"))
	b := fileSet.AddFileData("b", -1, []byte("y\ny"))

	require.Equal(t, "a", fileSet.Position(a.FileSetPos(0)).FileName())
	require.Equal(t, "b", fileSet.Position(b.FileSetPos(2)).FileName())
	require.Equal(t, 2, fileSet.Position(b.FileSetPos(2)).Line)
	require.False(t, fileSet.Position(source.NoPos).IsValid())
}

func TestCursor(t *testing.T) {
	fileSet := source.NewFileSet()
	f := fileSet.AddFileData("test", -1, []byte("continue;"))

	c := source.NewCursor(f, 0)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, "continue;", string(c.Rest()))
	require.Equal(t, byte('c'), c.Byte())
	require.False(t, c.EOF())
	require.Equal(t, source.Pos(f.Base), c.Pos())

	// advancing produces a new cursor, the old one is untouched
	d := c.Advance(8)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, ";", string(d.Rest()))
	require.Equal(t, byte(';'), d.Byte())

	e := d.Advance(1)
	require.True(t, e.EOF())
	require.Equal(t, byte(0), e.Byte())
	require.Equal(t, "", string(e.Rest()))
}
