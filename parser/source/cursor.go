package source

// Cursor is an immutable view over the remaining data of a File. It is
// threaded by value through parsing functions; advancing produces a new
// Cursor and never touches the previous one.
type Cursor struct {
	file *File
	off  int
}

// NewCursor returns a cursor positioned at offset off of f.
func NewCursor(f *File, off int) Cursor {
	if off < 0 || off > f.Size {
		panic("illegal cursor offset")
	}
	return Cursor{file: f, off: off}
}

// File returns the file the cursor reads from.
func (c Cursor) File() *File {
	return c.file
}

// Offset returns the cursor's file offset.
func (c Cursor) Offset() int {
	return c.off
}

// Pos returns the cursor's position in the file set.
func (c Cursor) Pos() Pos {
	return c.file.FileSetPos(c.off)
}

// Rest returns the remaining data.
func (c Cursor) Rest() []byte {
	return c.file.Data[c.off:]
}

// EOF reports whether the cursor is at end of input.
func (c Cursor) EOF() bool {
	return c.off >= c.file.Size
}

// Advance returns a cursor moved n bytes forward.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || c.off+n > c.file.Size {
		panic("illegal cursor advance")
	}
	return Cursor{file: c.file, off: c.off + n}
}

// Byte returns the byte under the cursor, or 0 at end of input.
func (c Cursor) Byte() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Data[c.off]
}
