// A parser for the map2 script statement grammar, built from parsing
// combinators over an immutable cursor instead of a token scanner.

package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/shiro/map2-legacy/parser/node"
	"github.com/shiro/map2-legacy/parser/source"
)

// ParserOptions holds parser configuration.
type ParserOptions struct {
	// Trace receives a labeled call trace of the productions tried.
	Trace io.Writer
}

// Parser parses one source file into a statement AST. It holds no
// mutable parse state; the cursor is threaded through the grammar as a
// value, so a Parser may be reused and parses of separate files may run
// concurrently.
type Parser struct {
	InputFile *source.File
	Opts      ParserOptions
	indent    int
}

// NewParser creates a Parser.
func NewParser(srcFile *source.File, trace io.Writer) *Parser {
	return NewParserWithOptions(srcFile, &ParserOptions{Trace: trace})
}

// NewParserWithOptions creates a Parser with options.
func NewParserWithOptions(srcFile *source.File, opts *ParserOptions) *Parser {
	if opts == nil {
		opts = &ParserOptions{}
	}
	return &Parser{
		InputFile: srcFile,
		Opts:      *opts,
	}
}

// ParseFile parses the whole input as a statement sequence. The final
// cursor must reach end of input; anything less is a parse error.
func (p *Parser) ParseFile() (file *File, err error) {
	defer untracep(tracep(p, "File"))

	c := source.NewCursor(p.InputFile, 0)
	r := p.ParseStmtList(c, "")
	if !r.OK() {
		return nil, p.errorList(r.Fail)
	}

	return &File{
		InputFile: p.InputFile,
		Stmts:     r.Value,
	}, nil
}

// errorList converts a Failure into the user facing error value.
func (p *Parser) errorList(fail *Failure) error {
	var list ErrorList
	list.Add(p.InputFile.SafePosition(fail.Terminal().Pos), fail.Message())
	return list.Err()
}

// PrintTrace prints the indented trace message.
func (p *Parser) PrintTrace(a ...any) {
	if p.Opts.Trace == nil {
		return
	}

	const (
		dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . "
		n    = len(dots)
	)

	i := 2 * p.indent
	for i > n {
		fmt.Fprint(p.Opts.Trace, dots)
		i -= n
	}

	fmt.Fprint(p.Opts.Trace, dots[0:i])
	fmt.Fprintln(p.Opts.Trace, a...)
}

func tracep(p *Parser, msg string) *Parser {
	p.PrintTrace(msg, "(")
	p.indent++
	return p
}

func untracep(p *Parser) {
	p.indent--
	p.PrintTrace(")")
}

// File represents a parsed file unit.
type File struct {
	InputFile *source.File
	Stmts     node.Stmts
}

// Pos returns the position of first character belonging to the node.
func (n *File) Pos() source.Pos {
	return source.Pos(n.InputFile.Base)
}

// End returns the position of first character immediately after the node.
func (n *File) End() source.Pos {
	return source.Pos(n.InputFile.Base + n.InputFile.Size)
}

func (n *File) String() string {
	var stmts []string
	for _, e := range n.Stmts {
		stmts = append(stmts, e.String())
	}
	return strings.Join(stmts, "; ")
}
