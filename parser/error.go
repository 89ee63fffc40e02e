package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shiro/map2-legacy/parser/source"
)

// FailCause classifies the terminal cause of a Failure.
type FailCause int

const (
	// ExpectedLiteral means a required token did not match.
	ExpectedLiteral FailCause = iota
	// UnexpectedEOF means input ended where a construct was required.
	UnexpectedEOF
	// UnterminatedBlock means input ended inside a block before '}'.
	UnterminatedBlock
	// AllAlternativesFailed wraps the deepest failure of an alternation.
	AllAlternativesFailed
)

// Frame is a labeled diagnostic annotation attached to a failure as it
// propagates outward.
type Frame struct {
	Label string
	Pos   source.Pos
}

// Failure is a parse failure value. It is threaded through return values,
// never through panics or shared state, so parses stay independently
// composable.
type Failure struct {
	Cause FailCause
	Want  string     // expected token, for ExpectedLiteral
	Pos   source.Pos // where the terminal cause hit
	// Frames holds context labels innermost first; the first entry is
	// the most specific production.
	Frames []Frame
	// Best is the deepest alternative failure for AllAlternativesFailed.
	Best *Failure
}

func expectedLiteral(want string, pos source.Pos) *Failure {
	return &Failure{Cause: ExpectedLiteral, Want: want, Pos: pos}
}

func unexpectedEOF(pos source.Pos) *Failure {
	return &Failure{Cause: UnexpectedEOF, Pos: pos}
}

func unterminatedBlock(pos source.Pos) *Failure {
	return &Failure{Cause: UnterminatedBlock, Pos: pos}
}

// WithFrame pushes a context frame and returns the failure.
func (f *Failure) WithFrame(label string, pos source.Pos) *Failure {
	f.Frames = append(f.Frames, Frame{Label: label, Pos: pos})
	return f
}

// Terminal follows alternation wrappers down to the deepest failure.
func (f *Failure) Terminal() *Failure {
	for f.Cause == AllAlternativesFailed && f.Best != nil {
		f = f.Best
	}
	return f
}

// AllFrames returns the full frame chain innermost first, flattening
// alternation wrappers.
func (f *Failure) AllFrames() []Frame {
	if f.Cause == AllAlternativesFailed && f.Best != nil {
		inner := f.Best.AllFrames()
		frames := make([]Frame, 0, len(inner)+len(f.Frames))
		frames = append(frames, inner...)
		return append(frames, f.Frames...)
	}
	return f.Frames
}

// InnermostLabel returns the label of the most specific frame, or "".
func (f *Failure) InnermostLabel() string {
	frames := f.AllFrames()
	if len(frames) == 0 {
		return ""
	}
	return frames[0].Label
}

// CauseMessage renders the terminal cause only.
func (f *Failure) CauseMessage() string {
	t := f.Terminal()
	switch t.Cause {
	case ExpectedLiteral:
		return "expected '" + t.Want + "'"
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnterminatedBlock:
		return "unterminated block"
	}
	return "no alternative matched"
}

// Message renders the breadcrumb trail, outermost label first:
//
//	block_statement: continue_statement: expected ';'
func (f *Failure) Message() string {
	frames := f.AllFrames()
	var b strings.Builder
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString(frames[i].Label)
		b.WriteString(": ")
	}
	b.WriteString(f.CauseMessage())
	return b.String()
}

// Error represents a parser error.
type Error struct {
	Pos source.SourceFilePos
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.FileName() != "" || e.Pos.IsValid() {
		return fmt.Sprintf("Parse Error: %s\n\tat %s", e.Msg, e.Pos)
	}
	return fmt.Sprintf("Parse Error: %s", e.Msg)
}

// ErrorList is a collection of parser errors.
type ErrorList []*Error

// Add adds a new parser error to the collection.
func (p *ErrorList) Add(pos source.SourceFilePos, msg string) {
	*p = append(*p, &Error{pos, msg})
}

// Len returns the number of elements in the collection.
func (p ErrorList) Len() int {
	return len(p)
}

func (p ErrorList) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p ErrorList) Less(i, j int) bool {
	e := &p[i].Pos
	f := &p[j].Pos

	if e.FileName() != f.FileName() {
		return e.FileName() < f.FileName()
	}
	if e.Line != f.Line {
		return e.Line < f.Line
	}
	if e.Column != f.Column {
		return e.Column < f.Column
	}
	return p[i].Msg < p[j].Msg
}

// Sort sorts the collection.
func (p ErrorList) Sort() {
	sort.Sort(p)
}

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Err returns an error.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}
