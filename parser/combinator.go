package parser

import (
	"bytes"

	"github.com/shiro/map2-legacy/parser/source"
	"github.com/shiro/map2-legacy/runehelper"
)

// Result is the outcome of applying a ParseFunc to a cursor: either an
// advanced cursor plus a value, or a Failure. There is no third state.
type Result[T any] struct {
	Next  source.Cursor
	Value T
	Fail  *Failure
}

// OK reports whether the parse succeeded.
func (r Result[T]) OK() bool {
	return r.Fail == nil
}

// ParseFunc is a pure parsing function. It never mutates shared state; on
// failure the input cursor is untouched so an enclosing alternation can
// retry cleanly.
type ParseFunc[T any] func(source.Cursor) Result[T]

// Success returns a successful result.
func Success[T any](next source.Cursor, v T) Result[T] {
	return Result[T]{Next: next, Value: v}
}

// Fail returns a failed result carrying f.
func Fail[T any](f *Failure) Result[T] {
	return Result[T]{Fail: f}
}

// Lexeme is the value produced by token level combinators.
type Lexeme struct {
	Lit string
	Pos source.Pos
}

// End returns the position of first character immediately after the lexeme.
func (l Lexeme) End() source.Pos {
	return source.Pos(int(l.Pos) + len(l.Lit))
}

// Literal matches the exact text lit at the cursor.
func Literal(lit string) ParseFunc[Lexeme] {
	b := []byte(lit)
	return func(c source.Cursor) Result[Lexeme] {
		if !bytes.HasPrefix(c.Rest(), b) {
			return Fail[Lexeme](expectedLiteral(lit, c.Pos()))
		}
		return Success(c.Advance(len(b)), Lexeme{Lit: lit, Pos: c.Pos()})
	}
}

// Keyword matches lit like Literal but additionally requires a word
// boundary: the byte after the match must not continue an identifier.
// This keeps "continued" from matching the keyword "continue".
func Keyword(lit string) ParseFunc[Lexeme] {
	p := Literal(lit)
	return func(c source.Cursor) Result[Lexeme] {
		r := p(c)
		if r.OK() && !r.Next.EOF() && runehelper.IsIdentifierByte(r.Next.Byte()) {
			return Fail[Lexeme](expectedLiteral(lit, c.Pos()))
		}
		return r
	}
}

// Ws0 consumes zero or more whitespace characters. It never fails.
func Ws0(c source.Cursor) Result[Lexeme] {
	rest := c.Rest()
	n := 0
	for n < len(rest) && runehelper.IsSpaceByte(rest[n]) {
		n++
	}
	return Success(c.Advance(n), Lexeme{Lit: string(rest[:n]), Pos: c.Pos()})
}

type Pair[A, B any] struct {
	A A
	B B
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Quint[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Seq2 applies pa then pb, threading the cursor through each step, and
// short-circuits on the first failure.
func Seq2[A, B any](pa ParseFunc[A], pb ParseFunc[B]) ParseFunc[Pair[A, B]] {
	return func(c source.Cursor) Result[Pair[A, B]] {
		ra := pa(c)
		if !ra.OK() {
			return Fail[Pair[A, B]](ra.Fail)
		}
		rb := pb(ra.Next)
		if !rb.OK() {
			return Fail[Pair[A, B]](rb.Fail)
		}
		return Success(rb.Next, Pair[A, B]{ra.Value, rb.Value})
	}
}

// Seq3 is Seq2 for three parsers.
func Seq3[A, B, C any](pa ParseFunc[A], pb ParseFunc[B], pc ParseFunc[C]) ParseFunc[Triple[A, B, C]] {
	return func(c source.Cursor) Result[Triple[A, B, C]] {
		r := Seq2(Seq2(pa, pb), pc)(c)
		if !r.OK() {
			return Fail[Triple[A, B, C]](r.Fail)
		}
		return Success(r.Next, Triple[A, B, C]{r.Value.A.A, r.Value.A.B, r.Value.B})
	}
}

// Seq4 is Seq2 for four parsers.
func Seq4[A, B, C, D any](pa ParseFunc[A], pb ParseFunc[B], pc ParseFunc[C], pd ParseFunc[D]) ParseFunc[Quad[A, B, C, D]] {
	return func(c source.Cursor) Result[Quad[A, B, C, D]] {
		r := Seq2(Seq3(pa, pb, pc), pd)(c)
		if !r.OK() {
			return Fail[Quad[A, B, C, D]](r.Fail)
		}
		return Success(r.Next, Quad[A, B, C, D]{r.Value.A.A, r.Value.A.B, r.Value.A.C, r.Value.B})
	}
}

// Seq5 is Seq2 for five parsers.
func Seq5[A, B, C, D, E any](pa ParseFunc[A], pb ParseFunc[B], pc ParseFunc[C], pd ParseFunc[D], pe ParseFunc[E]) ParseFunc[Quint[A, B, C, D, E]] {
	return func(c source.Cursor) Result[Quint[A, B, C, D, E]] {
		r := Seq2(Seq4(pa, pb, pc, pd), pe)(c)
		if !r.OK() {
			return Fail[Quint[A, B, C, D, E]](r.Fail)
		}
		return Success(r.Next, Quint[A, B, C, D, E]{r.Value.A.A, r.Value.A.B, r.Value.A.C, r.Value.A.D, r.Value.B})
	}
}

// Alt tries the parsers in the given order on the same starting cursor and
// returns the first success. If all fail, the failure that consumed the
// most input wins the tie-break and is wrapped as AllAlternativesFailed.
func Alt[T any](ps ...ParseFunc[T]) ParseFunc[T] {
	return func(c source.Cursor) Result[T] {
		var best *Failure
		for _, p := range ps {
			r := p(c)
			if r.OK() {
				return r
			}
			if best == nil || r.Fail.Pos > best.Pos {
				best = r.Fail
			}
		}
		return Fail[T](&Failure{
			Cause: AllAlternativesFailed,
			Pos:   best.Pos,
			Best:  best,
		})
	}
}

// Opt applies p and never fails; the result is nil when p fails and the
// cursor is left where it was.
func Opt[T any](p ParseFunc[T]) ParseFunc[*T] {
	return func(c source.Cursor) Result[*T] {
		r := p(c)
		if !r.OK() {
			return Success[*T](c, nil)
		}
		return Success(r.Next, &r.Value)
	}
}

// Many0 applies p until it fails, discarding the failed attempt. The
// resulting cursor is the last successful one. It never fails.
func Many0[T any](p ParseFunc[T]) ParseFunc[[]T] {
	return func(c source.Cursor) Result[[]T] {
		var vs []T
		for {
			r := p(c)
			if !r.OK() {
				return Success(c, vs)
			}
			if r.Next.Offset() == c.Offset() {
				// zero-width match, stop to guarantee progress
				return Success(c, vs)
			}
			vs = append(vs, r.Value)
			c = r.Next
		}
	}
}

// Map converts the value of a successful parse.
func Map[T, U any](p ParseFunc[T], f func(T) U) ParseFunc[U] {
	return func(c source.Cursor) Result[U] {
		r := p(c)
		if !r.OK() {
			return Fail[U](r.Fail)
		}
		return Success(r.Next, f(r.Value))
	}
}

// Context runs p; on failure it pushes (label, start position) onto the
// failure's frame stack. Successes pass through untouched.
func Context[T any](label string, p ParseFunc[T]) ParseFunc[T] {
	return func(c source.Cursor) Result[T] {
		r := p(c)
		if !r.OK() {
			r.Fail = r.Fail.WithFrame(label, c.Pos())
		}
		return r
	}
}
