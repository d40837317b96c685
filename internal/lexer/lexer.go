// Package lexer recognizes C17 preprocessing tokens (section 6.4) from
// regions of the session source map.
//
// Productions are pure functions over a cursor value: each one either
// consumes a prefix of the region and yields one classified token, or
// reports no match and leaves the cursor untouched. That all-or-nothing
// contract is what makes the ordered-choice backtracking in nextToken
// correct without any rollback bookkeeping.
package lexer

import (
	"fmt"

	"cpre/internal/source"
	"cpre/token"
)

// cursor points into the region being tokenized. It is a cheap value:
// copying one is how productions "try" input without committing to it.
type cursor struct {
	// rest is the remaining unscanned part of the region.
	rest []byte
	// offset is the absolute arena position of rest[0].
	offset int
}

// advance returns the cursor moved n bytes forward. An n past the end of
// the region is a bug in a production's own bookkeeping, never an input
// condition, so it panics.
func (c cursor) advance(n int) cursor {
	if n > len(c.rest) {
		panic(fmt.Sprintf("lexer: advance(%d) with only %d bytes left", n, len(c.rest)))
	}
	return cursor{rest: c.rest[n:], offset: c.offset + n}
}

// span returns the span starting at the cursor and covering n bytes.
func (c cursor) span(n int) source.Span {
	return source.Span{Lo: c.offset, Hi: c.offset + n}
}

func (c cursor) empty() bool {
	return len(c.rest) == 0
}

// nextToken tries each production in fixed priority order and commits to
// the first that matches. There is no cross-alternative longest-match
// arbitration between them.
func nextToken(in cursor) (cursor, token.Token, bool) {
	if out, tok, ok := header(in); ok {
		return out, tok, true
	}
	if out, tok, ok := ident(in); ok {
		return out, tok, true
	}
	if out, tok, ok := number(in); ok {
		return out, tok, true
	}
	return in, token.Token{}, false
}

// Tokenize scans the region covered by span and returns its tokens in
// source order. If some position matches no production the whole pass
// fails with an *UnrecognizedTokenError; no partial buffer is returned.
func Tokenize(m *source.Map, span source.Span) (*token.Buffer, error) {
	cur := cursor{rest: m.View(span), offset: span.Lo}

	var buf token.Buffer
	for !cur.empty() {
		out, tok, ok := nextToken(cur)
		if !ok {
			return nil, unrecognized(m, cur)
		}
		buf.Push(tok)
		cur = out
	}
	return &buf, nil
}
