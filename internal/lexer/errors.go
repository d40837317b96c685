package lexer

import (
	"bytes"
	"fmt"

	"cpre/internal/source"
)

// previewLimit caps how much of the unconsumed remainder an error carries.
const previewLimit = 80

// UnrecognizedTokenError reports a position where every production
// rejected. The span runs from the failing position to the end of the
// region; Path names the owning file when the bytes came from one.
type UnrecognizedTokenError struct {
	Span    source.Span
	Path    string
	Preview string
}

func (e *UnrecognizedTokenError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unrecognized token at %s:%d %q", e.Path, e.Span.Lo, e.Preview)
	}
	return fmt.Sprintf("unrecognized token in input %q", e.Preview)
}

func unrecognized(m *source.Map, cur cursor) *UnrecognizedTokenError {
	span := cur.span(len(cur.rest))

	preview := cur.rest
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	path, _ := m.Locate(span)

	return &UnrecognizedTokenError{
		Span:    span,
		Path:    path,
		Preview: string(bytes.ToValidUTF8(preview, []byte("�"))),
	}
}
