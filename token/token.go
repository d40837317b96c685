// Package token SPDX-License-Identifier: Apache-2.0
//
// Preprocessing tokens as defined in section 6.4 of ISO/IEC 9899:2018
// (C17). Sequences of white-space and new-line characters get kinds of
// their own even though C17 does not treat them as preprocessing tokens:
// new-lines delimit preprocessing directives (6.10), and the white-space
// between a macro name and a `(` decides whether a #define is object-like
// or function-like (6.10.3).
package token

import "cpre/internal/source"

// Kind classifies a preprocessing token. The section of C17 describing
// each kind is noted next to it.
//
// regenerate kind_string.go with `go generate ./token`
//
//go:generate stringer -type=Kind
type Kind int

const (
	Header  Kind = iota // header-name (6.4.7)
	Ident               // identifier (6.4.2)
	Number              // pp-number (6.4.8)
	Char                // character-constant (6.4.4.4)
	Str                 // string-literal (6.4.5)
	Punct               // punctuator (6.4.6)
	Any                 // any non-white-space byte not matching the above
	Space               // a run of white-space, possibly with comments
	Newline             // a single new-line character
)

// Token is one classified region of source. It carries no text of its
// own; the span indexes the session's source map.
type Token struct {
	Kind Kind
	Span source.Span
}
