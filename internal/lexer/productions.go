package lexer

import "cpre/token"

// header produces a header-name (C17 6.4.7), trying the <...> form first
// and the "..." form second.
func header(in cursor) (cursor, token.Token, bool) {
	if out, tok, ok := headerName(in, '<', '>'); ok {
		return out, tok, true
	}
	return headerName(in, '"', '"')
}

// headerName matches one delimited header-name form. A new-line,
// apostrophe, backslash or double quote in the sequence, or a // or /*
// before the closing delimiter, leaves the construct with undefined
// behavior per 6.4.7p3, so the whole production declines rather than
// guess. The close check runs first, which is what lets the quoted form
// use " as its own delimiter.
func headerName(in cursor, open, close byte) (cursor, token.Token, bool) {
	if len(in.rest) == 0 || in.rest[0] != open {
		return in, token.Token{}, false
	}
	body := in.rest[1:]
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch {
		case b == close:
			n := i + 2 // open delimiter, i body bytes, close delimiter
			return in.advance(n), token.Token{Kind: token.Header, Span: in.span(n)}, true
		case b == '\n' || b == '\'' || b == '\\' || b == '"':
			return in, token.Token{}, false
		case b == '/' && i+1 < len(body) && (body[i+1] == '/' || body[i+1] == '*'):
			return in, token.Token{}, false
		}
	}
	return in, token.Token{}, false
}

// ident produces an identifier (C17 6.4.2): an identifier-nondigit
// followed by any run of identifier-nondigits and digits.
func ident(in cursor) (cursor, token.Token, bool) {
	if len(in.rest) == 0 || !isIdentNondigit(in.rest[0]) {
		return in, token.Token{}, false
	}
	n := 1
	for n < len(in.rest) && (isIdentNondigit(in.rest[n]) || isDigit(in.rest[n])) {
		n++
	}
	return in.advance(n), token.Token{Kind: token.Ident, Span: in.span(n)}, true
}

// number produces a pp-number (C17 6.4.8): an optional leading period,
// then a digit, then any run of periods, digits and identifier-nondigits.
// An exponent marker immediately followed by a sign consumes the pair as
// a unit; the exponent check runs first because the markers are
// themselves identifier-nondigits. A sign with no marker in front of it
// never extends the match, so "1+" is the one-byte number "1" while
// "1e+" is taken whole.
func number(in cursor) (cursor, token.Token, bool) {
	n := 0
	if n < len(in.rest) && in.rest[n] == '.' {
		n++
	}
	if n >= len(in.rest) || !isDigit(in.rest[n]) {
		return in, token.Token{}, false
	}
	n++

scan:
	for n < len(in.rest) {
		switch b := in.rest[n]; {
		case isExponentMarker(b) && n+1 < len(in.rest) && isSign(in.rest[n+1]):
			n += 2
		case b == '.' || isDigit(b) || isIdentNondigit(b):
			n++
		default:
			break scan
		}
	}
	return in.advance(n), token.Token{Kind: token.Number, Span: in.span(n)}, true
}

// Byte classes. These are deliberately ASCII-only: preprocessing works on
// raw bytes, not runes.

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isIdentNondigit matches the identifier-nondigit class of C17 6.4.2.
func isIdentNondigit(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'p' || b == 'P'
}

func isSign(b byte) bool {
	return b == '+' || b == '-'
}
