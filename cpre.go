// Package cpre is a preprocessing front end for the C programming
// language, written against ISO/IEC 9899:2018 (C17). The most recent
// freely available draft of that document can be found at
// https://web.archive.org/web/20181230041359if_/http://www.open-std.org/jtc1/sc22/wg14/www/abq/c17_updated_proposed_fdis.pdf
//
// This layer turns raw bytes into preprocessing tokens while remembering
// where every byte came from. Directive handling, macro expansion and
// #include resolution are built on top of it and are not part of this
// package.
package cpre

import (
	"cpre/internal/lexer"
	"cpre/internal/source"
	"cpre/token"
)

// Session holds the state of one preprocessing run: a single source map
// that every file and buffer handed to the session is ingested into.
// Sessions are independent of each other and are not safe for concurrent
// use; create one, drive it, drop it.
type Session struct {
	sources *source.Map
}

func NewSession() *Session {
	return &Session{sources: source.NewMap()}
}

// TokenizeFile reads a file and tokenizes it. Reading the same path again
// within the session reuses the bytes already ingested. The error is
// either the propagated read failure or a *lexer.UnrecognizedTokenError.
func (s *Session) TokenizeFile(path string) (*token.Buffer, error) {
	span, err := s.sources.IngestFile(path)
	if err != nil {
		return nil, err
	}
	return lexer.Tokenize(s.sources, span)
}

// TokenizeBytes ingests a sequence of bytes, not associated with any file
// path, and tokenizes it. The only possible error is a
// *lexer.UnrecognizedTokenError.
func (s *Session) TokenizeBytes(b []byte) (*token.Buffer, error) {
	span := s.sources.IngestBytes(b)
	return lexer.Tokenize(s.sources, span)
}

// Sources exposes the session's source map, which diagnostics renderers
// need to turn token spans back into file, line and text.
func (s *Session) Sources() *source.Map {
	return s.sources
}

// Preprocess runs source through a fresh session and discards the tokens,
// reporting only whether they could all be recognized.
func Preprocess(src []byte) error {
	_, err := NewSession().TokenizeBytes(src)
	return err
}
