package cpre

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpre/internal/lexer"
	"cpre/internal/source"
	"cpre/token"
)

func TestPreprocess(t *testing.T) {
	assert.NoError(t, Preprocess([]byte("include<stdio.h>42")))

	// White-space has a declared kind but no production yet, so it still
	// fails the pass.
	err := Preprocess([]byte("foo bar"))
	var unrec *lexer.UnrecognizedTokenError
	require.ErrorAs(t, err, &unrec)
}

func TestSessionTokenizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.c")
	require.NoError(t, os.WriteFile(path, []byte("include<stdio.h>2e+5"), 0o644))

	s := NewSession()
	buffer, err := s.TokenizeFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, buffer.Len())

	kinds := []token.Kind{token.Ident, token.Header, token.Number}
	lexemes := []string{"include", "<stdio.h>", "2e+5"}
	for i := range kinds {
		tk := buffer.At(i)
		assert.Equal(t, kinds[i], tk.Kind)
		assert.Equal(t, lexemes[i], string(s.Sources().View(tk.Span)))
	}
}

func TestSessionTokenizeFileReadFailure(t *testing.T) {
	s := NewSession()
	buffer, err := s.TokenizeFile(filepath.Join(t.TempDir(), "missing.c"))
	assert.Nil(t, buffer)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSessionSharesOneArena(t *testing.T) {
	s := NewSession()

	first, err := s.TokenizeBytes([]byte("abc"))
	require.NoError(t, err)
	second, err := s.TokenizeBytes([]byte("xyz"))
	require.NoError(t, err)

	assert.Equal(t, source.Span{Lo: 0, Hi: 3}, first.At(0).Span)
	assert.Equal(t, source.Span{Lo: 3, Hi: 6}, second.At(0).Span)
}

func TestSessionFailureAttribution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.c")
	require.NoError(t, os.WriteFile(path, []byte("foo?bar"), 0o644))

	s := NewSession()
	_, err := s.TokenizeFile(path)

	var unrec *lexer.UnrecognizedTokenError
	require.ErrorAs(t, err, &unrec)
	assert.Equal(t, path, unrec.Path)
	assert.Equal(t, "?bar", unrec.Preview)
}
