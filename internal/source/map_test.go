package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestFileMemoization(t *testing.T) {
	path := writeFile(t, "a.h", "abc")
	m := NewMap()

	first, err := m.IngestFile(path)
	require.NoError(t, err)
	assert.Equal(t, Span{Lo: 0, Hi: 3}, first)

	// Removing the file proves the second ingestion never touches the
	// filesystem.
	require.NoError(t, os.Remove(path))

	second, err := m.IngestFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, m.Len())
}

func TestIngestFileDisjointSpans(t *testing.T) {
	pathA := writeFile(t, "a.h", "aaaa")
	pathB := writeFile(t, "b.h", "bb")
	m := NewMap()

	spanA, err := m.IngestFile(pathA)
	require.NoError(t, err)
	spanB, err := m.IngestFile(pathB)
	require.NoError(t, err)

	assert.Equal(t, spanA.Hi, spanB.Lo, "files occupy consecutive ranges")
	assert.Equal(t, "aaaa", string(m.View(spanA)))
	assert.Equal(t, "bb", string(m.View(spanB)))

	path, ok := m.Locate(spanA)
	require.True(t, ok)
	assert.Equal(t, pathA, path)

	path, ok = m.Locate(spanB)
	require.True(t, ok)
	assert.Equal(t, pathB, path)
}

func TestIngestFileFailureLeavesNoState(t *testing.T) {
	m := NewMap()
	m.IngestBytes([]byte("xy"))

	_, err := m.IngestFile(filepath.Join(t.TempDir(), "missing.h"))
	require.Error(t, err)

	assert.Equal(t, 2, m.Len(), "failed read must not grow the arena")
	_, ok := m.Locate(Span{Lo: 0, Hi: 2})
	assert.False(t, ok, "failed read must not register a path")

	span := m.IngestBytes([]byte("z"))
	assert.Equal(t, Span{Lo: 2, Hi: 3}, span)
}

func TestIngestBytesAlwaysGrows(t *testing.T) {
	m := NewMap()
	first := m.IngestBytes([]byte("dup"))
	second := m.IngestBytes([]byte("dup"))

	assert.NotEqual(t, first, second)
	assert.Equal(t, first.Hi, second.Lo)
	assert.Equal(t, 6, m.Len())
}

func TestViewsStayValidAcrossGrowth(t *testing.T) {
	m := NewMap()
	span := m.IngestBytes([]byte("hello"))
	view := m.View(span)

	// Large enough to force the backing buffer to reallocate.
	m.IngestBytes(make([]byte, 1<<16))

	assert.Equal(t, "hello", string(view))
	assert.Equal(t, "hello", string(m.View(span)))
}

func TestLocate(t *testing.T) {
	path := writeFile(t, "a.h", "abcdef")
	m := NewMap()
	fileSpan, err := m.IngestFile(path)
	require.NoError(t, err)
	anon := m.IngestBytes([]byte("anon"))

	// Sub-spans of the file resolve to it, bounds inclusive.
	for _, span := range []Span{fileSpan, {Lo: 2, Hi: 4}, {Lo: 0, Hi: 1}} {
		got, ok := m.Locate(span)
		require.True(t, ok, "span %v", span)
		assert.Equal(t, path, got)
	}

	// Anonymous bytes and spans crossing the file boundary resolve to
	// nothing.
	for _, span := range []Span{anon, {Lo: 4, Hi: 8}} {
		_, ok := m.Locate(span)
		assert.False(t, ok, "span %v", span)
	}
}

func TestFind(t *testing.T) {
	path := writeFile(t, "a.h", "abc")
	m := NewMap()
	span, err := m.IngestFile(path)
	require.NoError(t, err)

	got, ok := m.Find(path)
	require.True(t, ok)
	assert.Equal(t, span, got)

	_, ok = m.Find("never/seen.h")
	assert.False(t, ok)
}
