package source

import (
	"os"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cpre.source")

// Map keeps track of every piece of source being preprocessed: files and
// in-memory buffers handed in by the caller, and later on any file pulled
// in while resolving #include directives. All of it lives in one
// append-only byte buffer addressed by absolute offsets, so a Span issued
// at any point stays valid for the life of the Map.
type Map struct {
	buffer []byte
	files  []fileSpan
	index  map[string]Span
}

// files doubles as the registry for Locate; it is kept in insertion order
// so reverse lookups are deterministic.
type fileSpan struct {
	path string
	span Span
}

func NewMap() *Map {
	return &Map{index: make(map[string]Span)}
}

// IngestFile reads a file, stores its contents in the arena and returns
// the Span covering them.
//
// Paths are memoized as given (no canonicalization): a path seen before
// yields the previously recorded Span without touching the filesystem. On
// a read failure the error is returned as-is and the Map is left exactly
// as it was, with no partial bytes and no registry entry.
func (m *Map) IngestFile(path string) (Span, error) {
	if span, ok := m.index[path]; ok {
		return span, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Span{}, err
	}
	span := m.IngestBytes(data)
	m.index[path] = span
	m.files = append(m.files, fileSpan{path: path, span: span})
	log.Debugf("ingested %s as %v", path, span)
	return span, nil
}

// IngestBytes stores a sequence of bytes in the arena and returns the Span
// covering it. The Span is not associated with any file path, and repeated
// calls with identical bytes are not deduplicated: the arena always grows.
func (m *Map) IngestBytes(b []byte) Span {
	lo := len(m.buffer)
	m.buffer = append(m.buffer, b...)
	return Span{Lo: lo, Hi: len(m.buffer)}
}

// View returns a read-only view of the bytes the span covers. The arena
// only ever grows at its tail, so the view stays correct even if a later
// ingestion reallocates the backing buffer. Callers must not write through
// it; the capacity cap keeps appends from reaching arena memory.
func (m *Map) View(span Span) []byte {
	return m.buffer[span.Lo:span.Hi:span.Hi]
}

// Len returns the total number of bytes ingested so far.
func (m *Map) Len() int {
	return len(m.buffer)
}

// Find returns the span recorded for an already ingested file path.
func (m *Map) Find(path string) (Span, bool) {
	span, ok := m.index[path]
	return span, ok
}

// Locate finds the file a span belongs to: the first ingested file whose
// recorded span contains the target on both bounds. Spans denoting
// anonymous byte buffers have no owning file, so ok is false for them.
// The scan is linear over the registered files, which is fine for its
// diagnostics-only callers.
func (m *Map) Locate(span Span) (path string, ok bool) {
	for _, f := range m.files {
		if f.span.Contains(span) {
			return f.path, true
		}
	}
	return "", false
}
