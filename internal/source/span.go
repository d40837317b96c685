package source

import "fmt"

// Span is a half-open byte range [Lo, Hi) into the session arena. Offsets
// are absolute arena positions, not positions within any single file; use
// Map.Locate to recover the owning file.
type Span struct {
	Lo int
	Hi int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Contains reports whether other lies fully within s, bounds inclusive.
func (s Span) Contains(other Span) bool {
	return s.Lo <= other.Lo && s.Hi >= other.Hi
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Lo, s.Hi)
}
