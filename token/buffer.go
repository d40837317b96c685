// SPDX-License-Identifier: Apache-2.0
package token

// Buffer is an owned, growable sequence of tokens. Tokens are only ever
// appended, in source order; nothing removes or reorders them.
type Buffer struct {
	rest []Token
}

// Push appends a token to the end of the buffer.
func (b *Buffer) Push(tok Token) {
	b.rest = append(b.rest, tok)
}

// Len returns the number of tokens in the buffer.
func (b *Buffer) Len() int {
	return len(b.rest)
}

// At returns the i-th token.
func (b *Buffer) At(i int) Token {
	return b.rest[i]
}

// Tokens returns a read-only view of the whole buffer. The view borrows
// the buffer's backing storage, so taking it costs nothing.
func (b *Buffer) Tokens() Slice {
	return Slice(b.rest)
}

// Slice is a read-only view over a contiguous run of tokens in a Buffer.
// It shares the buffer's element layout; sub-views are ordinary slicing.
type Slice []Token

// ToBuffer copies the viewed tokens into a new, independent Buffer. Use it
// when a view has to outlive the buffer it borrows from.
func (s Slice) ToBuffer() *Buffer {
	rest := make([]Token, len(s))
	copy(rest, s)
	return &Buffer{rest: rest}
}
