package conventional

import "unicode/utf8"

// Cursor is a single rune lookahead over a string. It works on byte offsets so
// that everything it hands back is an exact substring of the input.
type Cursor struct {
	input string
	pos   int
	mark  int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the byte offset of the next unconsumed rune.
func (c *Cursor) Pos() int {
	return c.pos
}

// Peek returns the next rune without consuming it. ok is false at end of input.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// Advance consumes the rune returned by the previous Peek.
func (c *Cursor) Advance() {
	if c.pos >= len(c.input) {
		return
	}
	_, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
}

// TakeWhile consumes the longest run of runes matching pred and returns it.
// The first rune that does not match is left unconsumed.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.input) {
		r, size := utf8.DecodeRuneInString(c.input[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += size
	}
	return c.input[start:c.pos]
}

// Rest consumes and returns everything left in the input.
func (c *Cursor) Rest() string {
	rest := c.input[c.pos:]
	c.pos = len(c.input)
	return rest
}

// Checkpoint marks the current position for a later Rewind. Only the most
// recent checkpoint is kept.
func (c *Cursor) Checkpoint() {
	c.mark = c.pos
}

// Rewind returns to the last checkpoint, or to the start of the input if
// Checkpoint was never called.
func (c *Cursor) Rewind() {
	c.pos = c.mark
}
