package digitseq

// Cursor is a finite, forward-only, non-restartable iterator over the
// digits of a Sequence, most-significant digit first. Because a Sequence
// is a plain uint64, a Cursor simply captures the encoded word and a
// position; it need not (and does not) hold a reference to anything that
// could outlive the sequence.
type Cursor struct {
	value uint64
	len   int
	pos   int
}

// Iterate returns a Cursor positioned before the first digit of s.
func (s Sequence) Iterate() Cursor {
	return Cursor{value: s.value(), len: s.Length(), pos: 0}
}

// Next returns the next digit and true, or (0, false) when the cursor is
// exhausted.
func (c *Cursor) Next() (int, bool) {
	if c.pos >= c.len {
		return 0, false
	}
	shift := c.len - 1 - c.pos
	d := int((c.value / pow10[shift]) % 10)
	c.pos++
	return d, true
}

// Remaining returns the number of digits left to iterate.
func (c *Cursor) Remaining() int {
	return c.len - c.pos
}

// Done reports whether the cursor has been exhausted.
func (c *Cursor) Done() bool {
	return c.pos >= c.len
}
