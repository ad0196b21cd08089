// Path reconstruction.
//
// A Cursor replays a tree's token sequence left to right, maintaining the
// stack of currently open components. Every name token pushes and yields
// one item; every ascend token pops. The cursor follows the bufio.Scanner
// shape: Scan advances, Path reads, Err reports what stopped the scan.
package pathpack

// Cursor is a single-pass iterator over a Tree's items. Each cursor owns a
// private stack and read position; it never mutates the tree, so any number
// of cursors may run concurrently over the same tree. A cursor is not safe
// for use by multiple goroutines.
type Cursor struct {
	tokens []Token
	stack  []string
	pos    int
	err    error
}

// Scan advances to the next item. It returns false when the token sequence
// is exhausted or the buffer is corrupt; Err distinguishes the two.
func (c *Cursor) Scan() bool {
	if c.err != nil {
		return false
	}
	for c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		c.pos++
		if tok.IsAscend() {
			if len(c.stack) == 0 {
				// More ascends than names in some prefix of the buffer. A
				// conforming Builder can never emit this; it signals a
				// defect in whatever produced the tokens.
				c.err = ErrCorruptBuffer
				return false
			}
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		c.stack = append(c.stack, tok.Name)
		return true
	}
	// Trailing open levels are fine: closing them would add no information.
	return false
}

// Path returns the full path of the current item, root-first, as a fresh
// slice owned by the caller. It is valid only after a Scan that returned
// true.
func (c *Cursor) Path() []string {
	out := make([]string, len(c.stack))
	copy(out, c.stack)
	return out
}

// Depth returns the depth of the current item: len(Path()) without the
// allocation.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// Err returns ErrCorruptBuffer if the scan stopped on an ascend past the
// root, and nil after normal exhaustion.
func (c *Cursor) Err() error {
	return c.err
}
