// The immutable backing buffer.
//
// A Tree owns the flat token sequence produced by a Builder (or decoded by
// Load) and nothing else. It is a pure value: safe to share between any
// number of goroutines, each traversing through its own Cursor. The only
// access pattern is streaming every item's path in depth-first order — no
// indexing, no lookup by name.
package pathpack

import "iter"

// Tree is an immutable, compact encoding of a path hierarchy.
type Tree struct {
	tokens []Token
}

// Tokens returns a copy of the backing token sequence.
func (t *Tree) Tokens() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Len returns the total number of tokens in the backing buffer.
func (t *Tree) Len() int {
	return len(t.tokens)
}

// Count returns the number of items in the tree: one per name token.
func (t *Tree) Count() int {
	n := 0
	for _, tok := range t.tokens {
		if !tok.IsAscend() {
			n++
		}
	}
	return n
}

// Depth returns the maximum item depth in the tree, 0 for an empty tree.
func (t *Tree) Depth() int {
	depth, max := 0, 0
	for _, tok := range t.tokens {
		if tok.IsAscend() {
			depth--
		} else {
			depth++
			if depth > max {
				max = depth
			}
		}
	}
	return max
}

// Cursor returns a fresh single-pass iterator positioned before the first
// item. Cursors over one tree are fully independent.
func (t *Tree) Cursor() *Cursor {
	return &Cursor{tokens: t.tokens}
}

// Paths returns the tree's items as a range-over-func sequence of full
// paths, root-first, in depth-first order. Each yielded slice is a fresh
// copy owned by the consumer.
//
// The sequence ends early only if the backing buffer violates its depth
// invariant, which cannot happen for trees produced by a Builder or by
// Load; use Cursor directly to observe ErrCorruptBuffer.
func (t *Tree) Paths() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		c := t.Cursor()
		for c.Scan() {
			if !yield(c.Path()) {
				return
			}
		}
	}
}
