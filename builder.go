// Tree construction.
//
// A Builder accumulates tokens through one of two equivalent surfaces: the
// streaming API (Enter/Leaf/Leave) for callers walking a tree themselves,
// and the whole-path API (Insert) for callers holding a depth-first list of
// full paths. Both maintain the same construction stack, so they can be
// mixed on a single builder. Finish freezes the accumulated tokens into an
// immutable Tree.
package pathpack

// Builder accumulates the token sequence for a Tree. A builder is mutated
// by a single producer and must not be shared across goroutines while open.
// The zero value is ready to use.
type Builder struct {
	tokens []Token
	stack  []string
	done   bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Enter opens a new level named name: the component is pushed onto the
// construction stack and recorded as an item. Returns ErrInvalidComponent
// if name is empty, contains the separator, or equals the ascend sentinel.
func (b *Builder) Enter(name string) error {
	if b.done {
		return ErrFinished
	}
	if err := checkComponent(name); err != nil {
		return err
	}
	b.tokens = append(b.tokens, Token{Name: name})
	b.stack = append(b.stack, name)
	return nil
}

// Leaf records an item with no children: Enter immediately followed by
// Leave.
func (b *Builder) Leaf(name string) error {
	if err := b.Enter(name); err != nil {
		return err
	}
	return b.Leave()
}

// Leave closes the most recently opened level. Returns ErrUnbalancedLeave
// when no level is open.
func (b *Builder) Leave() error {
	if b.done {
		return ErrFinished
	}
	if len(b.stack) == 0 {
		return ErrUnbalancedLeave
	}
	b.tokens = append(b.tokens, Ascend)
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Depth returns the number of currently open levels.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Insert records one item given its full path from the root, in depth-first
// order relative to previous insertions. The encoding is a delta against the
// construction stack: the shared prefix costs nothing, one ascend token is
// emitted per level the new path retreats, and one name token per component
// beyond the shared prefix.
//
// After a previous Insert the stack equals that item's full path, so
// consecutive Insert calls implement exactly the consecutive-item delta
// rule. Returns ErrNotDepthFirst when the path contributes no new component
// — a duplicate of the previous item, a strict ancestor of it (already
// visited in pre-order), or an empty path. Returns ErrInvalidComponent if
// any new component is malformed; the builder is left untouched on error.
func (b *Builder) Insert(path []string) error {
	if b.done {
		return ErrFinished
	}

	common := 0
	for common < len(b.stack) && common < len(path) && b.stack[common] == path[common] {
		common++
	}
	if common == len(path) {
		return ErrNotDepthFirst
	}

	// Validate every new component before emitting anything, so a failed
	// insert cannot leave the stack and token sequence half-updated.
	for _, name := range path[common:] {
		if err := checkComponent(name); err != nil {
			return err
		}
	}

	for len(b.stack) > common {
		b.tokens = append(b.tokens, Ascend)
		b.stack = b.stack[:len(b.stack)-1]
	}
	for _, name := range path[common:] {
		b.tokens = append(b.tokens, Token{Name: name})
		b.stack = append(b.stack, name)
	}
	return nil
}

// Finish consumes the builder and returns the completed immutable Tree.
// Open levels may remain; trailing ascends carry no information and are
// never emitted. The builder is unusable afterwards — further calls return
// ErrFinished.
func (b *Builder) Finish() *Tree {
	tokens := b.tokens
	b.tokens = nil
	b.stack = nil
	b.done = true
	return &Tree{tokens: tokens}
}
