// Boundary condition and edge case tests.
//
// These tests exercise the shapes normal usage rarely produces: chains
// hundreds of levels deep, thousands of siblings at one level, components
// at the edge of the validation rules, and unusual but legal byte content
// in names. Each targets a specific "what if" that, if mishandled, would
// surface as a wrong path, a stack underflow, or a rejected valid name.
package pathpack

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// TestDeepChain builds a single 500-level path. The construction stack,
// the cursor stack, and the archive depth counter all track the same
// depth; a hidden fixed-size assumption in any of them would break here.
func TestDeepChain(t *testing.T) {
	const depth = 500

	b := NewBuilder()
	path := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		name := fmt.Sprintf("level%d", i)
		path = append(path, name)
		if err := b.Enter(name); err != nil {
			t.Fatalf("Enter at depth %d: %v", i, err)
		}
	}
	tree := b.Finish()

	if got := tree.Depth(); got != depth {
		t.Fatalf("Depth = %d, want %d", got, depth)
	}

	got := drain(t, tree.Cursor())
	if len(got) != depth {
		t.Fatalf("iterated %d items, want %d", len(got), depth)
	}
	if !equalStrings(got[depth-1], path) {
		t.Errorf("deepest path = %v..., want %v...", got[depth-1][:3], path[:3])
	}

	var buf bytes.Buffer
	if err := Save(tree, &buf, SaveOptions{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Depth() != depth {
		t.Errorf("loaded Depth = %d, want %d", loaded.Depth(), depth)
	}
}

// TestWideSiblings: 2000 leaves under one root. Every consecutive pair
// shares the root prefix, so the encoding must spend exactly one ascend
// per transition — 2001 names and 2000 ascends, not a quadratic blowup of
// repeated prefixes.
func TestWideSiblings(t *testing.T) {
	const n = 2000

	b := NewBuilder()
	b.Enter("root")
	for i := 0; i < n; i++ {
		if err := b.Leaf(fmt.Sprintf("child%04d", i)); err != nil {
			t.Fatalf("Leaf %d: %v", i, err)
		}
	}
	tree := b.Finish()

	if got := tree.Count(); got != n+1 {
		t.Errorf("Count = %d, want %d", got, n+1)
	}
	if got := tree.Len() - tree.Count(); got != n {
		t.Errorf("ascend tokens = %d, want %d", got, n)
	}

	got := drain(t, tree.Cursor())
	if !equalStrings(got[n], []string{"root", fmt.Sprintf("child%04d", n-1)}) {
		t.Errorf("last path = %v", got[n])
	}
}

// TestComponentEdgeValidity: "." is a legal name (only ".." is reserved),
// as are names containing backslashes, spaces, and a lone embedded dot.
// Rejecting these would mangle real directory listings, where "...", ".x"
// and "a b" are all ordinary names.
func TestComponentEdgeValidity(t *testing.T) {
	valid := []string{".", "...", ".hidden", "a b", `back\slash`, "..x", "x.."}
	for _, name := range valid {
		b := NewBuilder()
		if err := b.Leaf(name); err != nil {
			t.Errorf("Leaf(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "..", "a/b", "/", "//"}
	for _, name := range invalid {
		b := NewBuilder()
		if err := b.Leaf(name); err == nil {
			t.Errorf("Leaf(%q) succeeded, want ErrInvalidComponent", name)
		}
	}
}

// TestUnicodeComponents round-trips multi-byte names through build,
// iterate, save, and load. The archive frames names by byte length;
// confusing bytes with runes anywhere would truncate these.
func TestUnicodeComponents(t *testing.T) {
	paths := [][]string{
		{"日本語"},
		{"日本語", "ファイル.txt"},
		{"émoji 🗂"},
		{"émoji 🗂", strings.Repeat("ü", 100)},
	}

	b := NewBuilder()
	for _, p := range paths {
		if err := b.Insert(p); err != nil {
			t.Fatalf("Insert(%v): %v", p, err)
		}
	}
	tree := b.Finish()

	var buf bytes.Buffer
	if err := Save(tree, &buf, SaveOptions{Algorithm: AlgBlake2b}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := drain(t, loaded.Cursor())
	if len(got) != len(paths) {
		t.Fatalf("iterated %d paths, want %d", len(got), len(paths))
	}
	for i := range paths {
		if !equalStrings(got[i], paths[i]) {
			t.Errorf("path %d = %v, want %v", i, got[i], paths[i])
		}
	}
}

// TestArchiveSmallerThanPaths: the point of the encoding. For a tree of
// many long shared prefixes, the archive must be much smaller than the
// sum of the rendered path lengths.
func TestArchiveSmallerThanPaths(t *testing.T) {
	b := NewBuilder()
	total := 0
	prefix := []string{"very", "deeply", "nested", "project", "directory"}
	for _, p := range prefix {
		b.Enter(p)
		total += len(strings.Join(prefix, "/"))
	}
	for i := 0; i < 1000; i++ {
		name := fmt.Sprintf("source_file_%04d.go", i)
		b.Leaf(name)
		total += len(strings.Join(prefix, "/")) + 1 + len(name)
	}
	tree := b.Finish()

	var buf bytes.Buffer
	if err := Save(tree, &buf, SaveOptions{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if buf.Len() >= total/4 {
		t.Errorf("archive = %d bytes for %d bytes of rendered paths", buf.Len(), total)
	}
}
