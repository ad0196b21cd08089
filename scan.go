// Filesystem construction.
//
// FromFS builds a tree by a depth-first pre-order walk of an fs.FS,
// feeding the streaming Builder API. A Visitor can prune entries, observe
// them as they are added, and decide which errors abort the walk. Entries
// are visited in fs.ReadDir order (sorted by filename); symbolic links are
// stored but never followed, matching io/fs semantics.
package pathpack

import (
	"io/fs"
	"path"
)

// Visitor filters and observes entries during FromFS construction.
type Visitor interface {
	// Filter reports whether the entry should be included. Excluding a
	// directory prunes its entire subtree. An error is routed through
	// HandleError and, if ignored there, excludes the entry.
	Filter(path string, d fs.DirEntry) (bool, error)

	// Visit is called for every included entry, before it is added to the
	// tree. An error is routed through HandleError and, if ignored,
	// excludes the entry and its subtree.
	Visit(path string, d fs.DirEntry) error

	// HandleError decides the fate of an error raised while processing the
	// given entry (nil entry: reading the directory itself failed).
	// Returning nil skips the affected entry and continues the walk;
	// returning an error — usually err itself — aborts FromFS with it.
	HandleError(path string, d fs.DirEntry, err error) error
}

// FromFS constructs a Tree from a depth-first traversal of fsys. The tree
// holds every included entry under the root; the root itself is not an
// item. A nil visitor includes everything and treats every error as fatal.
func FromFS(fsys fs.FS, visitor Visitor) (*Tree, error) {
	b := NewBuilder()
	if err := walk(fsys, ".", b, visitor); err != nil {
		return nil, err
	}
	return b.Finish(), nil
}

func walk(fsys fs.FS, dir string, b *Builder, v Visitor) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		full := name
		if dir != "." {
			full = path.Join(dir, name)
		}

		if v != nil {
			include, err := v.Filter(full, entry)
			if err != nil {
				if err = v.HandleError(full, entry, err); err != nil {
					return err
				}
				continue
			}
			if !include {
				continue
			}
			if err := v.Visit(full, entry); err != nil {
				if err = v.HandleError(full, entry, err); err != nil {
					return err
				}
				continue
			}
		}

		if !entry.IsDir() {
			if err := b.Leaf(name); err != nil {
				return err
			}
			continue
		}

		if err := b.Enter(name); err != nil {
			return err
		}
		werr := walk(fsys, full, b, v)
		if err := b.Leave(); err != nil {
			return err
		}
		if werr != nil {
			// The directory is already in the tree; an ignored error only
			// costs its remaining children.
			if v == nil {
				return werr
			}
			if werr = v.HandleError(full, entry, werr); werr != nil {
				return werr
			}
		}
	}

	return nil
}
