// Package pathpack stores a large, static tree of path-like items as a single
// flat sequence of component tokens. Instead of one path value per item, the
// tree is delta-encoded: consecutive items share their common ancestry for
// free, and ascend markers record how far the path retreats between one item
// and the next. A Cursor replays the token sequence to reconstruct every full
// path in the original depth-first order.
//
// Construction happens once, through a Builder (either streaming enter/leave
// events or whole paths in depth-first order) or straight from an fs.FS. The
// resulting Tree is immutable and freely shareable: any number of cursors can
// traverse it concurrently, each with its own private stack. Trees can be
// written to and read back from a compact archive format with a zstd-
// compressed payload and a checksummed header.
//
// The package offers no lookup, filtering, or mutation — items can only be
// streamed back in the order they were inserted. That restriction is the
// point: structure lives entirely in ascend counts, so a tree of a million
// paths costs a million component strings plus one byte-sized marker per
// retreat, with no per-node allocation.
package pathpack

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// distinguish caller mistakes (ErrInvalidComponent, ErrUnbalancedLeave,
// ErrNotDepthFirst, ErrFinished) from damaged input (ErrCorruptHeader,
// ErrChecksum, ErrDecompress, ErrCorruptArchive) and from internal invariant
// violations that indicate a defect rather than a recoverable condition
// (ErrCorruptBuffer).
var (
	ErrInvalidComponent = errors.New("invalid path component")
	ErrUnbalancedLeave  = errors.New("leave without matching enter")
	ErrNotDepthFirst    = errors.New("paths not in depth-first order")
	ErrFinished         = errors.New("builder already finished")
	ErrCorruptBuffer    = errors.New("corrupt token buffer")
	ErrCorruptHeader    = errors.New("corrupt archive header")
	ErrChecksum         = errors.New("archive checksum mismatch")
	ErrDecompress       = errors.New("decompression failed")
	ErrCorruptArchive   = errors.New("corrupt archive payload")
	ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")
)
