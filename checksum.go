// Checksum algorithms for archive integrity.
//
// The header's _c field is a 16 hex character checksum of the compressed
// payload. Three algorithms are supported, selectable via
// SaveOptions.Algorithm; Load honours whatever the header declares.
package pathpack

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Cryptographic, tamper-evident
)

// checksum produces a 16 hex character digest of data using the specified
// algorithm, or "" for an unknown algorithm.
func checksum(data []byte, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
