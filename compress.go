// Compression for the archive payload.
//
// The framed token stream compresses extremely well — component names repeat
// and ascend markers are single zero bytes — so the payload is always stored
// Zstd-compressed.
package pathpack

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once at init because zstd encoder/decoder construction is
// expensive; creating one per Save or Load would dominate the cost for
// small trees. SpeedFastest keeps Save cheap; token streams are repetitive
// enough that the ratio gain from higher levels is marginal.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}
