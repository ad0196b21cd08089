// Archive header management.
//
// The header is exactly 128 bytes: a single JSON line padded with spaces and
// terminated with a newline. It records the format version, the checksum
// algorithm, the token count, and the compressed payload's length and
// checksum, so Load can validate the payload before decoding a single token.
package pathpack

import (
	"bytes"
	"time"

	json "github.com/goccy/go-json"
)

// HeaderSize is the fixed size of the archive header in bytes.
const HeaderSize = 128

// FormatVersion is the current archive format version.
const FormatVersion = 1

// archiveHeader is the metadata stored at the start of an archive.
type archiveHeader struct {
	Version   int    `json:"_v"`   // Format version
	Algorithm int    `json:"_alg"` // Checksum algorithm (1=xxHash3, 2=FNV1a, 3=Blake2b)
	Timestamp int64  `json:"_ts"`  // Unix milliseconds when written
	Tokens    int    `json:"_n"`   // Token count in the decoded payload
	Payload   int64  `json:"_p"`   // Compressed payload length in bytes
	Checksum  string `json:"_c"`   // 16 hex chars over the compressed payload
}

// parseHeader decodes and validates a raw header block.
func parseHeader(buf []byte) (*archiveHeader, error) {
	var hdr archiveHeader
	if err := json.Unmarshal(bytes.TrimSpace(buf), &hdr); err != nil {
		return nil, ErrCorruptHeader
	}
	if hdr.Version != FormatVersion || hdr.Tokens < 0 || hdr.Payload < 0 {
		return nil, ErrCorruptHeader
	}
	return &hdr, nil
}

// encode serialises the header to exactly HeaderSize bytes with padding.
func (h *archiveHeader) encode() ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}

	padLen := HeaderSize - len(data) - 1
	if padLen < 0 {
		return nil, ErrCorruptHeader // header too large
	}

	buf := make([]byte, HeaderSize)
	copy(buf, data)
	for i := len(data); i < HeaderSize-1; i++ {
		buf[i] = ' '
	}
	buf[HeaderSize-1] = '\n'

	return buf, nil
}

// now returns the current time in unix milliseconds.
func now() int64 {
	return time.Now().UnixMilli()
}
