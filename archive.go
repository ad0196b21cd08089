// Archive format: saving and loading trees.
//
// An archive is a fixed-size header followed by a zstd-compressed payload.
// The payload frames each token as a uvarint component length followed by
// the component bytes; a length of zero is an ascend marker, which is
// unambiguous because components are never empty.
//
// Load trusts nothing: the header shape, the payload length, the checksum,
// the compression, the framing, every component name, and the depth
// invariant are all re-validated. A tree returned by Load therefore carries
// the same guarantee as one returned by Builder.Finish — its cursors can
// never observe ErrCorruptBuffer.
package pathpack

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SaveOptions configures archive writing.
type SaveOptions struct {
	Algorithm int // Checksum algorithm (default AlgXXHash3)
}

// Save writes the tree to w in archive format.
func Save(t *Tree, w io.Writer, opts SaveOptions) error {
	alg := opts.Algorithm
	if alg == 0 {
		alg = AlgXXHash3
	}

	payload := compress(encodeTokens(t.tokens))

	sum := checksum(payload, alg)
	if sum == "" {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}

	hdr := archiveHeader{
		Version:   FormatVersion,
		Algorithm: alg,
		Timestamp: now(),
		Tokens:    len(t.tokens),
		Payload:   int64(len(payload)),
		Checksum:  sum,
	}
	buf, err := hdr.encode()
	if err != nil {
		return err
	}

	if _, err := w.Write(buf); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Load reads an archive from r and reconstructs the tree.
func Load(r io.Reader) (*Tree, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ErrCorruptHeader
	}
	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, hdr.Payload)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrCorruptArchive
	}

	sum := checksum(payload, hdr.Algorithm)
	if sum == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, hdr.Algorithm)
	}
	if sum != hdr.Checksum {
		return nil, ErrChecksum
	}

	raw, err := decompress(payload)
	if err != nil {
		return nil, err
	}

	tokens, err := decodeTokens(raw, hdr.Tokens)
	if err != nil {
		return nil, err
	}
	return &Tree{tokens: tokens}, nil
}

// encodeTokens frames the token sequence: uvarint length + bytes per name,
// a zero length per ascend.
func encodeTokens(tokens []Token) []byte {
	var out []byte
	for _, tok := range tokens {
		out = binary.AppendUvarint(out, uint64(len(tok.Name)))
		out = append(out, tok.Name...)
	}
	return out
}

// decodeTokens parses a framed payload back into tokens, enforcing the
// declared token count, component validity, and the depth invariant.
func decodeTokens(raw []byte, count int) ([]Token, error) {
	tokens := make([]Token, 0, count)
	depth := 0

	for len(raw) > 0 {
		n, size := binary.Uvarint(raw)
		if size <= 0 || n > uint64(len(raw)-size) {
			return nil, ErrCorruptArchive
		}
		raw = raw[size:]

		if n == 0 {
			if depth == 0 {
				return nil, ErrCorruptArchive // ascend past the root
			}
			depth--
			tokens = append(tokens, Ascend)
			continue
		}

		name := string(raw[:n])
		raw = raw[n:]
		if err := checkComponent(name); err != nil {
			return nil, ErrCorruptArchive
		}
		depth++
		tokens = append(tokens, Token{Name: name})
	}

	if len(tokens) != count {
		return nil, ErrCorruptArchive
	}
	return tokens, nil
}
