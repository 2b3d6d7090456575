package catblob

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Decode parses a wire-form blob into a Record, auto-detecting the
// container format. The compressed form is tried first: if the leading
// size prefix falls inside the plausibility window, the remainder
// decompresses as an LZ4 block, and the result starts with the cat
// magic, the blob is compressed. A malformed LZ4 block is not an error
// here — it just means "not the compressed form" and detection falls
// through to the raw layout check.
func Decode(blob []byte, limits DetectLimits) (*Record, error) {
	limits = limits.withDefaults()

	if len(blob) > 8 {
		if data, ok := probeCompressed(blob, limits); ok {
			return &Record{data: data, compressed: true}, nil
		}
	}

	if len(blob) >= NameStart && binary.LittleEndian.Uint32(blob) == Magic {
		data := make([]byte, len(blob))
		copy(data, blob)
		return &Record{data: data, compressed: false}, nil
	}

	return nil, fmt.Errorf("%d byte blob: %w", len(blob), ErrNotCatBlob)
}

// probeCompressed attempts the [u32 size][LZ4 block] form. Any failure
// (implausible size, malformed block, short output, wrong magic) means
// the blob is simply not this format.
func probeCompressed(blob []byte, limits DetectLimits) ([]byte, bool) {
	size := binary.LittleEndian.Uint32(blob)
	if size <= limits.MinDecodedSize || size >= limits.MaxDecodedSize {
		return nil, false
	}

	data := make([]byte, size)
	n, err := lz4.UncompressBlock(blob[4:], data)
	if err != nil || n != int(size) {
		return nil, false
	}

	if len(data) < NameStart || binary.LittleEndian.Uint32(data) != Magic {
		return nil, false
	}
	return data, true
}

// Encode packs the record back into its original container form. A
// record decoded from the compressed form is re-compressed with the
// pre-compression byte length as prefix; the exact compressed bytes
// need not match the original, only decode back to the same layout.
// A raw record is returned as a copy of the decoded bytes.
func (r *Record) Encode() ([]byte, error) {
	if !r.compressed {
		out := make([]byte, len(r.data))
		copy(out, r.data)
		return out, nil
	}

	block, err := compressBlock(r.data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 4+len(block))
	binary.LittleEndian.PutUint32(out, uint32(len(r.data)))
	copy(out[4:], block)
	return out, nil
}

func compressBlock(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, bound)

	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 for incompressible input. The game still
	// expects a valid LZ4 block, so fall back to a literal-only block.
	if n == 0 {
		return literalBlock(data), nil
	}
	return dst[:n], nil
}

// literalBlock encodes data as a single LZ4 sequence with no match:
// a token carrying the literal length, optional length continuation
// bytes, then the literals. Larger than the input but always a legal
// block.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)

	if n < 15 {
		out = append(out, byte(n)<<4)
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 0xFF)
			rest -= 255
		}
		out = append(out, byte(rest))
	}
	return append(out, data...)
}
