// Package catblob handles Mewgenics cat blobs: the binary records the
// game stores as opaque `data` columns in its save-file SQLite tables.
package catblob

import "encoding/binary"

// Decoded blob layout (all integers little-endian):
//
//	0x00-0x03: u32 magic = 0x13
//	0x04-0x0B: 8 bytes seed (opaque, preserved verbatim)
//	0x0C-0x0F: u32 name character count (NOT byte count)
//	0x10-0x13: u32 padding (preserved verbatim)
//	0x14-....: UTF-16LE name (count * 2 bytes)
//	then:      opaque tail (stats, abilities, etc.)
//
// Wire form is either the decoded layout directly, or
// [u32 uncompressed size][LZ4 block].
const (
	Magic = 0x13

	SeedOffset    = 4
	NameLenOffset = 12
	PaddingOffset = 16
	NameStart     = 20
)

// Name length limits. MinNameChars/MaxNameChars are the game's input
// bounds; MaxSafeNameChars is a corruption guard far above the game's
// actual limit — a count beyond it means a broken blob, not a long name.
const (
	MinNameChars     = 1
	MaxNameChars     = 24
	MaxSafeNameChars = 500
)

// DetectLimits bounds the declared uncompressed size used to decide
// whether a blob is worth trying to LZ4-decompress. Cat blobs decode to
// roughly 900-1000 bytes; the defaults reject anything outside
// (20, 10240) so random raw data is not mis-detected as compressed.
// The window is a tuned heuristic, not a format constant, so it stays
// configurable.
type DetectLimits struct {
	MinDecodedSize uint32 // exclusive lower bound; 0 means default
	MaxDecodedSize uint32 // exclusive upper bound; 0 means default
}

func (l DetectLimits) withDefaults() DetectLimits {
	if l.MinDecodedSize == 0 {
		l.MinDecodedSize = NameStart
	}
	if l.MaxDecodedSize == 0 {
		l.MaxDecodedSize = 10 * 1024
	}
	return l
}

// Record is a decoded cat blob. It owns its byte buffer and remembers
// which container form it was decoded from so Encode can reproduce it.
// Records are ephemeral: decoded from wire bytes, inspected or mutated,
// encoded back, and discarded.
type Record struct {
	data       []byte
	compressed bool
}

// Bytes returns the decoded layout bytes. The slice is owned by the
// Record; callers must not modify it.
func (r *Record) Bytes() []byte {
	return r.data
}

// Compressed reports whether the record was decoded from the
// LZ4-compressed container form.
func (r *Record) Compressed() bool {
	return r.compressed
}

// Seed returns the 8-byte opaque seed field.
func (r *Record) Seed() [8]byte {
	var seed [8]byte
	copy(seed[:], r.data[SeedOffset:NameLenOffset])
	return seed
}

// NameCharCount returns the declared name length in UTF-16 code units.
// The value is not validated; use Name for a checked decode.
func (r *Record) NameCharCount() uint32 {
	return binary.LittleEndian.Uint32(r.data[NameLenOffset:])
}
