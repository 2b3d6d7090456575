// Package gpak reads Mewgenics resources.gpak archives (read-only).
//
// Format:
//
//	[u32 file count]
//	per file: [u16 path length][UTF-8 path][u32 data size]
//	then: file contents stored contiguously in table order.
package gpak

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// maxTableBytes bounds the prefix read that must cover the whole
	// file table (~1 MB for the game's 18K entries).
	maxTableBytes = 2 * 1024 * 1024

	// MaxEntries rejects count headers that would never occur in a
	// real archive before any allocation happens.
	MaxEntries = 1 << 20

	// MaxPathLen caps a single entry path. The field is 16-bit but the
	// game never ships paths anywhere near this long.
	MaxPathLen = 1024
)

var (
	// ErrCorruptTable means the file table declared lengths that run
	// past the available bytes or outside the format's bounds.
	ErrCorruptTable = errors.New("corrupt gpak file table")

	// ErrNotGPAK means the file is too small or its count header is
	// implausible.
	ErrNotGPAK = errors.New("not a gpak archive")
)

// Entry is one named file in the archive.
type Entry struct {
	Path   string
	Size   uint32
	Offset int64 // absolute byte offset of the data in the archive
}

// ParseFileTable reads and validates the archive's file table. Every
// length is checked against the remaining buffer before it is used, so
// a truncated or adversarial archive fails with ErrCorruptTable naming
// the entry reached instead of reading out of bounds.
func ParseFileTable(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gpak: %w", err)
	}
	defer f.Close()

	var countBuf [4]byte
	if _, err := io.ReadFull(f, countBuf[:]); err != nil {
		return nil, fmt.Errorf("reading file count: %w", ErrNotGPAK)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])
	if count > MaxEntries {
		return nil, fmt.Errorf("file count %d exceeds limit %d: %w", count, MaxEntries, ErrNotGPAK)
	}

	buf, err := io.ReadAll(io.LimitReader(f, maxTableBytes))
	if err != nil {
		return nil, fmt.Errorf("reading file table: %w", err)
	}

	entries := make([]Entry, 0, min(count, 4096))
	pos := 0
	for i := uint32(0); i < count; i++ {
		if pos+2 > len(buf) {
			return nil, fmt.Errorf("file table truncated at entry %d: %w", i, ErrCorruptTable)
		}
		pathLen := int(binary.LittleEndian.Uint16(buf[pos:]))
		pos += 2

		if pathLen > MaxPathLen {
			return nil, fmt.Errorf("entry %d: path length %d exceeds limit %d: %w",
				i, pathLen, MaxPathLen, ErrCorruptTable)
		}
		if pos+pathLen+4 > len(buf) {
			return nil, fmt.Errorf("entry %d: need %d bytes, table has %d: %w",
				i, pos+pathLen+4, len(buf), ErrCorruptTable)
		}

		entryPath := string(buf[pos : pos+pathLen])
		pos += pathLen
		size := binary.LittleEndian.Uint32(buf[pos:])
		pos += 4

		entries = append(entries, Entry{Path: entryPath, Size: size})
	}

	// Data offsets are the running sum of preceding sizes, starting
	// right after the count header and the table bytes.
	offset := int64(4 + pos)
	for i := range entries {
		entries[i].Offset = offset
		offset += int64(entries[i].Size)
	}

	// The declared data region must fit inside the file, otherwise a
	// forged size field would drive a huge allocation in Extract.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat gpak: %w", err)
	}
	if offset > info.Size() {
		return nil, fmt.Errorf("file table declares data through byte %d but archive ends at %d: %w",
			offset, info.Size(), ErrCorruptTable)
	}
	return entries, nil
}

// Extract reads the requested paths in one pass. Paths absent from the
// archive are omitted from the result, not errors — callers must treat
// a missing key as "not present".
func Extract(path string, wanted []string) (map[string][]byte, error) {
	entries, err := ParseFileTable(path)
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gpak: %w", err)
	}
	defer f.Close()

	result := make(map[string][]byte, len(wanted))
	for _, w := range wanted {
		entry, ok := byPath[w]
		if !ok {
			continue
		}
		data := make([]byte, entry.Size)
		if _, err := f.ReadAt(data, entry.Offset); err != nil {
			return nil, fmt.Errorf("reading %s: %w", w, err)
		}
		result[w] = data
	}
	return result, nil
}

// QuickValidate reports whether the file looks like a gpak archive:
// a readable count header within plausible bounds. It does not parse
// the table.
func QuickValidate(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var countBuf [4]byte
	if _, err := io.ReadFull(f, countBuf[:]); err != nil {
		return false
	}
	count := binary.LittleEndian.Uint32(countBuf[:])
	return count > 0 && count <= MaxEntries
}

// Find locates resources.gpak, checking the given directories first
// and then the directory of the running executable and its parent.
// Returns the first hit that passes QuickValidate.
func Find(dirs ...string) (string, bool) {
	candidates := make([]string, 0, len(dirs)+2)
	candidates = append(candidates, dirs...)
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		candidates = append(candidates, exeDir, filepath.Dir(exeDir))
	}

	for _, dir := range candidates {
		p := filepath.Join(dir, "resources.gpak")
		if QuickValidate(p) {
			return p, true
		}
	}
	return "", false
}
