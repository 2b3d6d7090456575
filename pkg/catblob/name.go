package catblob

import (
	"encoding/binary"
	"fmt"
	"unicode"
)

// nameEnd returns the byte offset one past the name field, validating
// the declared character count against the safety ceiling and the
// buffer length.
func (r *Record) nameEnd() (int, error) {
	count := r.NameCharCount()
	if count > MaxSafeNameChars {
		return 0, fmt.Errorf("name length %d exceeds safety limit of %d chars (likely corrupted blob): %w",
			count, MaxSafeNameChars, ErrNameTooLong)
	}

	end := NameStart + int(count)*2
	if end > len(r.data) {
		return 0, fmt.Errorf("name needs %d bytes, blob has %d: %w", end, len(r.data), ErrTruncated)
	}
	return end, nil
}

// Name decodes the UTF-16LE display name. A zero character count
// yields an empty name.
func (r *Record) Name() (string, error) {
	end, err := r.nameEnd()
	if err != nil {
		return "", err
	}
	return decodeUTF16LE(r.data[NameStart:end]), nil
}

// Tail returns everything after the name field. The tail is opaque and
// must survive any name mutation byte-identical.
func (r *Record) Tail() ([]byte, error) {
	end, err := r.nameEnd()
	if err != nil {
		return nil, err
	}
	return r.data[end:], nil
}

// ValidateName checks a proposed replacement name against the game's
// bounds. The returned error blocks the rename; warnings are advisory
// (non-ASCII names may not render correctly in-game but are allowed).
func ValidateName(name string) (warnings []string, err error) {
	runes := []rune(name)

	if len(runes) < MinNameChars {
		return nil, fmt.Errorf("name must be at least %d character(s): %w", MinNameChars, ErrInvalidName)
	}
	if len(runes) > MaxNameChars {
		return nil, fmt.Errorf("name must be at most %d characters, got %d: %w",
			MaxNameChars, len(runes), ErrInvalidName)
	}

	nonASCII := false
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return nil, fmt.Errorf("name contains non-printable character %U: %w", r, ErrInvalidName)
		}
		if r > 127 {
			nonASCII = true
		}
	}
	if nonASCII {
		warnings = append(warnings, "non-ASCII characters may not render correctly in-game")
	}
	return warnings, nil
}

// ReplaceName splices a new display name into a wire-form blob and
// re-encodes it in its original container form. Only the character
// count field and the name bytes change; the seed, padding, and tail
// are carried over verbatim.
func ReplaceName(blob []byte, newName string, limits DetectLimits) ([]byte, error) {
	if _, err := ValidateName(newName); err != nil {
		return nil, err
	}

	rec, err := Decode(blob, limits)
	if err != nil {
		return nil, err
	}
	oldEnd, err := rec.nameEnd()
	if err != nil {
		return nil, err
	}

	encoded := encodeUTF16LE(newName)

	out := make([]byte, 0, NameStart+len(encoded)+len(rec.data)-oldEnd)
	out = append(out, rec.data[:NameLenOffset]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(encoded)/2))
	out = append(out, rec.data[NameLenOffset+4:NameStart]...)
	out = append(out, encoded...)
	out = append(out, rec.data[oldEnd:]...)

	mutated := &Record{data: out, compressed: rec.compressed}
	return mutated.Encode()
}

// Validate reports structural warnings for a wire-form blob without
// failing. An unparseable blob yields its decode error as the single
// warning.
func Validate(blob []byte, limits DetectLimits) []string {
	rec, err := Decode(blob, limits)
	if err != nil {
		return []string{err.Error()}
	}

	var warnings []string
	if count := rec.NameCharCount(); count > 100 {
		warnings = append(warnings, fmt.Sprintf("suspicious name length: %d", count))
	}
	return warnings
}
