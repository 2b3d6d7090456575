package catblob

import "errors"

var (
	// ErrNotCatBlob means the bytes matched neither the LZ4-compressed
	// container nor the raw decoded layout.
	ErrNotCatBlob = errors.New("not a cat blob: neither LZ4-compressed nor raw layout matched")

	// ErrNameTooLong means the declared name character count exceeds
	// MaxSafeNameChars and the blob is treated as corrupted.
	ErrNameTooLong = errors.New("name length exceeds safety limit")

	// ErrTruncated means a declared length runs past the end of the
	// decoded buffer.
	ErrTruncated = errors.New("blob truncated")

	// ErrInvalidName rejects a proposed replacement name before any
	// mutation is attempted.
	ErrInvalidName = errors.New("invalid name")
)
