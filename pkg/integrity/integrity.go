// Package integrity computes content digests used to prove that file
// copies are faithful. The threat model is accidental corruption, not
// an adversary, but a standard strong hash keeps the comparison
// trivially reliable.
package integrity

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// chunkSize is the read buffer for streaming hashes.
const chunkSize = 64 * 1024

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// String returns the canonical hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashFile streams the file through BLAKE3 in fixed-size chunks and
// returns its digest.
func HashFile(path string) (Digest, error) {
	var digest Digest

	f, err := os.Open(path)
	if err != nil {
		return digest, fmt.Errorf("hashing %s: %w", path, err)
	}
	defer f.Close()

	hasher := blake3.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(hasher, f, buf); err != nil {
		return digest, fmt.Errorf("hashing %s: %w", path, err)
	}

	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// VerifyCopy reports whether two files have identical content.
func VerifyCopy(a, b string) (bool, error) {
	digestA, err := HashFile(a)
	if err != nil {
		return false, err
	}
	digestB, err := HashFile(b)
	if err != nil {
		return false, err
	}
	return digestA == digestB, nil
}
