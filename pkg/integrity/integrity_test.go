package integrity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFileStable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(path, []byte("some save file bytes"), 0o644))

	first, err := HashFile(path)
	require.NoError(t, err)
	second, err := HashFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.String(), 64)
}

func TestHashFileMissing(t *testing.T) {
	t.Parallel()

	_, err := HashFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestVerifyCopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	content := []byte("identical content")
	require.NoError(t, os.WriteFile(a, content, 0o644))
	require.NoError(t, os.WriteFile(b, content, 0o644))

	ok, err := VerifyCopy(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	// Flip one byte in the copy: verification must fail.
	corrupted := append([]byte{}, content...)
	corrupted[3] ^= 0xFF
	require.NoError(t, os.WriteFile(b, corrupted, 0o644))

	ok, err = VerifyCopy(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}
