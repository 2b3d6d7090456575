package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wawax007/MewgenicsRenamer/pkg/integrity"
)

func writeSave(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	savePath := writeSave(t, dir, "slot1.sav", []byte("pretend sqlite bytes"))

	backupPath, err := CreateBackup(savePath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "backups"), filepath.Dir(backupPath))
	assert.Contains(t, filepath.Base(backupPath), "slot1_renamer_")
	assert.Contains(t, backupPath, BackupExtension)

	ok, err := integrity.VerifyCopy(savePath, backupPath)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateBackupMissingSource(t *testing.T) {
	t.Parallel()

	_, err := CreateBackup(filepath.Join(t.TempDir(), "nope.sav"))
	require.Error(t, err)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := []byte("original save bytes")
	savePath := writeSave(t, dir, "slot1.sav", original)

	backupPath, err := CreateBackup(savePath)
	require.NoError(t, err)

	// Clobber the save, then roll back.
	require.NoError(t, os.WriteFile(savePath, []byte("corrupted!"), 0o644))
	require.NoError(t, Restore(backupPath, savePath))

	restored, err := os.ReadFile(savePath)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestCreateBackupDigestMismatch(t *testing.T) {
	// Stubs verifyCopy, so this test must not run in parallel.
	orig := verifyCopy
	verifyCopy = func(src, dst string) (bool, error) { return false, nil }
	t.Cleanup(func() { verifyCopy = orig })

	dir := t.TempDir()
	savePath := writeSave(t, dir, "slot1.sav", []byte("pretend sqlite bytes"))

	_, err := CreateBackup(savePath)
	require.ErrorIs(t, err, ErrBackupIntegrity)

	// The unverified copy must not survive.
	left, err := os.ReadDir(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestRestoreDigestMismatch(t *testing.T) {
	dir := t.TempDir()
	savePath := writeSave(t, dir, "slot1.sav", []byte("original save bytes"))

	backupPath, err := CreateBackup(savePath)
	require.NoError(t, err)

	orig := verifyCopy
	verifyCopy = func(src, dst string) (bool, error) { return false, nil }
	t.Cleanup(func() { verifyCopy = orig })

	err = Restore(backupPath, savePath)
	require.ErrorIs(t, err, ErrRestoreIntegrity)
}

func TestRestoreMissingBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	savePath := writeSave(t, dir, "slot1.sav", []byte("x"))

	err := Restore(filepath.Join(dir, "backups", "nope.savbackup"), savePath)
	require.Error(t, err)
}

func TestListBackups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	savePath := writeSave(t, dir, "slot1.sav", []byte("x"))
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.MkdirAll(backupDir, 0o755))

	// Fabricate backups with distinct timestamps plus files that must
	// be ignored: another save's backups and unrelated extensions.
	names := []string{
		"slot1_renamer_2026-08-01_10-00-00" + BackupExtension,
		"slot1_renamer_2026-08-20_09-30-00" + BackupExtension,
		"slot1_renamer_2026-08-15_23-59-59" + BackupExtension,
		"slot2_renamer_2026-08-21_00-00-00" + BackupExtension,
		"slot1_renamer_2026-08-22_00-00-00.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, n), []byte("b"), 0o644))
	}

	backups, err := ListBackups(savePath)
	require.NoError(t, err)
	require.Len(t, backups, 3)

	assert.Equal(t, filepath.Join(backupDir, names[1]), backups[0], "newest first")
	assert.Equal(t, filepath.Join(backupDir, names[2]), backups[1])
	assert.Equal(t, filepath.Join(backupDir, names[0]), backups[2])
}

func TestListBackupsNoDirectory(t *testing.T) {
	t.Parallel()

	savePath := writeSave(t, t.TempDir(), "slot1.sav", []byte("x"))
	backups, err := ListBackups(savePath)
	require.NoError(t, err)
	assert.Empty(t, backups)
}
