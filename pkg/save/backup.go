package save

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Wawax007/MewgenicsRenamer/pkg/integrity"
)

// BackupExtension marks backup files created by this tool.
const BackupExtension = ".savbackup"

// backupTimeLayout gives backups a stable, sortable, filename-safe
// timestamp.
const backupTimeLayout = "2006-01-02_15-04-05"

// verifyCopy is replaced in tests to simulate a copy that corrupts
// between the write and the digest comparison.
var verifyCopy = integrity.VerifyCopy

// CreateBackup copies the save file into a `backups` directory next to
// it, under a name carrying the save's stem and a timestamp, then
// proves the copy faithful by comparing digests computed independently
// from both files. On a digest mismatch the partial backup is deleted
// before the error is returned — a half-written backup is worse than
// none.
func CreateBackup(savePath string) (string, error) {
	backupDir := filepath.Join(filepath.Dir(savePath), "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(savePath), filepath.Ext(savePath))
	name := fmt.Sprintf("%s_renamer_%s%s", stem, time.Now().Format(backupTimeLayout), BackupExtension)
	backupPath := filepath.Join(backupDir, name)

	if err := copyFile(savePath, backupPath); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("copying save to backup: %w", err)
	}

	ok, err := verifyCopy(savePath, backupPath)
	if err != nil {
		os.Remove(backupPath)
		return "", err
	}
	if !ok {
		os.Remove(backupPath)
		return "", fmt.Errorf("%s -> %s: %w", savePath, backupPath, ErrBackupIntegrity)
	}
	return backupPath, nil
}

// Restore copies a backup over the target save file and re-verifies
// the result by digest comparison. It is never invoked automatically;
// rolling back is always an explicit caller decision.
func Restore(backupPath, savePath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %w", err)
	}

	if err := copyFile(backupPath, savePath); err != nil {
		return fmt.Errorf("restoring backup: %w", err)
	}

	ok, err := verifyCopy(backupPath, savePath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s -> %s: %w", backupPath, savePath, ErrRestoreIntegrity)
	}
	return nil
}

// ListBackups returns this tool's backups for a save file, newest
// first. A missing backups directory yields an empty list.
func ListBackups(savePath string) ([]string, error) {
	backupDir := filepath.Join(filepath.Dir(savePath), "backups")
	stem := strings.TrimSuffix(filepath.Base(savePath), filepath.Ext(savePath))
	prefix := stem + "_renamer_"

	files, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if strings.HasPrefix(f.Name(), prefix) && strings.HasSuffix(f.Name(), BackupExtension) {
			backups = append(backups, filepath.Join(backupDir, f.Name()))
		}
	}

	// The timestamp format sorts lexically; newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
