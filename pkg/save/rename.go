package save

import (
	"bytes"
	"fmt"

	"github.com/Wawax007/MewgenicsRenamer/pkg/catblob"
)

// RenameOptions configures a rename operation.
type RenameOptions struct {
	Limits catblob.DetectLimits // blob detection window, zero = defaults

	// SkipBackup disables the backup stage. Only for callers that
	// already hold a verified backup of the save file.
	SkipBackup bool
}

// RenameResult reports a completed rename.
type RenameResult struct {
	BackupPath string // empty when SkipBackup was set
	OldName    string
	NewName    string
	Compressed bool     // container form of the mutated blob
	Warnings   []string // non-fatal name validation warnings
}

// Rename changes an entity's display name in a save file, running the
// full pipeline: back up the save (verified by digest), decode the
// blob, splice the new name, verify the mutated blob before writing,
// write it through the row store, and confirm the write by readback.
//
// A failure at any stage leaves the save file untouched apart from the
// already-created backup. Rollback is never automatic: on a write
// verification failure the caller decides whether to Restore the
// returned backup.
func Rename(savePath, table string, key Key, newName string, opts RenameOptions) (*RenameResult, error) {
	warnings, err := catblob.ValidateName(newName)
	if err != nil {
		return nil, err
	}

	result := &RenameResult{NewName: newName, Warnings: warnings}

	if !opts.SkipBackup {
		backupPath, err := CreateBackup(savePath)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
	}

	store, err := OpenSaveRW(savePath)
	if err != nil {
		return result, err
	}
	defer store.Close()

	oldName, compressed, err := RenameInStore(store, table, key, newName, opts.Limits)
	if err != nil {
		return result, err
	}

	result.OldName = oldName
	result.Compressed = compressed
	return result, nil
}

// RenameInStore runs the decode → mutate → verify → write → confirm
// stages against any row store. It performs no backup; callers wanting
// crash safety use Rename.
func RenameInStore(store RowStore, table string, key Key, newName string, limits catblob.DetectLimits) (oldName string, compressed bool, err error) {
	blob, found, err := store.Read(table, key)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, fmt.Errorf("%s[%s]: %w", table, key, ErrRowNotFound)
	}

	original, err := catblob.Decode(blob, limits)
	if err != nil {
		return "", false, err
	}
	oldName, err = original.Name()
	if err != nil {
		return "", false, err
	}
	oldTail, err := original.Tail()
	if err != nil {
		return "", false, err
	}

	mutated, err := catblob.ReplaceName(blob, newName, limits)
	if err != nil {
		return oldName, false, err
	}

	// Pre-write verification: the mutated blob must decode back to
	// exactly the requested name with a byte-identical tail. Catches
	// codec bugs before they reach the save file.
	check, err := catblob.Decode(mutated, limits)
	if err != nil {
		return oldName, false, fmt.Errorf("re-decoding mutated blob: %w", err)
	}
	gotName, err := check.Name()
	if err != nil {
		return oldName, false, fmt.Errorf("re-reading mutated name: %w", err)
	}
	if gotName != newName {
		return oldName, false, fmt.Errorf("name mismatch: expected %q, got %q: %w",
			newName, gotName, ErrMutatedBlob)
	}
	newTail, err := check.Tail()
	if err != nil {
		return oldName, false, err
	}
	if !bytes.Equal(oldTail, newTail) {
		return oldName, false, fmt.Errorf("tail changed (%d -> %d bytes): %w",
			len(oldTail), len(newTail), ErrMutatedBlob)
	}

	if err := store.Write(table, key, mutated); err != nil {
		return oldName, false, err
	}

	// Confirm: read the row back and compare byte-for-byte.
	readback, found, err := store.Read(table, key)
	if err != nil {
		return oldName, false, fmt.Errorf("readback: %w", err)
	}
	if !found || !bytes.Equal(readback, mutated) {
		return oldName, false, fmt.Errorf("%s[%s]: %w", table, key, ErrWriteVerification)
	}

	return oldName, check.Compressed(), nil
}
