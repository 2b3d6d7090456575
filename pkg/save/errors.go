package save

import "errors"

var (
	// ErrNotASave means the SQLite file contains none of the known
	// entity tables and is probably not a Mewgenics save.
	ErrNotASave = errors.New("not a mewgenics save file (no known tables)")

	// ErrRowNotFound means the addressed table/key has no row.
	ErrRowNotFound = errors.New("row not found")

	// ErrUnknownTable means the table name does not belong to any
	// registered category. Table names reach SQL by splicing, so only
	// registry names are ever accepted.
	ErrUnknownTable = errors.New("unknown table")

	// ErrBackupIntegrity means the backup copy's digest did not match
	// the source. The partial backup is deleted before this is
	// returned.
	ErrBackupIntegrity = errors.New("backup integrity check failed: digests do not match")

	// ErrRestoreIntegrity means the restored file's digest did not
	// match the backup it was copied from.
	ErrRestoreIntegrity = errors.New("restore integrity check failed: digests do not match")

	// ErrMutatedBlob means the freshly mutated blob failed its
	// pre-write self-check (wrong name or altered tail). Nothing was
	// written; this guards against codec bugs reaching the save file.
	ErrMutatedBlob = errors.New("mutated blob failed verification")

	// ErrWriteVerification means the post-write readback did not match
	// the bytes written. Treat as potential corruption: restore from
	// the backup.
	ErrWriteVerification = errors.New("write verification failed: readback does not match written bytes")
)
