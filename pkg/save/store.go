package save

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Key addresses a row within a save table. Mewgenics keys are integers
// in the cat tables and text in the files table, so Key carries either
// form and binds with the matching SQLite type.
type Key struct {
	text   string
	number int64
	isText bool
}

// IntKey makes an integer row key.
func IntKey(v int64) Key { return Key{number: v} }

// TextKey makes a text row key.
func TextKey(s string) Key { return Key{text: s, isText: true} }

func (k Key) String() string {
	if k.isText {
		return k.text
	}
	return fmt.Sprintf("%d", k.number)
}

// arg returns the value to bind as a SQL parameter.
func (k Key) arg() any {
	if k.isText {
		return k.text
	}
	return k.number
}

// RowStore is the row-addressed binary store the mutation pipeline
// writes through. Rows hold an opaque `data` column; reads after a
// write on the same store must observe that write.
type RowStore interface {
	// Read returns the data column for table/key, or found=false when
	// the row does not exist.
	Read(table string, key Key) (data []byte, found bool, err error)

	// Write replaces the data column for table/key.
	Write(table string, key Key, data []byte) error
}

// SQLiteStore is the real row store: a single connection to a save
// file. It is not safe for concurrent use — the tool assumes a single
// active mutation per save file, with "game not running" verified by
// the caller.
type SQLiteStore struct {
	conn *sqlite.Conn
	path string
}

// OpenSave opens a save file read-only and validates that it contains
// at least one known entity table.
func OpenSave(path string) (*SQLiteStore, error) {
	return openStore(path, sqlite.OpenReadOnly)
}

// OpenSaveRW opens a save file for mutation. The same schema check
// applies; the file is never created.
func OpenSaveRW(path string) (*SQLiteStore, error) {
	return openStore(path, sqlite.OpenReadWrite)
}

func openStore(path string, flags sqlite.OpenFlags) (*SQLiteStore, error) {
	conn, err := sqlite.OpenConn(path, flags)
	if err != nil {
		return nil, fmt.Errorf("opening save %s: %w", path, err)
	}

	store := &SQLiteStore{conn: conn, path: path}
	tables, err := store.Tables()
	if err != nil {
		conn.Close()
		return nil, err
	}

	known := knownTables()
	for t := range tables {
		if known[t] {
			return store, nil
		}
	}
	conn.Close()
	return nil, fmt.Errorf("%s: %w", path, ErrNotASave)
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Path returns the save file path this store was opened on.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Tables returns the set of table names present in the save file.
func (s *SQLiteStore) Tables() (map[string]bool, error) {
	tables := make(map[string]bool)
	err := sqlitex.Execute(s.conn,
		"SELECT name FROM sqlite_master WHERE type = 'table'",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				tables[stmt.ColumnText(0)] = true
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("listing tables in %s: %w", s.path, err)
	}
	return tables, nil
}

// Read implements RowStore.
func (s *SQLiteStore) Read(table string, key Key) ([]byte, bool, error) {
	if !KnownTable(table) {
		return nil, false, fmt.Errorf("%q: %w", table, ErrUnknownTable)
	}

	var data []byte
	found := false

	query := fmt.Sprintf(`SELECT data FROM "%s" WHERE key = ?`, table)
	err := sqlitex.Execute(s.conn, query, &sqlitex.ExecOptions{
		Args: []any{key.arg()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			data = make([]byte, stmt.ColumnLen(0))
			stmt.ColumnBytes(0, data)
			found = true
			return nil
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("reading %s[%s]: %w", table, key, err)
	}
	return data, found, nil
}

// Write implements RowStore.
func (s *SQLiteStore) Write(table string, key Key, data []byte) error {
	if !KnownTable(table) {
		return fmt.Errorf("%q: %w", table, ErrUnknownTable)
	}

	query := fmt.Sprintf(`UPDATE "%s" SET data = ? WHERE key = ?`, table)
	err := sqlitex.Execute(s.conn, query, &sqlitex.ExecOptions{
		Args: []any{data, key.arg()},
	})
	if err != nil {
		return fmt.Errorf("writing %s[%s]: %w", table, key, err)
	}
	return nil
}
