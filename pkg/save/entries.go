package save

import (
	"fmt"
	"sort"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/Wawax007/MewgenicsRenamer/pkg/catblob"
)

// Entry is one renameable row discovered in a save file.
type Entry struct {
	Table        string
	Key          Key
	CategoryID   string
	CategoryName string
	ReadOnly     bool // category is read-only, or the blob failed to parse
	BlobSize     int
	Name         string
	Warnings     []string
	ParseError   string // non-empty when the blob could not be parsed
}

// Entries scans every registered category table present in the save
// and parses each row's blob through the category's parser. Rows whose
// blobs do not parse are included read-only with a placeholder name,
// so callers can still show them.
func (s *SQLiteStore) Entries(limits catblob.DetectLimits) ([]Entry, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}

	categories := append([]Category(nil), Categories...)
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	var entries []Entry
	for _, cat := range categories {
		if !tables[cat.Table] {
			continue
		}

		rows, err := s.readRows(cat)
		if err != nil {
			return nil, err
		}

		parser := catblob.ParserFor(cat.ParserID, limits)
		for _, row := range rows {
			if len(row.data) == 0 {
				continue
			}

			entry := Entry{
				Table:        cat.Table,
				Key:          row.key,
				CategoryID:   cat.ID,
				CategoryName: cat.DisplayName,
				ReadOnly:     cat.ReadOnly,
				BlobSize:     len(row.data),
			}

			switch {
			case !parser.CanParse(row.data):
				entry.Name = "<unrecognized format>"
				entry.ParseError = "unrecognized blob format"
				entry.ReadOnly = true
			default:
				result, err := parser.Parse(row.data)
				if err != nil {
					entry.Name = "<error: " + err.Error() + ">"
					entry.ParseError = err.Error()
					entry.ReadOnly = true
					break
				}
				entry.Name = result.Name
				entry.Warnings = result.Warnings
			}

			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type row struct {
	key  Key
	data []byte
}

func (s *SQLiteStore) readRows(cat Category) ([]row, error) {
	query := fmt.Sprintf(`SELECT key, data FROM "%s"`, cat.Table)
	var args []any
	if cat.KeyFilter != "" {
		query += " WHERE key = ?"
		args = append(args, cat.KeyFilter)
	}

	var rows []row
	err := sqlitex.Execute(s.conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var key Key
			if stmt.ColumnType(0) == sqlite.TypeInteger {
				key = IntKey(stmt.ColumnInt64(0))
			} else {
				key = TextKey(stmt.ColumnText(0))
			}

			data := make([]byte, stmt.ColumnLen(1))
			stmt.ColumnBytes(1, data)
			rows = append(rows, row{key: key, data: data})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cat.Table, err)
	}
	return rows, nil
}
