package save

// Category describes one place renameable entities live in a save
// file: a table, an optional exact key filter, and the parser that
// understands its blobs. Adding support for new entity kinds means
// adding a Category here, not changing any scanning logic.
type Category struct {
	ID          string // unique key, e.g. "team_cats"
	DisplayName string
	Table       string // SQLite table name
	ParserID    string // catblob parser ID
	KeyFilter   string // exact key match in the table, "" scans all rows
	ReadOnly    bool
	Description string
	SortOrder   int
}

// Categories lists all known entity categories, in display order.
var Categories = []Category{
	{
		ID:          "team_cats",
		DisplayName: "Team Cats",
		Table:       "cats",
		ParserID:    "cat_blob",
		Description: "Your current team of cats",
		SortOrder:   10,
	},
	{
		ID:          "profile_cat",
		DisplayName: "Profile Cat",
		Table:       "files",
		KeyFilter:   "save_file_cat",
		ParserID:    "cat_blob",
		Description: "The cat shown on your save file",
		SortOrder:   20,
	},
	{
		ID:          "winning_teams",
		DisplayName: "Winning Teams",
		Table:       "winning_teams",
		ParserID:    "cat_blob",
		Description: "Cats from winning team compositions",
		SortOrder:   30,
	},
}

// CategoryByID returns the category with the given ID.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// KnownTable reports whether the table belongs to a registered
// category. Row reads and writes refuse any other name.
func KnownTable(name string) bool {
	return knownTables()[name]
}

// TableNames lists the registered tables in display order.
func TableNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, c.Table)
	}
	return names
}

// knownTables is the set of tables that identify a Mewgenics save.
func knownTables() map[string]bool {
	tables := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		tables[c.Table] = true
	}
	return tables
}
