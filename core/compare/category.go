package compare

// CategoryConfig describes how one class of catalog objects is compared:
// which columns form the composite identity, and which columns are
// excluded from equality checks (but still carried for display).
type CategoryConfig struct {
	// Name is the display name of the category, unique across the table.
	Name string

	// KeyColumns is the ordered list of columns forming the identity.
	// Never empty.
	KeyColumns []string

	// IgnoreColumns lists columns excluded from the diff, typically
	// timestamps and volatile statistics. May be empty.
	IgnoreColumns map[string]struct{}
}

// Ignored reports whether the given column is excluded from equality checks.
func (c CategoryConfig) Ignored(column string) bool {
	_, ok := c.IgnoreColumns[column]
	return ok
}

func ignore(columns ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return set
}

// Categories is the static descriptor table driving the aggregator.
// One entry per object category; append-only. Column names match the
// aliases the catalog queries assign, so the same entry works for both
// endpoints regardless of server version casing.
var Categories = []CategoryConfig{
	{Name: "Schemas", KeyColumns: []string{"schema"}},
	{
		Name:       "Tables",
		KeyColumns: []string{"schema", "name"},
		IgnoreColumns: ignore(
			"create_time", "update_time", "table_rows",
			"data_length", "index_length", "auto_increment",
		),
	},
	{Name: "Columns", KeyColumns: []string{"schema", "table", "column"}},
	{
		Name:          "Indexes",
		KeyColumns:    []string{"schema", "table", "index", "seq_in_index"},
		IgnoreColumns: ignore("cardinality"),
	},
	{Name: "Views", KeyColumns: []string{"schema", "name"}},
	{
		Name:          "Functions",
		KeyColumns:    []string{"schema", "name"},
		IgnoreColumns: ignore("created", "last_altered"),
	},
	{
		Name:          "Procedures",
		KeyColumns:    []string{"schema", "name"},
		IgnoreColumns: ignore("created", "last_altered"),
	},
	{
		Name:          "Triggers",
		KeyColumns:    []string{"schema", "table", "trigger"},
		IgnoreColumns: ignore("created"),
	},
	{
		Name:          "Events",
		KeyColumns:    []string{"schema", "name"},
		IgnoreColumns: ignore("created", "last_altered", "last_executed"),
	},
	{Name: "Table Constraints", KeyColumns: []string{"schema", "table", "constraint"}},
	{Name: "Foreign Keys", KeyColumns: []string{"schema", "table", "constraint", "column"}},
	{Name: "Check Constraints", KeyColumns: []string{"schema", "constraint"}},
	{
		Name:          "Partitions",
		KeyColumns:    []string{"schema", "table", "partition"},
		IgnoreColumns: ignore("table_rows", "create_time"),
	},
	{Name: "Character Sets", KeyColumns: []string{"charset"}},
	{Name: "Collations", KeyColumns: []string{"collation"}},
	{Name: "Users", KeyColumns: []string{"grantee", "privilege"}},
	{Name: "Database Options", KeyColumns: []string{"option_name"}},
}

// CategoryByName returns the descriptor entry with the given name,
// or false when no such category is registered.
func CategoryByName(name string) (CategoryConfig, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryConfig{}, false
}
