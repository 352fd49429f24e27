package catalog

// query binds one descriptor-table category to its catalog SQL.
// Column aliases are lowercase and match the key/ignore columns the
// compare package's descriptor table declares for the category.
type query struct {
	// Category is the descriptor-table name this query feeds.
	Category string

	// SQL is the catalog statement, run against information_schema
	// (or performance_schema for server options).
	SQL string

	// SchemaScoped marks queries taking the compared schema as the
	// single placeholder argument. Server-wide categories (character
	// sets, collations, users, options) are not scoped.
	SchemaScoped bool
}

// queries lists one catalog query per category, in descriptor-table order.
// A query that fails on an older server (e.g. CHECK_CONSTRAINTS before
// MySQL 8.0.16) degrades to an absent result for that category, which the
// engine treats as an empty dataset.
var queries = []query{
	{
		Category:     "Schemas",
		SchemaScoped: true,
		SQL: "SELECT SCHEMA_NAME AS `schema`, DEFAULT_CHARACTER_SET_NAME AS `charset`, DEFAULT_COLLATION_NAME AS `collation` " +
			"FROM information_schema.SCHEMATA WHERE SCHEMA_NAME = ?",
	},
	{
		Category:     "Tables",
		SchemaScoped: true,
		SQL: "SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `name`, TABLE_TYPE AS `type`, ENGINE AS `engine`, " +
			"ROW_FORMAT AS `row_format`, TABLE_COLLATION AS `collation`, TABLE_COMMENT AS `comment`, " +
			"CREATE_TIME AS `create_time`, UPDATE_TIME AS `update_time`, TABLE_ROWS AS `table_rows`, " +
			"DATA_LENGTH AS `data_length`, INDEX_LENGTH AS `index_length`, AUTO_INCREMENT AS `auto_increment` " +
			"FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME",
	},
	{
		Category:     "Columns",
		SchemaScoped: true,
		SQL: "SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `table`, COLUMN_NAME AS `column`, " +
			"ORDINAL_POSITION AS `position`, COLUMN_TYPE AS `column_type`, IS_NULLABLE AS `is_nullable`, " +
			"COLUMN_DEFAULT AS `column_default`, EXTRA AS `extra`, CHARACTER_SET_NAME AS `charset`, " +
			"COLLATION_NAME AS `collation`, COLUMN_COMMENT AS `comment` " +
			"FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, ORDINAL_POSITION",
	},
	{
		Category:     "Indexes",
		SchemaScoped: true,
		SQL: "SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `table`, INDEX_NAME AS `index`, " +
			"SEQ_IN_INDEX AS `seq_in_index`, COLUMN_NAME AS `column`, NON_UNIQUE AS `non_unique`, " +
			"INDEX_TYPE AS `index_type`, CARDINALITY AS `cardinality` " +
			"FROM information_schema.STATISTICS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, INDEX_NAME, SEQ_IN_INDEX",
	},
	{
		Category:     "Views",
		SchemaScoped: true,
		SQL: "SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `name`, VIEW_DEFINITION AS `definition`, " +
			"CHECK_OPTION AS `check_option`, IS_UPDATABLE AS `is_updatable`, DEFINER AS `definer`, " +
			"SECURITY_TYPE AS `security_type` " +
			"FROM information_schema.VIEWS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME",
	},
	{
		Category:     "Functions",
		SchemaScoped: true,
		SQL: "SELECT ROUTINE_SCHEMA AS `schema`, ROUTINE_NAME AS `name`, DATA_TYPE AS `returns`, " +
			"ROUTINE_DEFINITION AS `definition`, IS_DETERMINISTIC AS `is_deterministic`, " +
			"SECURITY_TYPE AS `security_type`, DEFINER AS `definer`, CREATED AS `created`, LAST_ALTERED AS `last_altered` " +
			"FROM information_schema.ROUTINES WHERE ROUTINE_SCHEMA = ? AND ROUTINE_TYPE = 'FUNCTION' ORDER BY ROUTINE_NAME",
	},
	{
		Category:     "Procedures",
		SchemaScoped: true,
		SQL: "SELECT ROUTINE_SCHEMA AS `schema`, ROUTINE_NAME AS `name`, ROUTINE_DEFINITION AS `definition`, " +
			"IS_DETERMINISTIC AS `is_deterministic`, SECURITY_TYPE AS `security_type`, DEFINER AS `definer`, " +
			"CREATED AS `created`, LAST_ALTERED AS `last_altered` " +
			"FROM information_schema.ROUTINES WHERE ROUTINE_SCHEMA = ? AND ROUTINE_TYPE = 'PROCEDURE' ORDER BY ROUTINE_NAME",
	},
	{
		Category:     "Triggers",
		SchemaScoped: true,
		SQL: "SELECT TRIGGER_SCHEMA AS `schema`, EVENT_OBJECT_TABLE AS `table`, TRIGGER_NAME AS `trigger`, " +
			"ACTION_TIMING AS `timing`, EVENT_MANIPULATION AS `event`, ACTION_STATEMENT AS `statement`, " +
			"DEFINER AS `definer`, CREATED AS `created` " +
			"FROM information_schema.TRIGGERS WHERE TRIGGER_SCHEMA = ? ORDER BY EVENT_OBJECT_TABLE, TRIGGER_NAME",
	},
	{
		Category:     "Events",
		SchemaScoped: true,
		SQL: "SELECT EVENT_SCHEMA AS `schema`, EVENT_NAME AS `name`, EVENT_TYPE AS `type`, STATUS AS `status`, " +
			"EVENT_DEFINITION AS `definition`, DEFINER AS `definer`, CREATED AS `created`, " +
			"LAST_ALTERED AS `last_altered`, LAST_EXECUTED AS `last_executed` " +
			"FROM information_schema.EVENTS WHERE EVENT_SCHEMA = ? ORDER BY EVENT_NAME",
	},
	{
		Category:     "Table Constraints",
		SchemaScoped: true,
		SQL: "SELECT CONSTRAINT_SCHEMA AS `schema`, TABLE_NAME AS `table`, CONSTRAINT_NAME AS `constraint`, " +
			"CONSTRAINT_TYPE AS `type` " +
			"FROM information_schema.TABLE_CONSTRAINTS WHERE CONSTRAINT_SCHEMA = ? ORDER BY TABLE_NAME, CONSTRAINT_NAME",
	},
	{
		Category:     "Foreign Keys",
		SchemaScoped: true,
		SQL: "SELECT k.CONSTRAINT_SCHEMA AS `schema`, k.TABLE_NAME AS `table`, k.CONSTRAINT_NAME AS `constraint`, " +
			"k.COLUMN_NAME AS `column`, k.REFERENCED_TABLE_NAME AS `referenced_table`, " +
			"k.REFERENCED_COLUMN_NAME AS `referenced_column`, r.UPDATE_RULE AS `update_rule`, r.DELETE_RULE AS `delete_rule` " +
			"FROM information_schema.KEY_COLUMN_USAGE k " +
			"JOIN information_schema.REFERENTIAL_CONSTRAINTS r " +
			"ON r.CONSTRAINT_SCHEMA = k.CONSTRAINT_SCHEMA AND r.CONSTRAINT_NAME = k.CONSTRAINT_NAME " +
			"WHERE k.CONSTRAINT_SCHEMA = ? AND k.REFERENCED_TABLE_NAME IS NOT NULL " +
			"ORDER BY k.TABLE_NAME, k.CONSTRAINT_NAME, k.ORDINAL_POSITION",
	},
	{
		Category:     "Check Constraints",
		SchemaScoped: true,
		SQL: "SELECT CONSTRAINT_SCHEMA AS `schema`, CONSTRAINT_NAME AS `constraint`, CHECK_CLAUSE AS `clause` " +
			"FROM information_schema.CHECK_CONSTRAINTS WHERE CONSTRAINT_SCHEMA = ? ORDER BY CONSTRAINT_NAME",
	},
	{
		Category:     "Partitions",
		SchemaScoped: true,
		SQL: "SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `table`, PARTITION_NAME AS `partition`, " +
			"PARTITION_METHOD AS `method`, PARTITION_EXPRESSION AS `expression`, " +
			"PARTITION_DESCRIPTION AS `description`, TABLE_ROWS AS `table_rows`, CREATE_TIME AS `create_time` " +
			"FROM information_schema.PARTITIONS WHERE TABLE_SCHEMA = ? AND PARTITION_NAME IS NOT NULL " +
			"ORDER BY TABLE_NAME, PARTITION_ORDINAL_POSITION",
	},
	{
		Category: "Character Sets",
		SQL: "SELECT CHARACTER_SET_NAME AS `charset`, DEFAULT_COLLATE_NAME AS `default_collation`, " +
			"DESCRIPTION AS `description`, MAXLEN AS `maxlen` " +
			"FROM information_schema.CHARACTER_SETS ORDER BY CHARACTER_SET_NAME",
	},
	{
		Category: "Collations",
		SQL: "SELECT COLLATION_NAME AS `collation`, CHARACTER_SET_NAME AS `charset`, IS_DEFAULT AS `is_default`, " +
			"IS_COMPILED AS `is_compiled`, SORTLEN AS `sortlen` " +
			"FROM information_schema.COLLATIONS ORDER BY COLLATION_NAME",
	},
	{
		Category: "Users",
		SQL: "SELECT GRANTEE AS `grantee`, PRIVILEGE_TYPE AS `privilege`, IS_GRANTABLE AS `is_grantable` " +
			"FROM information_schema.USER_PRIVILEGES ORDER BY GRANTEE, PRIVILEGE_TYPE",
	},
	{
		Category: "Database Options",
		SQL: "SELECT VARIABLE_NAME AS `option_name`, VARIABLE_VALUE AS `value` " +
			"FROM performance_schema.global_variables ORDER BY VARIABLE_NAME",
	},
}
