package compare

import "fmt"

// ConfigurationError is the only error kind the comparator produces.
// It means a category's key column is absent from a non-empty dataset's
// schema, which makes the category impossible to compare. It is a setup
// failure for that category, never a per-record one.
type ConfigurationError struct {
	// Category is the name of the category that could not be compared.
	Category string

	// Column is the missing key column.
	Column string

	// Side names the dataset whose schema lacks the column ("source" or "target").
	Side string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("category %s: key column %q missing from %s dataset schema", e.Category, e.Column, e.Side)
}
