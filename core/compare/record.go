package compare

// Record is a single catalog row: column name -> value.
// Every column of the owning Dataset's schema is present in every record,
// with nil standing in for missing values.
type Record map[string]any

// Dataset is an ordered sequence of records sharing one column schema.
// A failed or missing fetch is represented as an empty Dataset, never as
// an error reaching the comparator.
type Dataset struct {
	// Columns is the schema, in deterministic order.
	Columns []string

	// Records holds the rows in fetch order.
	Records []Record
}

// Empty reports whether the dataset contains no records.
func (d Dataset) Empty() bool {
	return len(d.Records) == 0
}

// HasColumn reports whether the schema declares the given column.
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
