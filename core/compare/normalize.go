package compare

import "sort"

// Raw is the discriminated union of result shapes a catalog query can
// produce: a row-set, a single decoded object, or nothing at all.
// A nil *Raw (or a Raw with neither field set) means the fetch failed or
// returned no data; both normalize to an empty Dataset.
type Raw struct {
	// Rows is a row-set result. May be empty.
	Rows []map[string]any

	// Object is a single decoded object, used when a query yields exactly
	// one logical row (e.g. server-wide options fetched as one document).
	Object map[string]any
}

// Normalize collapses a raw result into a uniform Dataset.
// It never fails: unrecognized or absent input degrades to an empty
// Dataset, and any warning about that belongs to the caller.
func Normalize(raw *Raw) Dataset {
	if raw == nil {
		return Dataset{}
	}

	if raw.Rows != nil {
		return fromRows(raw.Rows)
	}

	if raw.Object != nil {
		return fromRows([]map[string]any{raw.Object})
	}

	return Dataset{}
}

// fromRows builds a Dataset from a row-set. The schema is the union of
// all keys seen across rows, sorted for deterministic column order
// (map iteration order would otherwise leak into results). Rows missing
// a column get nil for it.
func fromRows(rows []map[string]any) Dataset {
	if len(rows) == 0 {
		return Dataset{}
	}

	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for name := range row {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(columns))
		for _, name := range columns {
			if val, ok := row[name]; ok {
				rec[name] = val
			} else {
				rec[name] = nil
			}
		}
		records = append(records, rec)
	}

	return Dataset{Columns: columns, Records: records}
}
