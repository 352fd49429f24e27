package catalog

import (
	"context"

	"drift-detector/core/compare"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fetcher pulls catalog snapshots for one endpoint, one raw result per
// category. Both sides of a comparison use their own Fetcher over their
// own connection.
type Fetcher struct {
	db     *gorm.DB
	schema string
	log    *zap.Logger
}

// NewFetcher creates a fetcher for the given connection and schema.
func NewFetcher(db *gorm.DB, schema string, log *zap.Logger) *Fetcher {
	return &Fetcher{db: db, schema: schema, log: log}
}

// FetchAll runs every category query and collects the raw results.
//
// A failed query is logged and recorded as absent (nil), which the
// comparison engine normalizes to an empty dataset. The engine never
// distinguishes a failed fetch from a legitimately empty category, so no
// error escapes here.
func (f *Fetcher) FetchAll(ctx context.Context) map[string]*compare.Raw {
	results := make(map[string]*compare.Raw, len(queries))
	for _, q := range queries {
		raw, err := f.fetch(ctx, q)
		if err != nil {
			f.log.Warn("catalog query failed, category treated as empty",
				zap.String("category", q.Category),
				zap.String("schema", f.schema),
				zap.Error(err),
			)
			results[q.Category] = nil
			continue
		}
		results[q.Category] = raw
	}
	return results
}

// Fetch runs the query for a single category.
func (f *Fetcher) Fetch(ctx context.Context, category string) (*compare.Raw, error) {
	for _, q := range queries {
		if q.Category == category {
			return f.fetch(ctx, q)
		}
	}
	return nil, nil
}

func (f *Fetcher) fetch(ctx context.Context, q query) (*compare.Raw, error) {
	var rows []map[string]any

	tx := f.db.WithContext(ctx)
	if q.SchemaScoped {
		tx = tx.Raw(q.SQL, f.schema)
	} else {
		tx = tx.Raw(q.SQL)
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []map[string]any{}
	}
	return &compare.Raw{Rows: rows}, nil
}

// CategoryNames lists the categories this fetcher knows how to query,
// in query order.
func CategoryNames() []string {
	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Category
	}
	return names
}
