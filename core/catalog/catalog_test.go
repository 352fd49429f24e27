package catalog

import (
	"context"
	"fmt"
	"testing"

	"drift-detector/core/compare"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFetch_SingleCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	fetcher := NewFetcher(db, "shop", zap.NewNop())

	rows := sqlmock.NewRows([]string{"schema", "name", "type", "engine"})
	rows.AddRow("shop", "orders", "BASE TABLE", "InnoDB")
	rows.AddRow("shop", "customers", "BASE TABLE", "InnoDB")

	mock.ExpectQuery("SELECT TABLE_SCHEMA AS `schema`, TABLE_NAME AS `name`.*FROM information_schema.TABLES").
		WithArgs("shop").
		WillReturnRows(rows)

	raw, err := fetcher.Fetch(context.Background(), "Tables")
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, "orders", fmt.Sprintf("%v", raw.Rows[0]["name"]))

	// The raw shape must normalize cleanly for the engine.
	dataset := compare.Normalize(raw)
	assert.Len(t, dataset.Records, 2)
	assert.True(t, dataset.HasColumn("schema"))
	assert.True(t, dataset.HasColumn("name"))
}

func TestFetch_EmptyCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	fetcher := NewFetcher(db, "shop", zap.NewNop())

	mock.ExpectQuery("FROM information_schema.VIEWS").
		WithArgs("shop").
		WillReturnRows(sqlmock.NewRows([]string{"schema", "name"}))

	raw, err := fetcher.Fetch(context.Background(), "Views")
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Empty(t, raw.Rows)
	assert.True(t, compare.Normalize(raw).Empty())
}

func TestFetchAll_FailedQueryDegradesToAbsent(t *testing.T) {
	db, mock := setupMockDB(t)
	fetcher := NewFetcher(db, "shop", zap.NewNop())

	// Every query errors; the fetcher must still return a full map with
	// every category present and absent.
	mock.MatchExpectationsInOrder(false)
	for range queries {
		mock.ExpectQuery(".*").WillReturnError(fmt.Errorf("access denied"))
	}

	results := fetcher.FetchAll(context.Background())
	assert.Len(t, results, len(queries))
	for _, q := range queries {
		raw, present := results[q.Category]
		assert.Truef(t, present, "category %s missing from results", q.Category)
		assert.Nil(t, raw)
		assert.True(t, compare.Normalize(raw).Empty())
	}
}

func TestCategoryNames_MatchDescriptorTable(t *testing.T) {
	// Every query must feed a registered category, with aliases covering
	// that category's key columns.
	for _, name := range CategoryNames() {
		cfg, ok := compare.CategoryByName(name)
		require.Truef(t, ok, "query category %s not in descriptor table", name)
		assert.NotEmpty(t, cfg.KeyColumns)
	}

	// And the other way round: no orphaned descriptor entries.
	queried := make(map[string]struct{})
	for _, name := range CategoryNames() {
		queried[name] = struct{}{}
	}
	for _, cfg := range compare.Categories {
		_, ok := queried[cfg.Name]
		assert.Truef(t, ok, "descriptor category %s has no catalog query", cfg.Name)
	}
}
