package report

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"drift-detector/core/compare"
	"drift-detector/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixtureReport builds a small report with one drifted category and one
// clean one.
func fixtureReport() *Report {
	tables := &compare.Result{
		Matches: []compare.Record{
			{"schema": "dbo", "name": "Customers", "type": "BASE TABLE"},
		},
		Differences: []compare.DiffEntry{
			{
				Identity: []string{"dbo", "Orders"},
				Source:   compare.Record{"schema": "dbo", "name": "Orders", "engine": "InnoDB"},
				Target:   compare.Record{"schema": "dbo", "name": "Orders", "engine": "MyISAM"},
				Changed: map[string]compare.ValuePair{
					"engine": {Source: "InnoDB", Target: "MyISAM"},
				},
			},
		},
		SourceOnly: []compare.Record{
			{"schema": "dbo", "name": "Orphan", "type": "BASE TABLE"},
		},
		TargetOnly: []compare.Record{},
	}
	views := &compare.Result{
		Matches:     []compare.Record{{"schema": "dbo", "name": "ActiveOrders"}},
		Differences: []compare.DiffEntry{},
		SourceOnly:  []compare.Record{},
		TargetOnly:  []compare.Record{},
	}

	run := &compare.RunResult{
		Results: map[string]*compare.Result{"Tables": tables, "Views": views},
		Errors:  map[string]error{},
		Summaries: []compare.CategorySummary{
			{Category: "Tables", Matches: 1, Differences: 1, SourceOnly: 1, Total: 3},
			{Category: "Views", Matches: 1, Total: 1},
		},
	}

	return New(
		Endpoint{Label: "production", Address: "db1:3306/shop"},
		Endpoint{Label: "staging", Address: "db2:3306/shop"},
		run,
	)
}

func TestNewReport(t *testing.T) {
	r := fixtureReport()
	assert.NotEmpty(t, r.RunID)
	assert.True(t, r.Drift)

	total := r.Totals()
	assert.Equal(t, 2, total.Matches)
	assert.Equal(t, 1, total.Differences)
	assert.Equal(t, 4, total.Total)
}

func TestWriteAndLoadJSON(t *testing.T) {
	r := fixtureReport()
	path := filepath.Join(t.TempDir(), "reports", "report.json")

	require.NoError(t, r.WriteJSON(path))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, r.RunID, loaded.RunID)
	assert.Equal(t, r.Source.Label, loaded.Source.Label)
	require.Contains(t, loaded.Results, "Tables")
	assert.Len(t, loaded.Results["Tables"].Differences, 1)
}

func TestLoadJSON_MissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, fixtureReport())

	out := buf.String()
	assert.Contains(t, out, "Tables")
	assert.Contains(t, out, "Views")
	assert.Contains(t, out, "DRIFT")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "Drift detected")
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixtureReport().RenderHTML(&buf))

	out := buf.String()
	assert.Contains(t, out, "Schema drift report")
	assert.Contains(t, out, "dbo.Orders")
	assert.Contains(t, out, "InnoDB")
	assert.Contains(t, out, "MyISAM")
	assert.Contains(t, out, "dbo.Orphan")
	// The clean category gets no drill-down section.
	assert.NotContains(t, out, "<h2>Views</h2>")
}

func TestWriteExcel(t *testing.T) {
	r := fixtureReport()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, r.WriteExcel(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Tables")
	// Clean categories get no sheet.
	assert.NotContains(t, sheets, "Views")

	kind, err := f.GetCellValue("Tables", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Difference", kind)
}

func TestPublish(t *testing.T) {
	r := fixtureReport()
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, r.WriteJSON(jsonPath))

	t.Run("bucket exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drift-reports").Return(true, nil)
		client.On("PutObject", mock.Anything, "drift-reports", r.RunID+"/report.json",
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		err := Publish(context.Background(), client, "drift-reports", r, []string{jsonPath})
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("bucket created when missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drift-reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "drift-reports", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "drift-reports", mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		err := Publish(context.Background(), client, "drift-reports", r, []string{jsonPath})
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("missing artifact", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drift-reports").Return(true, nil)

		err := Publish(context.Background(), client, "drift-reports", r, []string{filepath.Join(dir, "nope.xlsx")})
		assert.Error(t, err)
	})
}
