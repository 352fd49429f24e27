package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Nil(t *testing.T) {
	d := Normalize(nil)
	assert.True(t, d.Empty())
	assert.Empty(t, d.Columns)
}

func TestNormalize_EmptyUnion(t *testing.T) {
	d := Normalize(&Raw{})
	assert.True(t, d.Empty())
}

func TestNormalize_RowSet(t *testing.T) {
	raw := &Raw{Rows: []map[string]any{
		{"schema": "dbo", "name": "Foo"},
		{"schema": "dbo", "name": "Bar"},
	}}

	d := Normalize(raw)
	require.Len(t, d.Records, 2)
	assert.Equal(t, []string{"name", "schema"}, d.Columns)
	assert.Equal(t, "Foo", d.Records[0]["name"])
	assert.Equal(t, "Bar", d.Records[1]["name"])
}

func TestNormalize_SingleObject(t *testing.T) {
	raw := &Raw{Object: map[string]any{"option_name": "sql_mode", "value": "STRICT_TRANS_TABLES"}}

	d := Normalize(raw)
	require.Len(t, d.Records, 1)
	assert.Equal(t, []string{"option_name", "value"}, d.Columns)
	assert.Equal(t, "sql_mode", d.Records[0]["option_name"])
}

func TestNormalize_RaggedRowsFilledWithNil(t *testing.T) {
	raw := &Raw{Rows: []map[string]any{
		{"schema": "dbo", "name": "Foo", "engine": "InnoDB"},
		{"schema": "dbo", "name": "Bar"},
	}}

	d := Normalize(raw)
	require.Len(t, d.Records, 2)
	assert.True(t, d.HasColumn("engine"))
	assert.Equal(t, "InnoDB", d.Records[0]["engine"])
	assert.Nil(t, d.Records[1]["engine"])
}

func TestNormalize_EmptyRowSet(t *testing.T) {
	d := Normalize(&Raw{Rows: []map[string]any{}})
	assert.True(t, d.Empty())
	assert.Empty(t, d.Columns)
}

func TestNormalize_DeterministicColumnOrder(t *testing.T) {
	raw := &Raw{Rows: []map[string]any{
		{"z": 1, "a": 2, "m": 3},
	}}

	for i := 0; i < 10; i++ {
		d := Normalize(raw)
		assert.Equal(t, []string{"a", "m", "z"}, d.Columns)
	}
}
