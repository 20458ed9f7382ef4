package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Empty(t *testing.T) {
	var nilTable *Table
	assert.True(t, nilTable.Empty())
	assert.True(t, (&Table{Columns: []string{"a"}}).Empty())
	assert.False(t, (&Table{Columns: []string{"a"}, Rows: [][]any{{1}}}).Empty())
}

func TestTable_RowCount(t *testing.T) {
	var nilTable *Table
	assert.Equal(t, 0, nilTable.RowCount())

	table := &Table{Columns: []string{"a"}, Rows: [][]any{{1}, {2}, {3}}}
	assert.Equal(t, 3, table.RowCount())
}

func TestSchemaDescriptor_Table(t *testing.T) {
	schema := SchemaDescriptor{
		{Name: "fact_sales", Columns: []ColumnSchema{{Name: "total_amount", DataType: "numeric"}}},
		{Name: "dim_products", Columns: []ColumnSchema{{Name: "product_name", DataType: "text"}}},
	}

	got, ok := schema.Table("dim_products")
	assert.True(t, ok)
	assert.Equal(t, "dim_products", got.Name)

	_, ok = schema.Table("dim_missing")
	assert.False(t, ok)
}
