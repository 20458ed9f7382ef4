package domain

// ColumnSchema describes a single warehouse column.
type ColumnSchema struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

// TableSchema describes a warehouse table with its columns in ordinal order.
type TableSchema struct {
	Name    string         `json:"name"`
	Columns []ColumnSchema `json:"columns"`
}

// SchemaDescriptor is the ordered set of tables available for query
// generation. An ordered slice rather than a map, so prompt serialization is
// deterministic in catalog order.
type SchemaDescriptor []TableSchema

// Table returns the schema for the named table, if present.
func (s SchemaDescriptor) Table(name string) (TableSchema, bool) {
	for _, t := range s {
		if t.Name == name {
			return t, true
		}
	}
	return TableSchema{}, false
}
