package domain

// Table holds an ordered tabular result from the warehouse.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// AnswerResult is the structured outcome of processing a single question.
// Failures never escape the router; they land in Error with a user-readable
// Answer alongside.
type AnswerResult struct {
	Answer         string              `json:"answer"`
	Table          *Table              `json:"table,omitempty"`
	GeneratedQuery string              `json:"generated_query,omitempty"`
	Classification QueryClassification `json:"classification,omitempty"`
	Error          string              `json:"error,omitempty"`
}
