package service

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/datachat/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoDataMessage is the fixed answer for empty query results.
const NoDataMessage = "I couldn't find any data matching your query. Please try rephrasing your question."

// enumerateRowLimit is the largest result that gets every row spelled out.
const enumerateRowLimit = 10

var numberPrinter = message.NewPrinter(language.English)

// SummarizeTable renders a query result as prose. The summary is
// deliberately rule-based rather than model-generated so numeric totals are
// exact, not hallucinated: row count, the sum of the first numeric column
// with thousands separators and two decimals, and a per-row enumeration for
// small results.
func SummarizeTable(table *domain.Table) string {
	if table.Empty() {
		return NoDataMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results.", table.RowCount())

	numericIdx, ok := firstNumericColumn(table)
	if !ok {
		return b.String()
	}

	total := columnSum(table, numericIdx)
	fmt.Fprintf(&b, " The total %s is %s.", table.Columns[numericIdx], formatAmount(total))

	if table.RowCount() <= enumerateRowLimit {
		b.WriteString(" Here are all the results:\n")
		for _, row := range table.Rows {
			b.WriteString("\n- ")
			b.WriteString(formatRow(row, numericIdx))
		}
	} else {
		fmt.Fprintf(&b, " Showing only the top results out of %d rows.", table.RowCount())
	}

	return b.String()
}

// firstNumericColumn finds the leftmost column whose first non-nil value is
// numeric.
func firstNumericColumn(table *domain.Table) (int, bool) {
	for col := range table.Columns {
		for _, row := range table.Rows {
			if col >= len(row) || row[col] == nil {
				continue
			}
			if _, ok := toFloat(row[col]); ok {
				return col, true
			}
			break
		}
	}
	return 0, false
}

func columnSum(table *domain.Table, col int) float64 {
	var total float64
	for _, row := range table.Rows {
		if col >= len(row) {
			continue
		}
		if v, ok := toFloat(row[col]); ok {
			total += v
		}
	}
	return total
}

// formatRow renders a row as a "label: value" pair: the first column labels
// the row and the first numeric value (or second column) quantifies it. A
// single-column row is just its formatted value.
func formatRow(row []any, numericIdx int) string {
	if len(row) == 0 {
		return ""
	}
	if len(row) == 1 {
		return formatValue(row[0])
	}

	valueIdx := numericIdx
	if valueIdx == 0 {
		valueIdx = 1
	}
	return fmt.Sprintf("%s: %s", formatValue(row[0]), formatValue(row[valueIdx]))
}

func formatValue(v any) string {
	if f, ok := toFloat(v); ok {
		return formatAmount(f)
	}
	return fmt.Sprintf("%v", v)
}

// formatAmount applies thousands separators and two decimal places.
func formatAmount(v float64) string {
	return numberPrinter.Sprintf("%.2f", v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
