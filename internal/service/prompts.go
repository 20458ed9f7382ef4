package service

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/datachat/internal/domain"
)

// FormatSchema serializes the schema for prompt inclusion. Tables appear in
// catalog order and columns in ordinal order, so the same catalog always
// yields byte-identical prompts.
func FormatSchema(schema domain.SchemaDescriptor) string {
	var b strings.Builder
	for _, table := range schema {
		fmt.Fprintf(&b, "\n%s:\n", table.Name)
		for _, col := range table.Columns {
			fmt.Fprintf(&b, "  - %s (%s)\n", col.Name, col.DataType)
		}
	}
	return b.String()
}

func classificationPrompt(question string) string {
	return fmt.Sprintf(`Classify the following user question into one of these categories:
- data_query: Questions that need data from the database (sales, revenue, products, etc.)
- explanation: Questions about how things work, definitions, business rules
- general: General conversation or greetings

Question: %s

Respond with only one word: data_query, explanation, or general`, question)
}

func sqlPrompt(schema, context, question string) string {
	return fmt.Sprintf(`You are a SQL expert. Generate a SQL query to answer the user's question.

Database Schema:
%s

Relevant Context:
%s

User Question: %s

Rules:
1. Use fully qualified table names
2. Include appropriate JOINs based on foreign keys
3. Use aggregate functions when asking for totals, averages, etc.
4. Add ORDER BY and LIMIT clauses when asking for "top" items
5. Use date functions for time-based analysis
6. Return ONLY the SQL query, no explanations

SQL Query:`, schema, context, question)
}

func explanationPrompt(context, question string) string {
	return fmt.Sprintf(`Use the following context to answer the user's question.

Context:
%s

Question: %s

Provide a clear, helpful answer based on the context.`, context, question)
}

// stripCodeFences removes Markdown code-fence delimiters from a raw model
// response. Only an exact leading fence (with or without a language tag) and
// an exact trailing fence are removed; anything more aggressive could corrupt
// a legitimate query containing backticks.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		rest := s[3:]
		// Drop a language tag on the opening fence line, if any.
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 && isLanguageTag(strings.TrimSpace(rest[:idx])) {
			rest = rest[idx+1:]
		}
		s = rest
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}

// isLanguageTag reports whether a fence line is a bare language tag like
// "sql" rather than query text. Empty lines count; anything with uppercase
// letters or non-letters is treated as content.
func isLanguageTag(line string) bool {
	for _, r := range line {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
