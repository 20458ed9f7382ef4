// Package warehouse runs generated SQL against the analytical database and
// exposes its catalog. The client is read-oriented: it never owns schema
// objects, it only queries what the warehouse already has.
package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloo-solutions/datachat/internal/domain"
)

// DefaultQueryTimeout bounds a single warehouse query.
const DefaultQueryTimeout = 60 * time.Second

// Client executes queries over a pgx pool.
type Client struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewClient wraps a pool with the default query timeout.
func NewClient(pool *pgxpool.Pool) *Client {
	return NewClientWithTimeout(pool, DefaultQueryTimeout)
}

// NewClientWithTimeout wraps a pool with an explicit per-query timeout.
func NewClientWithTimeout(pool *pgxpool.Pool, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &Client{pool: pool, timeout: timeout}
}

// Execute runs a query and materializes the full result set. Numeric values
// come back as float64 so downstream summarization can aggregate them without
// caring about the warehouse's declared precision.
func (c *Client) Execute(ctx context.Context, query string) (*domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	table := &domain.Table{Columns: columnNames(rows.FieldDescriptions())}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return table, nil
}

// GetSchema reads the warehouse catalog from information_schema. Tables come
// back in name order and columns in ordinal order, so two calls against an
// unchanged catalog return identical descriptors.
func (c *Client) GetSchema(ctx context.Context) (domain.SchemaDescriptor, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rows, err := c.pool.Query(ctx, `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	defer rows.Close()

	var schema domain.SchemaDescriptor
	for rows.Next() {
		var tableName, columnName, dataType string
		if err := rows.Scan(&tableName, &columnName, &dataType); err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		if len(schema) == 0 || schema[len(schema)-1].Name != tableName {
			schema = append(schema, domain.TableSchema{Name: tableName})
		}
		last := &schema[len(schema)-1]
		last.Columns = append(last.Columns, domain.ColumnSchema{Name: columnName, DataType: dataType})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return schema, nil
}

// Preview returns the first limit rows of a table. The table name must come
// from the catalog, never from user input.
func (c *Client) Preview(ctx context.Context, table string, limit int) (*domain.Table, error) {
	if limit <= 0 {
		limit = 10
	}
	ident := pgx.Identifier{table}
	return c.Execute(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", ident.Sanitize(), limit))
}

func columnNames(fields []pgconn.FieldDescription) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// normalizeValue maps driver types onto plain Go values. pgtype.Numeric is
// the one that matters: without this, aggregate columns would not be
// recognized as numeric by the summarizer.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case time.Time:
		return n.Format(time.RFC3339)
	}
	return v
}
