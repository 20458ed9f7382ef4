// Package migrations embeds the SQL migrations for the pgvector chunk store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
