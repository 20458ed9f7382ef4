package vectorstore

import (
	"context"
	"fmt"

	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PostgresStore persists chunk vectors in a pgvector-enabled Postgres
// database. Cosine distance ordering with a seq tie-break gives the same
// ranking contract as the memory store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool. The
// knowledge_chunks table must exist; see migrations/.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Insert appends chunks in a single transaction so a concurrent Search never
// observes a half-inserted batch.
func (s *PostgresStore) Insert(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin insert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range chunks {
		if len(c.Embedding) == 0 {
			return fmt.Errorf("chunk %s has no embedding", c.ID)
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO knowledge_chunks (id, source_tag, content, embedding)
			 VALUES ($1, $2, $3, $4)`,
			c.ID,
			c.SourceTag,
			c.Text,
			pgvector.NewVector(Normalize(c.Embedding)),
		)
		if err != nil {
			return fmt.Errorf("failed to insert chunk %s: %w", c.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// Search returns the top-k chunks by cosine similarity, ties broken by
// insertion order. An empty table yields an empty result.
func (s *PostgresStore) Search(ctx context.Context, embedding []float32, k int) ([]Match, error) {
	if k <= 0 {
		return []Match{}, nil
	}

	query := pgvector.NewVector(Normalize(embedding))
	rows, err := s.pool.Query(ctx,
		`SELECT id, source_tag, content, seq, 1 - (embedding <=> $1) AS score
		 FROM knowledge_chunks
		 ORDER BY embedding <=> $1, seq
		 LIMIT $2`,
		query, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	defer rows.Close()

	matches := make([]Match, 0, k)
	for rows.Next() {
		var m Match
		var score float64
		if err := rows.Scan(&m.Chunk.ID, &m.Chunk.SourceTag, &m.Chunk.Text, &m.Chunk.Seq, &score); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		m.Score = float32(score)
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk rows: %w", err)
	}

	return matches, nil
}
