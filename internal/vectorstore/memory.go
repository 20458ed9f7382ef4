package vectorstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cloo-solutions/datachat/internal/domain"
)

// MemoryStore is an exact brute-force scan over normalized vectors. It is the
// default backend: the seed corpus is small enough that a linear scan beats
// index maintenance.
type MemoryStore struct {
	mu         sync.RWMutex
	chunks     []domain.Chunk
	dimensions int
	nextSeq    int64
}

// NewMemoryStore creates an empty in-memory store. The dimensionality is
// pinned by the first inserted vector and enforced afterwards.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert appends chunks to the store, normalizing their vectors and assigning
// insertion sequence numbers. The store grows monotonically; chunks are never
// deleted.
func (s *MemoryStore) Insert(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(c.Embedding) == 0 {
			return fmt.Errorf("chunk %s has no embedding", c.ID)
		}
		if s.dimensions == 0 {
			s.dimensions = len(c.Embedding)
		} else if len(c.Embedding) != s.dimensions {
			return fmt.Errorf("chunk %s has dimension %d, store expects %d",
				c.ID, len(c.Embedding), s.dimensions)
		}

		c.Embedding = Normalize(c.Embedding)
		c.Seq = s.nextSeq
		s.nextSeq++
		s.chunks = append(s.chunks, c)
	}

	return nil
}

// Search returns the top-k chunks by cosine similarity. An empty store
// returns an empty result, never an error.
func (s *MemoryStore) Search(ctx context.Context, embedding []float32, k int) ([]Match, error) {
	if k <= 0 {
		return []Match{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.chunks) == 0 {
		return []Match{}, nil
	}
	if len(embedding) != s.dimensions {
		return nil, fmt.Errorf("query has dimension %d, store expects %d", len(embedding), s.dimensions)
	}

	query := Normalize(embedding)
	matches := make([]Match, 0, len(s.chunks))
	for _, c := range s.chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches = append(matches, Match{Chunk: c, Score: dot(query, c.Embedding)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Chunk.Seq < matches[j].Chunk.Seq
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// Len returns the number of stored chunks.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}
