// Package vectorstore provides the similarity index over knowledge chunk
// embeddings. Any implementation satisfying Store is acceptable to the
// retrieval engine; the exact-scan memory store and the pgvector-backed
// postgres store are both provided.
package vectorstore

import (
	"context"
	"math"

	"github.com/cloo-solutions/datachat/internal/domain"
)

// Match is a retrieved chunk with its similarity score.
type Match struct {
	Chunk domain.Chunk
	Score float32
}

// Store is the minimal capability set the retrieval engine depends on.
//
// Search must return matches ordered by descending similarity, ties broken by
// insertion order (earliest first). A k larger than the store size returns
// everything available. Insert holds an exclusive lock against concurrent
// Search so a result set never mixes pre- and mid-insertion index state.
type Store interface {
	Insert(ctx context.Context, chunks []domain.Chunk) error
	Search(ctx context.Context, embedding []float32, k int) ([]Match, error)
}

// Normalize returns the unit-length copy of v. All vectors are normalized at
// insertion and query time so dot products are directly comparable cosine
// scores. Zero vectors are returned unchanged.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := float32(math.Sqrt(sum))
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

func dot(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
