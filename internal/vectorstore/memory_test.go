package vectorstore

import (
	"context"
	"sync"
	"testing"

	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(id string, embedding []float32) domain.Chunk {
	return domain.Chunk{ID: id, Text: "text-" + id, SourceTag: "test", Embedding: embedding}
}

func TestMemoryStore_Search_OrdersByDescendingSimilarity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Insert(ctx, []domain.Chunk{
		chunk("far", []float32{0, 1, 0}),
		chunk("near", []float32{1, 0.1, 0}),
		chunk("exact", []float32{1, 0, 0}),
	}))

	matches, err := store.Search(ctx, []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "exact", matches[0].Chunk.ID)
	assert.Equal(t, "near", matches[1].Chunk.ID)
	assert.Equal(t, "far", matches[2].Chunk.ID)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	assert.GreaterOrEqual(t, matches[1].Score, matches[2].Score)
}

func TestMemoryStore_Search_TiesBrokenByInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Identical vectors score identically; the earlier insert must win.
	require.NoError(t, store.Insert(ctx, []domain.Chunk{
		chunk("first", []float32{1, 0, 0}),
		chunk("second", []float32{1, 0, 0}),
	}))

	matches, err := store.Search(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Chunk.ID)
	assert.Equal(t, "second", matches[1].Chunk.ID)
}

func TestMemoryStore_Search_KLargerThanStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Insert(ctx, []domain.Chunk{
		chunk("only", []float32{0.5, 0.5, 0}),
	}))

	matches, err := store.Search(ctx, []float32{1, 0, 0}, 100)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMemoryStore_Search_EmptyStore(t *testing.T) {
	store := NewMemoryStore()

	matches, err := store.Search(context.Background(), []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryStore_Search_ZeroK(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, []domain.Chunk{chunk("a", []float32{1, 0, 0})}))

	matches, err := store.Search(ctx, []float32{1, 0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryStore_Insert_RejectsMixedDimensions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, []domain.Chunk{chunk("a", []float32{1, 0, 0})}))

	err := store.Insert(ctx, []domain.Chunk{chunk("b", []float32{1, 0})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestMemoryStore_Insert_RejectsMissingEmbedding(t *testing.T) {
	store := NewMemoryStore()

	err := store.Insert(context.Background(), []domain.Chunk{{ID: "empty"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no embedding")
}

func TestMemoryStore_Search_ScoresAreCosine(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Unnormalized input must still score as cosine similarity.
	require.NoError(t, store.Insert(ctx, []domain.Chunk{chunk("long", []float32{10, 0, 0})}))

	matches, err := store.Search(ctx, []float32{3, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.InDelta(t, 1.0, float64(matches[0].Score), 1e-5)
}

func TestMemoryStore_ConcurrentSearches(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, []domain.Chunk{
		chunk("a", []float32{1, 0, 0}),
		chunk("b", []float32{0, 1, 0}),
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, err := store.Search(ctx, []float32{1, 0, 0}, 2)
			assert.NoError(t, err)
			assert.Len(t, matches, 2)
		}()
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	t.Run("produces a unit vector", func(t *testing.T) {
		out := Normalize([]float32{3, 4})
		assert.InDelta(t, 0.6, float64(out[0]), 1e-6)
		assert.InDelta(t, 0.8, float64(out[1]), 1e-6)
	})

	t.Run("leaves zero vectors unchanged", func(t *testing.T) {
		out := Normalize([]float32{0, 0})
		assert.Equal(t, []float32{0, 0}, out)
	})
}
