package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/cloo-solutions/datachat/internal/vectorstore"
)

type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]float32), args.Error(1)
	}
	return nil, args.Error(1)
}

// keywordEmbedder maps texts onto axes so similarity is predictable: texts
// sharing a keyword land on the same axis.
type keywordEmbedder struct {
	axes map[string]int
}

func (e *keywordEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	v := make([]float32, 4)
	v[0] = 0.01
	for keyword, axis := range e.axes {
		if strings.Contains(text, keyword) {
			v[axis] = 1
		}
	}
	return v, nil
}

func TestRetrievalEngine_IngestAndRetrieve(t *testing.T) {
	embedder := &keywordEmbedder{axes: map[string]int{"revenue": 1, "stores": 2}}
	store := vectorstore.NewMemoryStore()
	engine := NewRetrievalEngine(embedder, store)

	docs := []domain.Document{
		{SourceTag: "metrics", Text: "Total revenue is the sum of all sales amounts."},
		{SourceTag: "schema", Text: "The stores table holds one row per physical store."},
	}
	require.NoError(t, engine.Ingest(context.Background(), docs))
	assert.Equal(t, 2, store.Len())

	matches, err := engine.Retrieve(context.Background(), "how is revenue calculated?", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "metrics", matches[0].Chunk.SourceTag)
}

func TestRetrievalEngine_Ingest_EmptyDocument(t *testing.T) {
	engine := NewRetrievalEngine(new(MockEmbedder), vectorstore.NewMemoryStore())

	err := engine.Ingest(context.Background(), []domain.Document{{SourceTag: "x", Text: "   "}})
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestRetrievalEngine_Ingest_EmbeddingFailure(t *testing.T) {
	embedder := new(MockEmbedder)
	embedder.On("GenerateEmbedding", mock.Anything, mock.Anything).
		Return(nil, errors.New("api unavailable"))
	engine := NewRetrievalEngine(embedder, vectorstore.NewMemoryStore())

	err := engine.Ingest(context.Background(), []domain.Document{{SourceTag: "metrics", Text: "some text"}})
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeRetrieval, domain.ErrorCode(err))
}

func TestRetrievalEngine_Ingest_AppendOnly(t *testing.T) {
	embedder := &keywordEmbedder{axes: map[string]int{}}
	store := vectorstore.NewMemoryStore()
	engine := NewRetrievalEngine(embedder, store)

	doc := []domain.Document{{SourceTag: "metrics", Text: "Average Order Value is the mean TOTAL_AMOUNT."}}
	require.NoError(t, engine.Ingest(context.Background(), doc))
	require.NoError(t, engine.Ingest(context.Background(), doc))

	// Re-ingesting the same document appends new chunks rather than replacing.
	assert.Equal(t, 2, store.Len())
}

func TestRetrievalEngine_NoEmbedderConfigured(t *testing.T) {
	engine := NewRetrievalEngine(nil, vectorstore.NewMemoryStore())

	err := engine.Ingest(context.Background(), []domain.Document{{SourceTag: "metrics", Text: "text"}})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = engine.Retrieve(context.Background(), "query", 3)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestRetrievalEngine_RelevantContext_EmptyStore(t *testing.T) {
	embedder := new(MockEmbedder)
	embedder.On("GenerateEmbedding", mock.Anything, "anything at all").
		Return([]float32{1, 0, 0}, nil)
	engine := NewRetrievalEngine(embedder, vectorstore.NewMemoryStore())

	got, err := engine.RelevantContext(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Equal(t, NoRelevantContext, got)
}

func TestRetrievalEngine_Retrieve_EmbeddingFailure(t *testing.T) {
	embedder := new(MockEmbedder)
	embedder.On("GenerateEmbedding", mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))
	engine := NewRetrievalEngine(embedder, vectorstore.NewMemoryStore())

	_, err := engine.Retrieve(context.Background(), "query", 3)
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeRetrieval, domain.ErrorCode(err))
}

func TestFormatContext(t *testing.T) {
	matches := []vectorstore.Match{
		{Chunk: domain.Chunk{SourceTag: "schema", Text: "FACT_SALES holds transactions."}},
		{Chunk: domain.Chunk{Text: "Orphan chunk."}},
	}

	got := FormatContext(matches)

	assert.Equal(t,
		"Context 1 (Source: schema):\nFACT_SALES holds transactions.\n\n"+
			"Context 2 (Source: unknown):\nOrphan chunk.",
		got)
}

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, NoRelevantContext, FormatContext(nil))
	assert.Equal(t, NoRelevantContext, FormatContext([]vectorstore.Match{}))
}
