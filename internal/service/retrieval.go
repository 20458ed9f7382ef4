package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/cloo-solutions/datachat/internal/telemetry"
	"github.com/cloo-solutions/datachat/internal/vectorstore"
	"github.com/google/uuid"
)

// NoRelevantContext is returned by FormatContext when retrieval produced
// nothing. Prompt templates key off this exact sentinel.
const NoRelevantContext = "No relevant context found."

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 3

// Embedder defines the interface for generating embeddings
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// RetrievalEngine turns free text into retrievable chunks and answers "what
// is relevant to this question". Embedding failures are fatal for the current
// question: a wrong or empty context would corrupt downstream query
// generation, so there is no silent fallback.
type RetrievalEngine struct {
	embedder Embedder
	store    vectorstore.Store
	chunkCfg ChunkConfig
	topK     int
}

// NewRetrievalEngine creates an engine with default chunking and top-k.
func NewRetrievalEngine(embedder Embedder, store vectorstore.Store) *RetrievalEngine {
	return NewRetrievalEngineWithConfig(embedder, store, DefaultChunkConfig(), DefaultTopK)
}

// NewRetrievalEngineWithConfig creates an engine with explicit chunking and
// retrieval settings.
func NewRetrievalEngineWithConfig(embedder Embedder, store vectorstore.Store, chunkCfg ChunkConfig, topK int) *RetrievalEngine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RetrievalEngine{
		embedder: embedder,
		store:    store,
		chunkCfg: chunkCfg,
		topK:     topK,
	}
}

// Ingest splits each document into overlapping chunks, embeds them, and
// inserts them into the store. Each document forms one insertion batch; the
// store grows monotonically and previously ingested chunks are never
// re-embedded.
func (e *RetrievalEngine) Ingest(ctx context.Context, docs []domain.Document) error {
	ctx, span := telemetry.StartSpan(ctx, "RetrievalEngine.Ingest", telemetry.SpanAttributes{
		Operation: "ingest",
	})
	defer span.End()

	if e.embedder == nil {
		return domain.ErrNotConfigured
	}

	for _, doc := range docs {
		if strings.TrimSpace(doc.Text) == "" {
			return domain.ErrEmptyDocument
		}

		pieces := splitText(doc.Text, e.chunkCfg)
		chunks := make([]domain.Chunk, 0, len(pieces))
		for _, piece := range pieces {
			embedding, err := e.embedder.GenerateEmbedding(ctx, piece)
			if err != nil {
				return domain.NewDomainErrorWithCause(domain.ErrCodeRetrieval,
					fmt.Sprintf("failed to embed chunk of document %q", doc.SourceTag), err)
			}
			chunks = append(chunks, domain.Chunk{
				ID:        uuid.NewString(),
				Text:      piece,
				SourceTag: doc.SourceTag,
				Embedding: embedding,
			})
		}

		if err := e.store.Insert(ctx, chunks); err != nil {
			return domain.NewDomainErrorWithCause(domain.ErrCodeRetrieval,
				fmt.Sprintf("failed to index document %q", doc.SourceTag), err)
		}
	}

	return nil
}

// Retrieve embeds the query and returns the top-k most similar chunks in
// descending similarity order. An empty store yields an empty slice, never an
// error.
func (e *RetrievalEngine) Retrieve(ctx context.Context, query string, k int) ([]vectorstore.Match, error) {
	if e.embedder == nil {
		return nil, domain.ErrNotConfigured
	}

	embedding, err := e.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeRetrieval,
			"failed to embed query", err)
	}

	matches, err := e.store.Search(ctx, embedding, k)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeRetrieval,
			"similarity search failed", err)
	}
	return matches, nil
}

// RelevantContext retrieves the default top-k chunks and formats them for
// prompt inclusion.
func (e *RetrievalEngine) RelevantContext(ctx context.Context, query string) (string, error) {
	matches, err := e.Retrieve(ctx, query, e.topK)
	if err != nil {
		return "", err
	}
	return FormatContext(matches), nil
}

// FormatContext concatenates chunk texts with a numbered header per chunk,
// preserving retrieval order.
func FormatContext(matches []vectorstore.Match) string {
	if len(matches) == 0 {
		return NoRelevantContext
	}

	blocks := make([]string, 0, len(matches))
	for i, m := range matches {
		source := m.Chunk.SourceTag
		if source == "" {
			source = "unknown"
		}
		blocks = append(blocks, fmt.Sprintf("Context %d (Source: %s):\n%s", i+1, source, m.Chunk.Text))
	}

	return strings.Join(blocks, "\n\n")
}
