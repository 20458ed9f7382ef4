package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/cloo-solutions/datachat/internal/config"
	"github.com/cloo-solutions/datachat/internal/corpus"
	"github.com/cloo-solutions/datachat/internal/database"
	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/cloo-solutions/datachat/internal/openai"
	"github.com/cloo-solutions/datachat/internal/service"
	"github.com/cloo-solutions/datachat/internal/vectorstore"
	"github.com/cloo-solutions/datachat/internal/warehouse"
)

// Pipeline bundles the wired question-answering components plus their
// teardown. Components that are not configured stay nil; the router and
// handlers degrade per-request instead of failing startup.
type Pipeline struct {
	Router    *service.QueryRouter
	Retrieval *service.RetrievalEngine
	Warehouse *warehouse.Client

	closers []func()
}

// Close releases pools in reverse construction order.
func (p *Pipeline) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}

// BuildPipeline wires embedding, vector store, warehouse and router from
// config. The seed corpus is ingested when an embedding credential is
// present; without one the corpus stays empty and questions fail with a
// configuration error rather than a panic.
func BuildPipeline(ctx context.Context, cfg *config.Config) (*Pipeline, error) {
	p := &Pipeline{}

	store, err := buildVectorStore(ctx, cfg, p)
	if err != nil {
		p.Close()
		return nil, err
	}

	var llm service.Generator
	var embedder service.Embedder
	if cfg.HasOpenAI() {
		embedder = openai.NewEmbeddingClientWithConfig(openai.EmbeddingConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.EmbeddingModel,
		})
		llm = openai.NewChatClient(openai.ChatConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout,
		})
	}

	chunkCfg := service.ChunkConfig{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap}
	p.Retrieval = service.NewRetrievalEngineWithConfig(embedder, store, chunkCfg, cfg.RetrievalTopK)

	if embedder != nil {
		if err := p.Retrieval.Ingest(ctx, corpus.SeedDocuments()); err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to ingest seed corpus: %w", err)
		}
		log.Println("seed corpus ingested")
	} else {
		log.Println("no language model configured, skipping seed corpus ingestion")
	}

	var wh service.Warehouse = &unconfiguredWarehouse{}
	var schema domain.SchemaDescriptor
	if cfg.HasWarehouse() {
		pool, err := database.NewPool(ctx, cfg.WarehouseURL)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
		}
		p.closers = append(p.closers, pool.Close)

		client := warehouse.NewClientWithTimeout(pool, cfg.WarehouseTimeout)
		p.Warehouse = client
		wh = client

		schema, err = client.GetSchema(ctx)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to read warehouse schema: %w", err)
		}
		log.Printf("warehouse schema loaded (%d tables)", len(schema))
	} else {
		log.Println("no warehouse configured, data queries will fail")
	}

	p.Router = service.NewQueryRouter(llm, p.Retrieval, wh, schema)
	return p, nil
}

func buildVectorStore(ctx context.Context, cfg *config.Config, p *Pipeline) (vectorstore.Store, error) {
	if !cfg.UsesPostgresVectors() {
		return vectorstore.NewMemoryStore(), nil
	}

	if cfg.VectorDatabaseURL == "" {
		return nil, fmt.Errorf("DATACHAT_VECTOR_DATABASE_URL is required for the postgres vector backend")
	}

	if err := database.Migrate(cfg.VectorDatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to migrate vector database: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.VectorDatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vector database: %w", err)
	}
	p.closers = append(p.closers, pool.Close)

	return vectorstore.NewPostgresStore(pool), nil
}

type unconfiguredWarehouse struct{}

func (*unconfiguredWarehouse) Execute(ctx context.Context, query string) (*domain.Table, error) {
	return nil, domain.NewDomainError(domain.ErrCodeConfiguration,
		"no warehouse configured: set DATACHAT_WAREHOUSE_URL to execute data queries")
}
