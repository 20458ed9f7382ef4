package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// WarehouseURL points at the analytical database queried by generated SQL.
	WarehouseURL string `envconfig:"WAREHOUSE_URL"`

	// VectorBackend selects the chunk store: "memory" or "postgres".
	VectorBackend     string `envconfig:"VECTOR_BACKEND" default:"memory"`
	VectorDatabaseURL string `envconfig:"VECTOR_DATABASE_URL"`

	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	LLMModel       string `envconfig:"LLM_MODEL"`
	LLMBaseURL     string `envconfig:"LLM_BASE_URL"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL"`

	ChunkSize     int `envconfig:"CHUNK_SIZE" default:"1000"`
	ChunkOverlap  int `envconfig:"CHUNK_OVERLAP" default:"200"`
	RetrievalTopK int `envconfig:"RETRIEVAL_TOP_K" default:"3"`

	LLMTimeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`
	WarehouseTimeout time.Duration `envconfig:"WAREHOUSE_TIMEOUT" default:"60s"`

	SentryDSN string `envconfig:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("DATACHAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// HasOpenAI reports whether a language-model credential is configured. When
// false, questions are rejected before the pipeline runs.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// HasWarehouse reports whether generated SQL can actually be executed.
func (c *Config) HasWarehouse() bool {
	return c.WarehouseURL != ""
}

// UsesPostgresVectors reports whether chunks persist in pgvector instead of
// the in-process store.
func (c *Config) UsesPostgresVectors() bool {
	return c.VectorBackend == "postgres"
}
