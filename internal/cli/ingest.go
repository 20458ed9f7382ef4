package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/datachat/internal/config"
	"github.com/cloo-solutions/datachat/internal/domain"
)

// IngestCmd returns the ingest command for adding documents to the corpus.
// With the default in-memory vector backend this is only useful for smoke
// testing; persistent ingestion needs the postgres backend.
func IngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a document into the knowledge corpus",
		RunE:  runIngest,
	}

	cmd.Flags().StringP("file", "f", "", "Path to a text file to ingest")
	cmd.Flags().StringP("source", "s", "", "Source tag recorded on every chunk")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("source")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	file, _ := cmd.Flags().GetString("file")
	source, _ := cmd.Flags().GetString("source")

	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return fmt.Errorf("%s is empty", file)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pipeline, err := BuildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	doc := domain.Document{Text: string(content), SourceTag: source}
	if err := pipeline.Retrieval.Ingest(ctx, []domain.Document{doc}); err != nil {
		return fmt.Errorf("failed to ingest document: %w", err)
	}

	fmt.Printf("ingested %s (source: %s)\n", file, source)
	return nil
}
