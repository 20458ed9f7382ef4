package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/datachat/internal/config"
)

// AskCmd returns the ask command, a one-shot run of the question pipeline.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question and print the answer",
		Long:  "Run a question through classification, retrieval and query generation, then print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	cmd.Flags().Bool("json", false, "Print the full result as JSON")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pipeline, err := BuildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	result := pipeline.Router.Process(ctx, question)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(result.Answer)
	if result.GeneratedQuery != "" {
		fmt.Printf("\nGenerated query:\n%s\n", result.GeneratedQuery)
	}
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "error: %s\n", result.Error)
	}
	return nil
}
