package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/datachat/internal/config"
	"github.com/cloo-solutions/datachat/internal/database"
	"github.com/cloo-solutions/datachat/internal/warehouse"
)

// SchemaCmd returns the schema command, printing the warehouse catalog.
func SchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the warehouse schema",
		RunE:  runSchema,
	}

	cmd.Flags().Bool("json", false, "Print the schema as JSON")

	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.HasWarehouse() {
		return fmt.Errorf("no warehouse configured: set DATACHAT_WAREHOUSE_URL")
	}

	pool, err := database.NewPool(ctx, cfg.WarehouseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer pool.Close()

	client := warehouse.NewClientWithTimeout(pool, cfg.WarehouseTimeout)
	schema, err := client.GetSchema(ctx)
	if err != nil {
		return fmt.Errorf("failed to read warehouse schema: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(schema)
	}

	for _, table := range schema {
		fmt.Printf("%s\n", table.Name)
		for _, col := range table.Columns {
			fmt.Printf("  %s  %s\n", col.Name, col.DataType)
		}
	}
	return nil
}
