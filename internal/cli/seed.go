package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/infra/storage/postgres"
)

var seedCSV string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and copy a CSV dataset into the launch records table",
	Run:   runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCSV, "csv", "", "CSV file to import (defaults to dataset.path)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging)

	if cfg.Database.URL == "" {
		slog.Error("database.url is required for seeding")
		os.Exit(1)
	}

	path := seedCSV
	if path == "" {
		path = cfg.Dataset.Path
	}

	ctx := context.Background()
	src := dataset.NewCSVSource(path)
	src.Columns = cfg.Dataset.Columns.WithDefaults()
	store, err := dataset.Load(ctx, src)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	if err := postgres.NewRecordRepo(db).Replace(ctx, store.Records()); err != nil {
		slog.Error("Failed to import records", "error", err)
		os.Exit(1)
	}

	slog.Info("Dataset imported", "source", path, "table", postgres.TableName, "records", store.Len())
}
