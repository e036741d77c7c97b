package control

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietddude/launchdash/internal/core/config"
	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/infra/storage/postgres"
)

// LoadStore reads the launch records from the configured source. The
// database connection, if any, is closed once the records are in memory.
func LoadStore(ctx context.Context, ds config.DatasetConfig, dbCfg postgres.Config) (*dataset.Store, error) {
	switch ds.Source {
	case config.SourcePostgres:
		db, err := postgres.NewDB(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to init db: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		}()
		return dataset.Load(ctx, postgres.NewRecordRepo(db))

	case config.SourceCSV, "":
		src := dataset.NewCSVSource(ds.Path)
		src.Columns = ds.Columns.WithDefaults()
		return dataset.Load(ctx, src)

	default:
		return nil, fmt.Errorf("unknown dataset source %q", ds.Source)
	}
}
