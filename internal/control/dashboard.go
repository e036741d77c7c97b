package control

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vietddude/launchdash/internal/core/config"
	"github.com/vietddude/launchdash/internal/core/worker"
	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/infra/storage/postgres"
	"github.com/vietddude/launchdash/internal/metrics"
	"github.com/vietddude/launchdash/internal/render"
	"github.com/vietddude/launchdash/internal/server"
	"github.com/vietddude/launchdash/internal/session"
)

// ShutdownTimeout bounds the graceful HTTP shutdown.
const ShutdownTimeout = 15 * time.Second

// Dashboard is the main application struct that manages the server lifecycle.
type Dashboard struct {
	cfg      Config
	store    *dataset.Store
	sessions *session.Manager
	server   *server.Server
	pruner   *worker.Pruner
	log      *slog.Logger
}

// Config holds the application configuration.
type Config struct {
	Port       int
	Dataset    config.DatasetConfig
	Database   postgres.Config
	SliderStep float64
	Sessions   config.SessionsConfig
	Charts     config.ChartsConfig
}

// NewConfig transforms the file configuration.
func NewConfig(cfg *config.AppConfig) Config {
	return Config{
		Port:       cfg.Server.Port,
		Dataset:    cfg.Dataset,
		Database:   cfg.Database,
		SliderStep: cfg.Slider.Step,
		Sessions:   cfg.Sessions,
		Charts:     cfg.Charts,
	}
}

// NewDashboard loads the dataset and initializes every component. A dataset
// that cannot be loaded is returned as a *dataset.DataLoadError.
func NewDashboard(ctx context.Context, cfg Config) (*Dashboard, error) {
	store, err := LoadStore(ctx, cfg.Dataset, cfg.Database)
	if err != nil {
		return nil, err
	}
	slog.Info("Dataset loaded", "source", store.Source(), "records", store.Len(),
		"sites", len(store.Categories())-1)

	return New(cfg, store), nil
}

// New wires a dashboard around an already loaded store.
func New(cfg Config, store *dataset.Store) *Dashboard {
	metrics.DatasetRecords.Set(float64(store.Len()))

	observer := session.MultiObserver{
		&session.LogObserver{},
		session.MetricsObserver{},
	}
	sessions := session.NewManager(store, observer)
	renderer := render.NewSVGRenderer(cfg.Charts.Width, cfg.Charts.Height)

	return &Dashboard{
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		server:   server.NewServer(sessions, renderer, cfg.Port, cfg.SliderStep),
		pruner:   worker.NewPruner(sessions, cfg.Sessions.IdleTimeout, cfg.Sessions.PruneInterval),
		log:      slog.Default(),
	}
}

// Sessions returns the session manager.
func (d *Dashboard) Sessions() *session.Manager {
	return d.sessions
}

// Run serves the dashboard until ctx is cancelled or the server fails, then
// shuts the server down gracefully.
func (d *Dashboard) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.log.Info("Starting HTTP server", "port", d.cfg.Port)
		if err := d.server.Start(); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		d.log.Info("Starting session pruner",
			"idle_timeout", d.cfg.Sessions.IdleTimeout, "interval", d.pruner.Interval())
		d.pruner.Start(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return d.Stop()
	})

	return g.Wait()
}

// Stop stops the HTTP server.
func (d *Dashboard) Stop() error {
	d.log.Info("Stopping Dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return d.server.Stop(ctx)
}
