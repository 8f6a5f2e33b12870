package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/mrops-br/shirt-search-api/internal/app/service"
	"github.com/mrops-br/shirt-search-api/internal/domain"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/config"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/http"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/telemetry"
	"github.com/mrops-br/shirt-search-api/internal/sampledata"
)

const (
	gracefulTimeout  = 15 * time.Second
	telemetryTimeout = 5 * time.Second
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the shirt search HTTP server",
		Long: `Start the HTTP server. The catalog is seeded at startup from CATALOG_FILE
(YAML or JSON) and then extended with CATALOG_SEED_SIZE generated sample shirts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, config.FromViper(v))
		},
	}

	cmd.Flags().String("host", "", "Address to listen on")
	cmd.Flags().String("port", "", "Port to listen on")
	cmd.Flags().String("catalog-file", "", "YAML or JSON catalog loaded at startup")
	cmd.Flags().Int("seed-size", 0, "Number of generated sample shirts added at startup")
	cmd.Flags().Int64("seed", 0, "Random seed for generated sample shirts")

	bindFlag(v, config.KeyServerHost, cmd.Flags().Lookup("host"))
	bindFlag(v, config.KeyServerPort, cmd.Flags().Lookup("port"))
	bindFlag(v, config.KeyCatalogFile, cmd.Flags().Lookup("catalog-file"))
	bindFlag(v, config.KeyCatalogSeedSize, cmd.Flags().Lookup("seed-size"))
	bindFlag(v, config.KeyCatalogSeed, cmd.Flags().Lookup("seed"))

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	telem, err := telemetry.FromConfig(ctx, cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryTimeout)
		defer cancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			telem.Logger.Error("Error shutting down telemetry", slog.String("error", err.Error()))
		}
	}()

	tracer := telem.TracerProvider.Tracer(telemetry.InstrumentationName)
	meter := telem.MeterProvider.Meter(telemetry.InstrumentationName)
	logger := telem.Logger

	logger.Info("Starting Shirt Search API")

	repo := memory.NewShirtRepository(tracer, logger)
	shirtService := service.NewShirtService(repo, tracer, meter, logger)

	if err := seedCatalog(ctx, &cfg.Catalog, shirtService, logger); err != nil {
		return err
	}

	server := http.NewServer(&cfg.Server, handler.NewShirtHandler(shirtService, logger), logger, telem)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}

// seedCatalog loads the configured catalog file first, then appends generated sample shirts
func seedCatalog(ctx context.Context, cfg *config.CatalogConfig, svc *service.ShirtService, logger *slog.Logger) error {
	if cfg.File != "" {
		shirts, err := sampledata.LoadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("failed to load catalog file: %w", err)
		}
		if err := svc.SeedCatalog(ctx, shirts); err != nil {
			return fmt.Errorf("failed to seed catalog from %s: %w", cfg.File, err)
		}
		logger.Info("Catalog file loaded",
			slog.String("file", cfg.File),
			slog.Int("count", len(shirts)),
		)
	}

	if cfg.SeedSize > 0 {
		shirts, err := generateCatalog(cfg.SeedSize, cfg.Seed)
		if err != nil {
			return err
		}
		if err := svc.SeedCatalog(ctx, shirts); err != nil {
			return fmt.Errorf("failed to seed sample catalog: %w", err)
		}
	}

	return nil
}

func generateCatalog(size int, seed int64) ([]domain.Shirt, error) {
	shirts, err := sampledata.NewBuilder(size, seed).CreateShirts()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sample catalog: %w", err)
	}
	return shirts, nil
}
