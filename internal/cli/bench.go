package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrops-br/shirt-search-api/internal/app/dto"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/config"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/telemetry"
	"github.com/mrops-br/shirt-search-api/internal/search"
)

const defaultBenchShirts = 50000

func newBenchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time one search over a generated catalog",
		Long: `Generate a sample catalog, run a single search against it and verify the result.
Omitting --colors or --sizes places no restriction on that attribute.`,
		Example: `  shirt-search-api bench --shirts 1000000 --colors red,blue --sizes large`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromViper(v)
			size, _ := cmd.Flags().GetInt("shirts")
			colors, _ := cmd.Flags().GetStringSlice("colors")
			sizes, _ := cmd.Flags().GetStringSlice("sizes")
			seed := cfg.Catalog.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}

			logger := telemetry.NewLogger(cmd.OutOrStdout(), cfg)
			return runBench(logger, size, seed, &dto.SearchRequest{Colors: colors, Sizes: sizes})
		},
	}

	cmd.Flags().Int("shirts", defaultBenchShirts, "Number of generated shirts")
	cmd.Flags().Int64("seed", 0, "Random seed for the generated catalog (defaults to CATALOG_SEED)")
	cmd.Flags().StringSlice("colors", nil, "Colors to search for, comma separated")
	cmd.Flags().StringSlice("sizes", nil, "Sizes to search for, comma separated")

	return cmd
}

func runBench(logger *slog.Logger, size int, seed int64, req *dto.SearchRequest) error {
	if req.Colors == nil {
		req.Colors = []string{}
	}
	if req.Sizes == nil {
		req.Sizes = []string{}
	}

	opts, err := req.ToSearchOptions()
	if err != nil {
		return err
	}

	shirts, err := generateCatalog(size, seed)
	if err != nil {
		return err
	}

	engine := search.NewEngine(shirts)

	start := time.Now()
	results, err := engine.Search(opts)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if err := search.Verify(shirts, opts, results); err != nil {
		return err
	}

	colorCounts := make([]any, 0, len(results.ColorCounts))
	for _, cc := range results.ColorCounts {
		colorCounts = append(colorCounts, slog.Int(cc.Color.String(), cc.Count))
	}
	sizeCounts := make([]any, 0, len(results.SizeCounts))
	for _, sc := range results.SizeCounts {
		sizeCounts = append(sizeCounts, slog.Int(sc.Size.String(), sc.Count))
	}

	logger.Info("Search finished",
		slog.Int("catalog_size", len(shirts)),
		slog.Int64("seed", seed),
		slog.Int("matched", len(results.Shirts)),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
		slog.Group("color_counts", colorCounts...),
		slog.Group("size_counts", sizeCounts...),
	)
	return nil
}
