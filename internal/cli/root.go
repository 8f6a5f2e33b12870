// Package cli wires the shirt search commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrops-br/shirt-search-api/internal/infrastructure/config"
)

// NewRootCmd builds the command tree. Each call gets its own viper instance,
// so flags bound by one tree never leak into another.
func NewRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:           "shirt-search-api",
		Short:         "Shirt catalog search service",
		Long:          `Serves a searchable shirt catalog over HTTP and benchmarks the search engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	bindFlag(v, config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newBenchCmd(v))

	return rootCmd
}

// bindFlag lets an explicitly set flag override the environment
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		slog.Error("Error binding flag", "flag", flag.Name, "error", err)
	}
}
