package main

import (
	"log/slog"
	"os"

	"github.com/mrops-br/shirt-search-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
