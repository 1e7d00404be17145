package main

import (
	"net/http"
	"os"

	"github.com/theUtkarshRaj/SupplyGuard/internal/api"
	"github.com/theUtkarshRaj/SupplyGuard/internal/logging"
)

// The query service consumes only the pipeline's output files, so it reads
// its two settings directly instead of loading the pipeline config (which
// would demand summarizer credentials it has no use for).
func main() {
	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	dataDir := os.Getenv("SUPPLYGUARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	addr := os.Getenv("SUPPLYGUARD_API_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	server := api.NewServer(dataDir, logger.With("component", "api"))

	logger.Info("query service listening", "addr", addr, "data_dir", dataDir)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Error("query service stopped", "error", err)
		os.Exit(1)
	}
}
