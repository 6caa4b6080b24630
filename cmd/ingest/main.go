package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/config"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/graphstore"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/logging"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/repository"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/service"
)

func main() {
	var (
		snapshotPath = flag.String("snapshot", "", "Path to a network snapshot JSON file (overrides NETWORK_SNAPSHOT)")
		workers      = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	path := *snapshotPath
	if path == "" {
		path = cfg.Network.SnapshotPath
	}

	snap, err := roadnet.ReadSnapshot(path)
	if err != nil {
		logger.Error("failed to load snapshot", "error", err, "path", path)
		os.Exit(1)
	}
	if len(snap.Junctions) == 0 {
		logger.Error("snapshot contains no junctions", "path", path)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := graphstore.NewNeo4jClient(ctx, graphstore.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	loader := service.NewBulkLoader(repo, *workers)

	start := time.Now()
	logger.Info("ingesting network",
		"junctions", len(snap.Junctions),
		"roads", len(snap.Roads),
		"workers", *workers,
	)
	if err := loader.LoadSnapshot(ctx, snap); err != nil {
		logger.Error("network ingestion failed", "error", err)
		os.Exit(1)
	}

	stats, err := repo.NetworkStats(ctx)
	if err != nil {
		logger.Warn("failed to read network stats", "error", err)
	}

	logger.Info("ingestion complete",
		"duration", time.Since(start).String(),
		"junctions", stats.Junctions,
		"roads", stats.Roads,
	)
}
