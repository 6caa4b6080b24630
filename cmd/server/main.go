package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/config"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/graphstore"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/logging"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/places"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/repository"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/search"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/server"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	net, graphClient, err := buildNetwork(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to load road network", "error", err)
		os.Exit(1)
	}
	defer func() {
		if graphClient != nil {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}
	}()

	logger.Info("road network loaded",
		"junctions", net.NodeCount(),
		"roads", net.EdgeCount(),
	)

	resolver := places.NewResolver(net, places.DefaultPlaces())
	routeService := service.NewRouteService(net, resolver, searchDefaults(cfg.Search), logger)
	apiHandlers := server.NewAPIHandlers(logger, routeService, resolver, net)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           healthService(net, graphClient),
		API:              apiHandlers,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildNetwork loads the road network from the graph database when a
// URI is configured, falling back to the snapshot file otherwise.
func buildNetwork(ctx context.Context, logger *slog.Logger, cfg config.Config) (*roadnet.Network, graphstore.Client, error) {
	if cfg.Graph.URI == "" {
		logger.Info("loading network from snapshot", "path", cfg.Network.SnapshotPath)
		net, err := roadnet.ReadSnapshotFile(cfg.Network.SnapshotPath)
		return net, nil, err
	}

	opts := graphstore.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graphstore.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	net, err := repository.New(client).FetchNetwork(ctx)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, nil, err
	}
	return net, client, nil
}

func healthService(net *roadnet.Network, client graphstore.Client) server.HealthService {
	if client != nil {
		return server.StoreHealthService{Client: client}
	}
	return server.NetworkHealthService{Net: net}
}

func searchDefaults(cfg config.SearchConfig) search.Options {
	return search.Options{
		MaxPaths:     cfg.MaxPaths,
		MaxNodes:     cfg.MaxNodes,
		MaxDistance:  cfg.MaxDistance,
		SameLocation: search.SameLocationMode(cfg.SameLocation),
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
