package server

import (
	"context"
	"errors"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/graphstore"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// ErrNetworkNotLoaded indicates readiness was probed before any road
// network was available.
var ErrNetworkNotLoaded = errors.New("road network not loaded")

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// StoreHealthService verifies graph-store connectivity as part of
// health checks. A nil client (snapshot-backed deployments) always
// probes healthy.
type StoreHealthService struct {
	Client graphstore.Client
}

// Probe implements the HealthService interface.
func (s StoreHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}

// NetworkHealthService reports ready once a non-empty road network is
// loaded.
type NetworkHealthService struct {
	Net *roadnet.Network
}

// Probe implements the HealthService interface.
func (s NetworkHealthService) Probe(context.Context) error {
	if s.Net == nil || s.Net.NodeCount() == 0 {
		return ErrNetworkNotLoaded
	}
	return nil
}
