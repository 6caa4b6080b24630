package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/places"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/render"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/search"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger   *slog.Logger
	service  *service.RouteService
	resolver *places.Resolver
	network  *roadnet.Network
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.RouteService, resolver *places.Resolver, network *roadnet.Network) *APIHandlers {
	return &APIHandlers{
		logger:   logger,
		service:  svc,
		resolver: resolver,
		network:  network,
	}
}

func (h *APIHandlers) handlePlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	searchTerm := query.Get("search")
	limit := parseInt(query.Get("limit"), 10)

	if searchTerm != "" {
		respondJSON(w, http.StatusOK, placesSearchResponse{
			Query:   searchTerm,
			Matches: h.resolver.Search(searchTerm, limit),
		})
		return
	}

	all := h.resolver.Places()
	items := make([]placeResponse, 0, len(all))
	for _, p := range all {
		items = append(items, placeResponse{Name: p.Name, Lat: p.Lat, Lon: p.Lon})
	}
	respondJSON(w, http.StatusOK, placesListResponse{Places: items})
}

func (h *APIHandlers) handleRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	req, err := planRequestFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.service.PlanRoutes(r.Context(), req)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, planToResponse(plan))
}

func (h *APIHandlers) handleRoutesGeoJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	req, err := planRequestFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.service.PlanRoutes(r.Context(), req)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(render.PlanGeoJSON(h.network, plan))
}

// handleRoutesStream writes newline-delimited JSON, one route per
// line, pulled lazily from the path stream so the response size never
// forces the full tied-path set into memory.
func (h *APIHandlers) handleRoutesStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	req, err := planRequestFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stream, err := h.service.StreamRoutes(r.Context(), req)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	for {
		route, ok := stream.Next()
		if !ok {
			return
		}
		if err := encoder.Encode(routeToResponse(route)); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (h *APIHandlers) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, places.ErrUnknownPlace), errors.Is(err, search.ErrUnknownLocation):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, search.ErrInvalidOptions),
		errors.Is(err, search.ErrSameLocation),
		errors.Is(err, service.ErrUnknownAlgorithm):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("route planning failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "route planning failed")
	}
}

func planRequestFromQuery(r *http.Request) (service.PlanRequest, error) {
	query := r.URL.Query()

	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		return service.PlanRequest{}, errors.New("from and to are required")
	}

	req := service.PlanRequest{
		From:      from,
		To:        to,
		Algorithm: query.Get("algorithm"),
	}

	if v := query.Get("maxPaths"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return service.PlanRequest{}, errors.New("invalid maxPaths")
		}
		req.MaxPaths = n
	}
	if v := query.Get("maxNodes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return service.PlanRequest{}, errors.New("invalid maxNodes")
		}
		req.MaxNodes = n
	}
	if v := query.Get("maxDistance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return service.PlanRequest{}, errors.New("invalid maxDistance")
		}
		req.MaxDistance = f
	}

	return req, nil
}

// --- Request & Response DTOs ---

type placeResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type placesListResponse struct {
	Places []placeResponse `json:"places"`
}

type placesSearchResponse struct {
	Query   string   `json:"query"`
	Matches []string `json:"matches"`
}

type routeResponse struct {
	Nodes          []int64 `json:"nodes"`
	DistanceMeters float64 `json:"distanceMeters"`
	Steps          int     `json:"steps"`
}

type routePlanResponse struct {
	Algorithm   string          `json:"algorithm"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Found       bool            `json:"found"`
	Truncated   bool            `json:"truncated,omitempty"`
	TruncatedBy string          `json:"truncatedBy,omitempty"`
	Expanded    int             `json:"expanded"`
	Routes      []routeResponse `json:"routes"`
}

func planToResponse(plan domain.RoutePlan) routePlanResponse {
	resp := routePlanResponse{
		Algorithm:   plan.Algorithm,
		From:        plan.From,
		To:          plan.To,
		Found:       plan.Found,
		Truncated:   plan.Truncated,
		TruncatedBy: plan.TruncatedBy,
		Expanded:    plan.Expanded,
		Routes:      []routeResponse{},
	}
	for _, route := range plan.Routes {
		resp.Routes = append(resp.Routes, routeToResponse(route))
	}
	return resp
}

func routeToResponse(route domain.Route) routeResponse {
	return routeResponse{
		Nodes:          route.Nodes,
		DistanceMeters: route.DistanceMeters,
		Steps:          route.Steps,
	}
}

// --- Helpers ---

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
