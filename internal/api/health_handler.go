package api

import (
	"net/http"

	"github.com/quatrainhq/quatrain-api/internal/api/shared"
	"github.com/quatrainhq/quatrain-api/internal/service"
)

// Version is the API version reported by the index and health endpoints.
const Version = "1.0.0"

// HealthResponse represents the response data for the health endpoint
type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	LLMConfigured bool   `json:"llm_configured"`
}

// IndexResponse describes the API for the root endpoint
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// StatusResponse represents the response data for the service status endpoint
type StatusResponse struct {
	Service service.ServiceInfo `json:"service"`
	Probe   service.ProbeResult `json:"probe"`
}

// HealthHandler handles health and status HTTP requests
type HealthHandler struct {
	poemService service.PoemService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(poemService service.PoemService) *HealthHandler {
	return &HealthHandler{poemService: poemService}
}

// Index handles GET / requests
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, IndexResponse{
		Message: "Quatrain poem generation API",
		Version: Version,
		Endpoints: map[string]string{
			"health":   "GET /health",
			"status":   "GET /api/service/status",
			"generate": "POST /api/poems/generate",
		},
	})
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Service:       "quatrain-api",
		Version:       Version,
		LLMConfigured: h.poemService.Info().LLMConfigured,
	})
}

// Status handles GET /api/service/status requests. It runs a live probe
// against the generation API, so it is slower than /health.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Service: h.poemService.Info(),
		Probe:   h.poemService.Probe(r.Context()),
	})
}
