package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/quatrainhq/quatrain-api/internal/api/shared"
	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"github.com/quatrainhq/quatrain-api/internal/platform/logger"
	"github.com/quatrainhq/quatrain-api/internal/service"
)

// GeneratePoemRequest represents the request body for generating a poem.
// Style and length are optional; the service applies defaults.
type GeneratePoemRequest struct {
	Theme  string `json:"theme"  validate:"required,max=500"`
	Style  string `json:"style"  validate:"omitempty,oneof=creative haiku sonnet free_verse rhyming"`
	Length string `json:"length" validate:"omitempty,oneof=short medium long"`
}

// PoemResponse represents the response data for a generated poem
type PoemResponse struct {
	Success             bool      `json:"success"`
	Poem                string    `json:"poem"`
	Theme               string    `json:"theme"`
	Style               string    `json:"style"`
	Length              string    `json:"length"`
	GenerationMethod    string    `json:"generation_method"`
	ResponseTimeSeconds float64   `json:"response_time_seconds"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// PoemHandler handles poem-related HTTP requests
type PoemHandler struct {
	poemService service.PoemService
}

// NewPoemHandler creates a new PoemHandler
func NewPoemHandler(poemService service.PoemService) *PoemHandler {
	return &PoemHandler{poemService: poemService}
}

// GeneratePoem handles POST /api/poems/generate requests
func (h *PoemHandler) GeneratePoem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logger.FromContextOrDefault(r.Context(), nil)

	var req GeneratePoemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	log.InfoContext(r.Context(), "poem generation requested",
		"theme_length", len(req.Theme),
		"style", req.Style,
		"length", req.Length)

	poem, err := h.poemService.GeneratePoem(r.Context(), generation.PoemRequest{
		Theme:  req.Theme,
		Style:  domain.PoemStyle(req.Style),
		Length: domain.PoemLength(req.Length),
	})
	if err != nil {
		// Safety blocks are an operational signal worth surfacing in the logs
		// even though they map to a 4xx.
		var opts []shared.ResponseOption
		if errors.Is(err, generation.ErrContentBlocked) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
		return
	}

	response := poemToDTOResponse(poem, time.Since(start))

	log.InfoContext(r.Context(), "poem generated",
		"generation_method", response.GenerationMethod,
		"response_time_seconds", response.ResponseTimeSeconds)

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// poemToDTOResponse converts a domain.Poem to a PoemResponse
func poemToDTOResponse(poem *domain.Poem, elapsed time.Duration) PoemResponse {
	return PoemResponse{
		Success:             true,
		Poem:                poem.Text,
		Theme:               poem.Theme,
		Style:               string(poem.Style),
		Length:              string(poem.Length),
		GenerationMethod:    string(poem.Source),
		ResponseTimeSeconds: elapsed.Seconds(),
		GeneratedAt:         poem.CreatedAt,
	}
}
