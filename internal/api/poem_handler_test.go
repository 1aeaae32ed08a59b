package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"github.com/quatrainhq/quatrain-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPoemService is a function-field mock for service.PoemService.
type MockPoemService struct {
	GeneratePoemFn func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error)
	InfoFn         func() service.ServiceInfo
	ProbeFn        func(ctx context.Context) service.ProbeResult
}

func (m *MockPoemService) GeneratePoem(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
	if m.GeneratePoemFn != nil {
		return m.GeneratePoemFn(ctx, req)
	}
	return nil, nil
}

func (m *MockPoemService) Info() service.ServiceInfo {
	if m.InfoFn != nil {
		return m.InfoFn()
	}
	return service.ServiceInfo{}
}

func (m *MockPoemService) Probe(ctx context.Context) service.ProbeResult {
	if m.ProbeFn != nil {
		return m.ProbeFn(ctx)
	}
	return service.ProbeResult{}
}

func testPoem(t *testing.T) *domain.Poem {
	t.Helper()
	poem, err := domain.NewPoem("the sea", domain.StyleCreative, domain.LengthMedium,
		"The sea remembers every shore.", domain.SourceGemini)
	require.NoError(t, err)
	return poem
}

func TestGeneratePoemHandler(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		generateFn       func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error)
		expectedStatus   int
		expectedSuccess  bool
		expectedMethod   string
		expectedErrorMsg string
	}{
		{
			name: "success",
			body: `{"theme": "the sea", "style": "creative", "length": "medium"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				return testPoem(t), nil
			},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
			expectedMethod:  string(domain.SourceGemini),
		},
		{
			name: "defaults_applied_by_service",
			body: `{"theme": "the sea"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				assert.Empty(t, string(req.Style))
				assert.Empty(t, string(req.Length))
				return testPoem(t), nil
			},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
		},
		{
			name:             "malformed_json",
			body:             `{"theme": `,
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid request format",
		},
		{
			name:             "missing_theme",
			body:             `{"style": "haiku"}`,
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid Theme: required field",
		},
		{
			name:             "unknown_style",
			body:             `{"theme": "the sea", "style": "limerick"}`,
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid Style: invalid value",
		},
		{
			name: "rate_limited",
			body: `{"theme": "the sea"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				return nil, generation.ErrRateLimited
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name: "quota_exceeded",
			body: `{"theme": "the sea"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				return nil, generation.ErrQuotaExceeded
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "content_blocked",
			body: `{"theme": "the sea"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				return nil, generation.ErrContentBlocked
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unexpected_error",
			body: `{"theme": "the sea"}`,
			generateFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
				return nil, assert.AnError
			},
			expectedStatus:   http.StatusInternalServerError,
			expectedErrorMsg: "Failed to generate poem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPoemHandler(&MockPoemService{GeneratePoemFn: tt.generateFn})

			req := httptest.NewRequest(http.MethodPost, "/api/poems/generate",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.GeneratePoem(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp PoemResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedSuccess, resp.Success)
				assert.NotEmpty(t, resp.Poem)
				if tt.expectedMethod != "" {
					assert.Equal(t, tt.expectedMethod, resp.GenerationMethod)
				}
				assert.GreaterOrEqual(t, resp.ResponseTimeSeconds, 0.0)
				return
			}

			var errResp map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			require.Contains(t, errResp, "error")
			if tt.expectedErrorMsg != "" {
				assert.Equal(t, tt.expectedErrorMsg, errResp["error"])
			}
		})
	}
}

// levelRecorder captures the levels of emitted log records.
type levelRecorder struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (h *levelRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *levelRecorder) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.levels = append(h.levels, r.Level)
	return nil
}

func (h *levelRecorder) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *levelRecorder) WithGroup(string) slog.Handler      { return h }

func TestGeneratePoemHandlerElevatesBlockedContentLogging(t *testing.T) {
	recorder := &levelRecorder{}
	previous := slog.Default()
	slog.SetDefault(slog.New(recorder))
	t.Cleanup(func() { slog.SetDefault(previous) })

	handler := NewPoemHandler(&MockPoemService{
		GeneratePoemFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
			return nil, generation.ErrContentBlocked
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/poems/generate",
		bytes.NewBufferString(`{"theme": "the sea"}`))
	rr := httptest.NewRecorder()

	handler.GeneratePoem(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Contains(t, recorder.levels, slog.LevelWarn,
		"blocked content should be logged at warn, not debug")
}

func TestGeneratePoemHandlerDoesNotLeakErrorDetails(t *testing.T) {
	handler := NewPoemHandler(&MockPoemService{
		GeneratePoemFn: func(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
			return nil, assert.AnError
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/poems/generate",
		bytes.NewBufferString(`{"theme": "the sea"}`))
	rr := httptest.NewRecorder()

	handler.GeneratePoem(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}
