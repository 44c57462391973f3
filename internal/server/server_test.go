package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sse"
	"github.com/hypez33/grow-lab-zen-sub000/internal/testing/rngtest"
)

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	cat := catalog.MustDefault()
	codec := persistence.NewCodec(func() *domain.State { return cat.NewState(0) })
	svc := game.NewService(
		game.NewEngine(cat, rngtest.Fixed{F: 0.5}, nil, nil),
		persistence.NewMemoryRepository(codec),
		codec, nil, "test", time.Now,
	)
	return NewRouter(opts, svc, nil)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t, Options{APIKey: "k", Version: "test"})

	tests := []struct {
		name   string
		method string
		path   string
		key    string
		want   int
	}{
		{"healthz is public", http.MethodGet, "/healthz", "", http.StatusOK},
		{"readyz without database", http.MethodGet, "/readyz", "", http.StatusOK},
		{"version", http.MethodGet, "/version", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"state requires key", http.MethodGet, "/api/v1/state", "", http.StatusUnauthorized},
		{"state with key", http.MethodGet, "/api/v1/state", "k", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", "k", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_ServesSwaggerDoc(t *testing.T) {
	router := newTestRouter(t, Options{APIKey: "k", Version: "test"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, SwaggerPath+"doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/grow/plant")
	assert.Contains(t, doc.Paths["/grow/plant"], "post")
	assert.Contains(t, doc.Paths, "/events")
}

func TestRouter_EchoesRequestID(t *testing.T) {
	router := newTestRouter(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestRouter_EventStreamFlushesThroughMiddleware(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(newTestRouter(t, Options{APIKey: "k", Events: sse.Handler(hub)}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+APIPrefix+EventsPath, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, "k")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: "))
}

func TestRouter_NoEventStreamWithoutHandler(t *testing.T) {
	router := newTestRouter(t, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, APIPrefix+EventsPath, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
