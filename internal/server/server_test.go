package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-intakeform/internal/logger"
	"github.com/goliatone/go-intakeform/internal/server"
	"github.com/goliatone/go-intakeform/pkg/testsupport"
)

func newTestServer(t *testing.T, opts server.Options) *httptest.Server {
	t.Helper()
	handler, err := server.NewHandler(context.Background(), opts)
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_RendersHTML(t *testing.T) {
	srv := newTestServer(t, server.Options{})

	resp, body := get(t, srv.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	require.NotEmpty(t, resp.Header.Get(server.RequestIDHeader))

	doc := testsupport.MustParseHTML(t, []byte(body))
	require.Len(t, testsupport.FindAll(doc, testsupport.HasAttr("data-fg-question")), 21)
	require.Len(t, testsupport.FindAll(doc, testsupport.HasAttr("data-fg-print")), 1)
}

func TestServer_QueryOptions(t *testing.T) {
	srv := newTestServer(t, server.Options{})

	_, body := get(t, srv.URL+"/?sections=services&print=false&variant=print")
	doc := testsupport.MustParseHTML(t, []byte(body))
	require.Len(t, testsupport.FindAll(doc, testsupport.HasAttr("data-fg-section")), 1)
	require.Empty(t, testsupport.FindAll(doc, testsupport.HasAttr("data-fg-print")))
	require.Contains(t, body, `data-fg-variant="print"`)

	resp, _ := get(t, srv.URL+"/?print=maybe")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/?theme=missing")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_RendersText(t *testing.T) {
	srv := newTestServer(t, server.Options{Sections: []string{"marketing"}})

	resp, body := get(t, srv.URL+"/form.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	require.Contains(t, body, "9. What is the main goal of your landing page? *")
	require.NotContains(t, body, "1. Business Name")
}

func TestServer_AssetsHealthAndOpenAPI(t *testing.T) {
	srv := newTestServer(t, server.Options{})

	resp, body := get(t, srv.URL+"/assets/intakeform.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, ".fg-page-break")

	resp, _ = get(t, srv.URL+"/assets/missing.css")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = get(t, srv.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body)

	resp, body = get(t, srv.URL+"/openapi.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var spec struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &spec))
	require.Equal(t, "3.0.3", spec.OpenAPI)
	for _, path := range []string{"/", "/form.txt", "/assets/{name}", "/openapi.json", "/healthz"} {
		require.Contains(t, spec.Paths, path)
	}

	resp, _ = get(t, srv.URL+"/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	srv := newTestServer(t, server.Options{Registerer: registry, Gatherer: registry, MetricsPath: "/internal/metrics"})

	get(t, srv.URL+"/")
	get(t, srv.URL+"/form.txt")

	resp, body := get(t, srv.URL+"/internal/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `intakeform_renders_total{outcome="ok",renderer="html"} 1`)
	require.Contains(t, body, `intakeform_renders_total{outcome="ok",renderer="text"} 1`)
	require.Contains(t, body, "intakeform_http_requests_total")
	require.Contains(t, body, "intakeform_render_duration_seconds_bucket")

	_, err := server.NewHandler(context.Background(), server.Options{Registerer: registry, Gatherer: registry})
	require.Error(t, err, "registering the same collectors twice should fail")
}

func TestWithAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetDefault(zap.New(core))
	t.Cleanup(func() { logger.SetDefault(nil) })

	var seen string
	handler := server.WithAccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = server.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(server.RequestIDHeader, "req-1")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "req-1", seen)
	require.Equal(t, "req-1", rec.Header().Get(server.RequestIDHeader))

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusTeapot), fields["status_code"])
	require.Equal(t, "203.0.113.7", fields["client_ip"])
	require.Equal(t, "req-1", fields["request_id"])
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	require.Equal(t, "192.0.2.1", server.ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.2")
	require.Equal(t, "198.51.100.2", server.ClientIP(req))
	require.True(t, strings.HasPrefix(server.ClientIP(req), "198."))
}
