// Package server exposes the intake form over HTTP for previewing and
// printing from a browser.
package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goliatone/go-intakeform/internal/logger"
	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/orchestrator"
	"github.com/goliatone/go-intakeform/pkg/renderers/html"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
)

// Options configures the preview server.
type Options struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	MetricsPath       string

	// Orchestrator renders forms; nil uses the built-in defaults.
	Orchestrator *orchestrator.Orchestrator
	// Source names the form definition; nil uses the embedded form.
	Source definition.Source
	// Sections applies when a request does not ask for its own subset.
	Sections []string

	// Registerer receives the server metrics; nil uses a private registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type handler struct {
	orch     *orchestrator.Orchestrator
	source   definition.Source
	sections []string
	metrics  *metrics
	openAPI  []byte
}

// NewHandler wires the routes, metrics and access logging.
func NewHandler(ctx context.Context, opts Options) (http.Handler, error) {
	reg, gatherer := opts.Registerer, opts.Gatherer
	if reg == nil {
		private := prometheus.NewRegistry()
		reg, gatherer = private, private
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, errors.Wrap(err, "register metrics")
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	spec, err := marshalOpenAPI(doc)
	if err != nil {
		return nil, err
	}

	orch := opts.Orchestrator
	if orch == nil {
		orch = orchestrator.New()
	}

	h := &handler{
		orch:     orch,
		source:   opts.Source,
		sections: opts.Sections,
		metrics:  m,
		openAPI:  spec,
	}

	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.render(html.Name))
	mux.HandleFunc("GET /form.txt", h.render(text.Name))
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(html.AssetsFS())))
	mux.HandleFunc("GET /openapi.json", h.serveOpenAPI)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	var chain http.Handler = mux
	chain = promhttp.InstrumentHandlerDuration(m.requestLatency, chain)
	chain = promhttp.InstrumentHandlerCounter(m.requests, chain)
	return WithAccessLog(chain), nil
}

// NewServer returns a configured *http.Server for the preview routes.
func NewServer(ctx context.Context, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
	}, nil
}

func (h *handler) render(rendererName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		req := orchestrator.Request{
			Source:       h.source,
			Renderer:     rendererName,
			ThemeName:    query.Get("theme"),
			ThemeVariant: query.Get("variant"),
			Sections:     h.sections,
			Plain:        rendererName == text.Name,
		}
		if raw := strings.TrimSpace(query.Get("sections")); raw != "" {
			req.Sections = []string{raw}
		}
		if raw := query.Get("print"); raw != "" {
			show, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "print must be a boolean", http.StatusBadRequest)
				return
			}
			req.HidePrintControl = !show
		}

		renderer, err := h.orch.Renderer(rendererName)
		if err != nil {
			h.fail(ctx, w, rendererName, err, http.StatusInternalServerError)
			return
		}

		start := time.Now()
		output, err := h.orch.Generate(ctx, req)
		h.metrics.renderLatency.WithLabelValues(rendererName).Observe(time.Since(start).Seconds())
		if err != nil {
			h.fail(ctx, w, rendererName, err, http.StatusBadRequest)
			return
		}
		h.metrics.renders.WithLabelValues(rendererName, "ok").Inc()

		w.Header().Set("Content-Type", renderer.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(output)
	}
}

func (h *handler) fail(ctx context.Context, w http.ResponseWriter, rendererName string, err error, status int) {
	h.metrics.renders.WithLabelValues(rendererName, "error").Inc()
	logger.Warn(ctx, "render failed", zap.String("renderer", rendererName), zap.Error(err))
	http.Error(w, err.Error(), status)
}

func (h *handler) serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.openAPI)
}
