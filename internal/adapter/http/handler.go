package httpadapter

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campdash/internal/adapter/chart"
	"campdash/internal/core/port"
	"campdash/web"
)

// Options tunes the rendered dashboard.
type Options struct {
	Title       string
	PageSize    int
	ChartWidth  int
	ChartHeight int
}

// Handler serves one loaded dashboard. It is an inbound adapter for HTTP;
// routes are registered on a chi.Router. The dashboard is read-only, so the
// handler is safe for concurrent requests.
type Handler struct {
	svc    port.DashboardUseCase
	dash   *port.Dashboard
	opts   Options
	tmpl   *template.Template
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, dash *port.Dashboard, opts Options, logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, dash: dash, opts: opts, tmpl: tmpl, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleIndex)
	r.Get("/healthz", h.handleHealth)
	r.Get("/charts/{file}", h.handleChart)
	r.Get("/export.xlsx", h.handleExport)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/meta", h.handleMeta)
		r.Get("/kpis", h.handleKPIs)
		r.Get("/categories/primary", h.handleCategory1)
		r.Get("/categories/secondary", h.handleCategory2)
		r.Get("/timeline", h.handleTimeline)
		r.Get("/heatmap", h.handleHeatmap)
		r.Get("/campaigns", h.handleCampaigns)
	})
	h.router = r
	return h, nil
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) renderer(format chart.Format) chart.Renderer {
	return chart.NewRenderer(h.opts.ChartWidth, h.opts.ChartHeight, format)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
