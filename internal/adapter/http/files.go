package httpadapter

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"campdash/internal/adapter/chart"
	"campdash/internal/adapter/export"
)

// handleChart serves /charts/{name}.{svg|png}.
func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	name, ext, ok := strings.Cut(chi.URLParam(r, "file"), ".")
	if !ok {
		http.NotFound(w, r)
		return
	}
	format, err := chart.ParseFormat(ext)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	err = h.renderer(format).Render(&buf, name, h.dash.Aggregation)
	switch {
	case errors.Is(err, chart.ErrUnknownChart):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "render chart error", slog.String("chart", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// handleExport downloads every summary and the campaign table as xlsx.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, h.dash); err != nil {
		h.logger.ErrorContext(r.Context(), "export workbook error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="campaigns.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}
