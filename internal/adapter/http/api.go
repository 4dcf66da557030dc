package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campdash/internal/core/domain"
	"campdash/internal/core/port"
)

// filterPrefix marks table filter query parameters, e.g. f_Category1=first.
const filterPrefix = "f_"

type metaResp struct {
	LoadID   string    `json:"load_id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	Columns  []string  `json:"columns"`
}

// handleMeta describes the loaded dataset.
func (h *Handler) handleMeta(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, metaResp{
		LoadID:   h.dash.LoadID.String(),
		Source:   h.dash.Source,
		LoadedAt: h.dash.LoadedAt,
		Columns:  h.dash.Columns(),
	})
}

// handleKPIs returns the four scalar statistics.
func (h *Handler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.dash.Aggregation.KPIs)
}

// handleCategory1 returns campaign counts per Category1 ordered by label.
func (h *Handler) handleCategory1(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, domain.SortedEntries(h.dash.Aggregation.ByCategory1))
}

// handleCategory2 returns campaign counts per Category2 ordered by label.
func (h *Handler) handleCategory2(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.dash.Aggregation.ByCategory2)
}

// handleTimeline returns campaign counts per YearMonth in chronological
// order.
func (h *Handler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.dash.Aggregation.ByYearMonth)
}

// handleHeatmap returns the dense month by year matrix.
func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.dash.Aggregation.Heatmap)
}

// handleCampaigns returns one page of the derived campaign table. It accepts
// `sort`, `desc`, `page`, `page_size` and `f_<column>` query parameters.
// Malformed parameters and unknown columns result in HTTP 400.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseTableQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page, err := h.svc.QueryTable(h.dash, q)
	if err != nil {
		h.tableError(w, err)
		return
	}
	h.writeJSON(w, r, page)
}

func (h *Handler) tableError(w http.ResponseWriter, err error) {
	if errors.Is(err, port.ErrUnknownColumn) || errors.Is(err, port.ErrInvalidQuery) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Error("table query error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

var errBadParam = errors.New("invalid query parameter")

func (h *Handler) parseTableQuery(v url.Values) (port.TableQuery, error) {
	q := port.TableQuery{
		SortBy:   v.Get("sort"),
		Filters:  map[string]string{},
		Page:     1,
		PageSize: h.opts.PageSize,
	}
	if s := v.Get("desc"); s != "" {
		desc, err := strconv.ParseBool(s)
		if err != nil {
			return q, badParam("desc")
		}
		q.Desc = desc
	}
	if s := v.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return q, badParam("page")
		}
		q.Page = n
	}
	if s := v.Get("page_size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return q, badParam("page_size")
		}
		q.PageSize = n
	}
	for key, vals := range v {
		col, ok := strings.CutPrefix(key, filterPrefix)
		if !ok || col == "" || len(vals) == 0 {
			continue
		}
		q.Filters[col] = vals[0]
	}
	return q, nil
}

func badParam(name string) error {
	return &paramError{name: name}
}

type paramError struct{ name string }

func (e *paramError) Error() string { return errBadParam.Error() + " '" + e.name + "'" }
func (e *paramError) Unwrap() error { return errBadParam }

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "encode response error", slog.Any("error", err))
	}
}
