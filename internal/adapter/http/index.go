package httpadapter

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"campdash/internal/adapter/chart"
	"campdash/internal/core/port"
)

type card struct {
	Label string
	Value string
}

type chartRef struct {
	Name string
	Alt  string
	Wide bool
}

type header struct {
	Name    string
	SortURL string
	Arrow   string
	Filter  string
}

type indexView struct {
	Title    string
	Source   string
	LoadedAt string
	Cards    []card
	Charts   []chartRef
	Query    port.TableQuery
	Page     *port.TablePage
	Headers  []header
	PrevURL  string
	NextURL  string
}

var chartAlts = map[string]string{
	chart.Pie:     "Campaigns by Category1",
	chart.Bar:     "Campaigns by Category2",
	chart.Line:    "Campaign Starts Over Time",
	chart.Heatmap: "Campaign Seasonality (Month vs Year)",
}

// handleIndex renders the dashboard page with the table view selected by the
// query string.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q, err := h.parseTableQuery(values)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page, err := h.svc.QueryTable(h.dash, q)
	if err != nil {
		h.tableError(w, err)
		return
	}

	p := message.NewPrinter(language.English)
	k := h.dash.Aggregation.KPIs
	view := indexView{
		Title:    h.opts.Title,
		Source:   h.dash.Source,
		LoadedAt: h.dash.LoadedAt.Format("2006-01-02 15:04:05 MST"),
		Cards: []card{
			{Label: "Total Campaigns", Value: p.Sprintf("%d", k.TotalCampaigns)},
			{Label: "Avg Duration (Days)", Value: p.Sprintf("%.1f", k.AvgDuration)},
			{Label: "Longest Duration", Value: p.Sprintf("%d days", k.LongestDuration)},
			{Label: "Shortest Duration", Value: p.Sprintf("%d days", k.ShortestDuration)},
		},
		Query: q,
		Page:  page,
	}
	for _, name := range chart.Names {
		view.Charts = append(view.Charts, chartRef{Name: name, Alt: chartAlts[name], Wide: name == chart.Heatmap})
	}
	for _, col := range page.Columns {
		hd := header{Name: col, Filter: q.Filters[col]}
		desc := false
		if q.SortBy == col {
			desc = !q.Desc
			hd.Arrow = " ▲"
			if q.Desc {
				hd.Arrow = " ▼"
			}
		}
		hd.SortURL = pageURL(values, map[string]string{"sort": col, "desc": strconv.FormatBool(desc), "page": "1"})
		view.Headers = append(view.Headers, hd)
	}
	if page.Page > 1 {
		view.PrevURL = pageURL(values, map[string]string{"page": strconv.Itoa(page.Page - 1)})
	}
	if page.Page < page.TotalPages {
		view.NextURL = pageURL(values, map[string]string{"page": strconv.Itoa(page.Page + 1)})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = h.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		h.logger.ErrorContext(r.Context(), "render index error", slog.Any("error", err))
	}
}

// pageURL copies the current query and overrides the given keys.
func pageURL(values url.Values, set map[string]string) string {
	next := make(url.Values, len(values)+len(set))
	for k, v := range values {
		next[k] = append([]string(nil), v...)
	}
	for k, v := range set {
		next.Set(k, v)
	}
	return "/?" + next.Encode()
}
