package chart

import (
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"campdash/internal/core/domain"
)

// maxLineTicks bounds the labelled points on the time axis.
const maxLineTicks = 24

// Pie draws the share of campaigns per Category1. Slices are ordered by
// label so repeated renders are identical.
func (r Renderer) Pie(w io.Writer, counts map[string]int) error {
	entries := domain.SortedEntries(counts)
	if len(entries) == 0 {
		return ErrNoData
	}
	values := make([]gochart.Value, 0, len(entries))
	for _, e := range entries {
		values = append(values, gochart.Value{Label: e.Key, Value: float64(e.Count)})
	}
	pie := gochart.PieChart{
		Title:  "Campaigns by Category1",
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	return pie.Render(r.Format.provider(), w)
}

// Bar draws one bar per Category2 label in the given order.
func (r Renderer) Bar(w io.Writer, entries []domain.CountEntry) error {
	if len(entries) == 0 {
		return ErrNoData
	}
	bars := make([]gochart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, gochart.Value{Label: e.Key, Value: float64(e.Count)})
	}
	bar := gochart.BarChart{
		Title:    "Campaign Count by Category2",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth(r.Width, len(bars)),
		Bars:     bars,
		YAxis: gochart.YAxis{
			Range: countRange(entries),
		},
	}
	return bar.Render(r.Format.provider(), w)
}

// Line draws campaigns per YearMonth with point markers. The x axis is the
// entry index labelled with its key.
func (r Renderer) Line(w io.Writer, entries []domain.CountEntry) error {
	if len(entries) == 0 {
		return ErrNoData
	}
	xs := make([]float64, len(entries))
	ys := make([]float64, len(entries))
	step := (len(entries) + maxLineTicks - 1) / maxLineTicks
	// go-chart takes the x range from the ticks, so unlabelled bounds keep a
	// lone month from collapsing it to zero width.
	lo, hi := -0.5, float64(len(entries))-0.5
	ticks := []gochart.Tick{{Value: lo}}
	for i, e := range entries {
		xs[i] = float64(i)
		ys[i] = float64(e.Count)
		if i%step == 0 {
			ticks = append(ticks, gochart.Tick{Value: float64(i), Label: e.Key})
		}
	}
	ticks = append(ticks, gochart.Tick{Value: hi})

	ch := gochart.Chart{
		Title:  "Number of Campaigns Over Time",
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			Name:      "YearMonth",
			Range:     &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks:     ticks,
			TickStyle: gochart.Style{TextRotationDegrees: 45},
		},
		YAxis: gochart.YAxis{
			Name:  "Count",
			Range: countRange(entries),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Count",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: 2,
					StrokeColor: gochart.ColorBlue,
					DotWidth:    4,
					DotColor:    gochart.ColorBlue,
				},
			},
		},
	}
	return ch.Render(r.Format.provider(), w)
}

// countRange starts the value axis at zero with headroom above the largest
// count, which also keeps single-valued series from collapsing the range.
func countRange(entries []domain.CountEntry) *gochart.ContinuousRange {
	top := 0
	for _, e := range entries {
		top = max(top, e.Count)
	}
	return &gochart.ContinuousRange{Min: 0, Max: float64(top) * 1.1}
}

func barWidth(width, n int) int {
	bw := width / (2 * n)
	return min(max(bw, 4), 60)
}
