package chart

import (
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"campdash/internal/core/domain"
)

// heatmapGrid adapts a HeatmapMatrix to plotter.GridXYZ. Columns are years
// and rows are months; both axes are nominal, so X and Y are indexes.
type heatmapGrid struct {
	m domain.HeatmapMatrix
}

func (g heatmapGrid) Dims() (c, r int)   { return len(g.m.Years), len(g.m.Months) }
func (g heatmapGrid) Z(c, r int) float64 { return float64(g.m.Counts[r][c]) }
func (g heatmapGrid) X(c int) float64    { return float64(c) }
func (g heatmapGrid) Y(r int) float64    { return float64(r) }

// blues runs from near white to dark blue.
type blues []color.Color

func (b blues) Colors() []color.Color { return b }

func newBlues(n int) blues {
	from := color.RGBA{R: 247, G: 251, B: 255, A: 255}
	to := color.RGBA{R: 8, G: 48, B: 107, A: 255}
	out := make(blues, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = color.RGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: 255,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Heatmap draws campaign counts with years across and months up, January at
// the bottom.
func (r Renderer) Heatmap(w io.Writer, m domain.HeatmapMatrix) error {
	if len(m.Years) == 0 || len(m.Months) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Monthly Campaign Intensity (Heatmap)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Month"

	hm := plotter.NewHeatMap(heatmapGrid{m: m}, newBlues(9))
	hm.Min = 0
	if hm.Max <= hm.Min {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	years := make([]string, len(m.Years))
	for i, y := range m.Years {
		years[i] = strconv.Itoa(y)
	}
	p.NominalX(years...)
	p.NominalY(m.Months...)

	wt, err := p.WriterTo(vg.Points(float64(r.Width)), vg.Points(float64(r.Height)), string(r.Format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
