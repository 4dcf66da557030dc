// Package chart renders the dashboard figures. Pie, bar and line charts use
// go-chart; the month by year heatmap uses gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"campdash/internal/core/domain"
)

var (
	// ErrNoData is returned when a chart has nothing to draw.
	ErrNoData = errors.New("chart: no data")
	// ErrUnknownChart is returned for an unrecognised chart name.
	ErrUnknownChart = errors.New("chart: unknown chart")
	// ErrUnknownFormat is returned for an unrecognised image format.
	ErrUnknownFormat = errors.New("chart: unknown format")
)

// Chart names served by the dashboard.
const (
	Pie     = "pie"
	Bar     = "bar"
	Line    = "line"
	Heatmap = "heatmap"
)

// Names lists every chart in page order.
var Names = []string{Pie, Bar, Line, Heatmap}

// Format is an output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatPNG {
		return gochart.PNG
	}
	return gochart.SVG
}

// Renderer draws charts of a fixed pixel size.
type Renderer struct {
	Width  int
	Height int
	Format Format
}

// NewRenderer returns a renderer; an empty format means SVG.
func NewRenderer(width, height int, format Format) Renderer {
	if format == "" {
		format = FormatSVG
	}
	return Renderer{Width: width, Height: height, Format: format}
}

// Render draws the chart called name from agg.
func (r Renderer) Render(w io.Writer, name string, agg domain.Aggregation) error {
	switch name {
	case Pie:
		return r.Pie(w, agg.ByCategory1)
	case Bar:
		return r.Bar(w, agg.ByCategory2)
	case Line:
		return r.Line(w, agg.ByYearMonth)
	case Heatmap:
		return r.Heatmap(w, agg.Heatmap)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
}
