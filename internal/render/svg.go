package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// Renderer turns computed figures into a displayable chart.
type Renderer interface {
	RenderPie(w io.Writer, fig domain.PieFigure) error
	RenderScatter(w io.Writer, fig domain.ScatterFigure) error
	ContentType() string
}

// Default palette for slices and booster categories.
var palette = []string{
	"4F46E5", "10B981", "F59E0B", "EF4444", "8B5CF6",
	"06B6D4", "EC4899", "84CC16", "F97316", "6366F1",
}

const noDataLabel = "No data"

// SVGRenderer renders figures as SVG documents with go-chart.
type SVGRenderer struct {
	Width  int
	Height int
}

// NewSVGRenderer creates a renderer with the given canvas size.
func NewSVGRenderer(width, height int) *SVGRenderer {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 500
	}
	return &SVGRenderer{Width: width, Height: height}
}

// ContentType returns the MIME type of the rendered output.
func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

// RenderPie draws the proportion chart. Zero-valued entries carry no area
// and are left out; an empty figure renders a single grey "No data" disc.
func (r *SVGRenderer) RenderPie(w io.Writer, fig domain.PieFigure) error {
	values := make([]chart.Value, 0, len(fig.Data.Entries))
	for i, e := range fig.Data.Entries {
		if e.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: pieLabel(fig.Data.Kind, e),
			Value: float64(e.Value),
			Style: chart.Style{FillColor: paletteColor(i), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		values = []chart.Value{{
			Label: noDataLabel,
			Value: 1,
			Style: chart.Style{FillColor: chart.ColorAlternateGray, StrokeColor: drawing.ColorWhite},
		}}
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// RenderScatter draws one dot series per booster category.
func (r *SVGRenderer) RenderScatter(w io.Writer, fig domain.ScatterFigure) error {
	lo, hi := axisBounds(fig)

	var series []chart.Series
	for i, booster := range fig.Rows.BoosterCategories() {
		var xs, ys []float64
		for _, row := range fig.Rows {
			if row.BoosterCategory != booster {
				continue
			}
			xs = append(xs, row.PayloadMass)
			ys = append(ys, float64(row.Outcome))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    booster,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	empty := len(series) == 0
	if empty {
		// go-chart needs one visible series; this one draws nothing.
		series = append(series, chart.ContinuousSeries{
			Name:    noDataLabel,
			XValues: []float64{lo, hi},
			YValues: []float64{0, 0},
			Style:   blankStyle(),
		})
	}

	yTicks := make([]chart.Tick, 0, len(fig.YTicks))
	for _, o := range fig.YTicks {
		yTicks = append(yTicks, chart.Tick{Value: float64(o), Label: o.String()})
	}

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: yTicks,
		},
		Series: series,
	}
	if !empty {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// blankStyle keeps a series visible to go-chart without drawing any mark.
func blankStyle() chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    0,
		DotColor:    drawing.ColorTransparent,
	}
}

func paletteColor(i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

func pieLabel(kind domain.AggregateKind, e domain.AggregateEntry) string {
	if kind == domain.AggregateByOutcome {
		return fmt.Sprintf("class %s (%d)", e.Label, e.Value)
	}
	return fmt.Sprintf("%s (%d)", e.Label, e.Value)
}

// axisBounds returns a non-degenerate x range covering the selected payload
// range and every plotted row.
func axisBounds(fig domain.ScatterFigure) (float64, float64) {
	lo, hi := fig.Range.Low, fig.Range.High
	if fig.Range.Inverted() {
		lo, hi = hi, lo
	}
	for _, row := range fig.Rows {
		lo = min(lo, row.PayloadMass)
		hi = max(hi, row.PayloadMass)
	}
	if hi-lo < 1 {
		lo = max(0, lo-500)
		hi = lo + 1000
	}
	return lo, hi
}
