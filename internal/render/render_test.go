package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vietddude/launchdash/internal/core/domain"
)

func TestTitles(t *testing.T) {
	tests := []struct {
		category string
		pie      string
		scatter  string
	}{
		{
			category: domain.AllCategory,
			pie:      "Total successful launches by launch site",
			scatter:  "Correlation between Payload Mass and Success for All Sites",
		},
		{
			category: "KSC LC-39A",
			pie:      "Total successful launches at Launch Site: KSC LC-39A",
			scatter:  "Correlation between Payload Mass and Success for KSC LC-39A",
		},
	}

	for _, tt := range tests {
		if got := PieTitle(tt.category); got != tt.pie {
			t.Errorf("PieTitle(%q) = %q, want %q", tt.category, got, tt.pie)
		}
		if got := ScatterTitle(tt.category); got != tt.scatter {
			t.Errorf("ScatterTitle(%q) = %q, want %q", tt.category, got, tt.scatter)
		}
	}
}

func TestBuildScatter_PinsOutcomeTicks(t *testing.T) {
	fig := BuildScatter(domain.AllCategory, domain.PayloadRange{Low: 0, High: 1000}, nil)

	if len(fig.YTicks) != 2 || fig.YTicks[0] != 0 || fig.YTicks[1] != 1 {
		t.Errorf("Expected y ticks [0 1], got %v", fig.YTicks)
	}
}

func TestSVGRenderer_Pie(t *testing.T) {
	r := NewSVGRenderer(0, 0)
	fig := BuildPie(domain.AllCategory, domain.AggregateResult{
		Kind: domain.AggregateBySite,
		Entries: []domain.AggregateEntry{
			{Label: "A", Value: 3},
			{Label: "B", Value: 0},
			{Label: "C", Value: 1},
		},
	})

	var buf bytes.Buffer
	if err := r.RenderPie(&buf, fig); err != nil {
		t.Fatalf("RenderPie failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("Expected SVG output, got %q", out[:min(len(out), 64)])
	}
	if !strings.Contains(out, "A (3)") {
		t.Error("Expected slice label for site A")
	}
	if strings.Contains(out, "B (0)") {
		t.Error("Expected zero-valued slice to be skipped")
	}
}

func TestSVGRenderer_EmptyPie(t *testing.T) {
	r := NewSVGRenderer(400, 300)
	fig := BuildPie("nowhere", domain.AggregateResult{Kind: domain.AggregateByOutcome})

	var buf bytes.Buffer
	if err := r.RenderPie(&buf, fig); err != nil {
		t.Fatalf("RenderPie failed on empty data: %v", err)
	}
	if !strings.Contains(buf.String(), noDataLabel) {
		t.Error("Expected placeholder label in empty pie")
	}
}

func TestSVGRenderer_Scatter(t *testing.T) {
	r := NewSVGRenderer(640, 480)
	rows := domain.ScatterRows{
		{LaunchSite: "A", PayloadMass: 500, Outcome: 1, BoosterCategory: "v1"},
		{LaunchSite: "B", PayloadMass: 800, Outcome: 0, BoosterCategory: "FT"},
	}
	fig := BuildScatter(domain.AllCategory, domain.PayloadRange{Low: 0, High: 1000}, rows)

	var buf bytes.Buffer
	if err := r.RenderScatter(&buf, fig); err != nil {
		t.Fatalf("RenderScatter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("Expected SVG output")
	}
}

func TestSVGRenderer_ScatterEdgeCases(t *testing.T) {
	r := NewSVGRenderer(640, 480)
	cases := map[string]domain.ScatterFigure{
		"empty":        BuildScatter("A", domain.PayloadRange{Low: 0, High: 1000}, nil),
		"inverted":     BuildScatter("A", domain.PayloadRange{Low: 5000, High: 1000}, domain.ScatterRows{}),
		"unknown site": BuildScatter("Nowhere", domain.PayloadRange{Low: 0, High: 9600}, domain.ScatterRows{}),
		"single point": BuildScatter("A", domain.PayloadRange{Low: 2500, High: 2500}, domain.ScatterRows{{LaunchSite: "A", PayloadMass: 2500, Outcome: 1, BoosterCategory: "B5"}}),
	}

	for name, fig := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.RenderScatter(&buf, fig); err != nil {
				t.Fatalf("RenderScatter failed: %v", err)
			}
			if !strings.Contains(buf.String(), "<svg") {
				t.Error("Expected SVG output")
			}
		})
	}
}

func TestAxisBounds(t *testing.T) {
	lo, hi := axisBounds(domain.ScatterFigure{Range: domain.PayloadRange{Low: 2500, High: 2500}})
	if !(lo < 2500 && hi > 2500) {
		t.Errorf("Expected padded bounds around 2500, got [%v, %v]", lo, hi)
	}

	lo, hi = axisBounds(domain.ScatterFigure{Range: domain.PayloadRange{Low: 4000, High: 1000}})
	if lo != 1000 || hi != 4000 {
		t.Errorf("Expected swapped bounds [1000, 4000], got [%v, %v]", lo, hi)
	}
}
