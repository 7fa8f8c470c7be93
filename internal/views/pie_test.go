package views

import (
	"strings"
	"testing"
)

func TestNewPieChartSplitsByShare(t *testing.T) {
	chart := NewPieChart("logistic", []PieEntry{
		{Label: "KC", Value: 0.7, Color: HomeColor},
		{Label: "BUF", Value: 0.3, Color: AwayColor},
	})

	if len(chart.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(chart.Slices))
	}
	home, away := chart.Slices[0], chart.Slices[1]
	if home.Percent != "70.0%" || away.Percent != "30.0%" {
		t.Fatalf("unexpected percents %s/%s", home.Percent, away.Percent)
	}
	if home.Color != HomeColor || away.Color != AwayColor {
		t.Fatalf("unexpected colors %s/%s", home.Color, away.Color)
	}
	// 70% sweeps more than half the circle, 30% does not.
	if !strings.Contains(home.Path, " 0 1 1 ") {
		t.Fatalf("expected large-arc flag on home slice, got %s", home.Path)
	}
	if !strings.Contains(away.Path, " 0 0 1 ") {
		t.Fatalf("expected small-arc flag on away slice, got %s", away.Path)
	}
	if !strings.HasPrefix(home.Path, "M 150.00 150.00 L 150.00 40.00 ") {
		t.Fatalf("expected home slice to start at 12 o'clock, got %s", home.Path)
	}
}

func TestNewPieChartHalfAndHalf(t *testing.T) {
	chart := NewPieChart("even", []PieEntry{{Label: "A", Value: 0.5}, {Label: "B", Value: 0.5}})
	if len(chart.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(chart.Slices))
	}
	// First wedge ends at 6 o'clock.
	if !strings.HasSuffix(chart.Slices[0].Path, "150.00 260.00 Z") {
		t.Fatalf("expected first wedge to end at bottom, got %s", chart.Slices[0].Path)
	}
}

func TestNewPieChartSingleFullSlice(t *testing.T) {
	chart := NewPieChart("sure thing", []PieEntry{{Label: "KC", Value: 1}, {Label: "BUF", Value: 0}})
	if len(chart.Slices) != 1 {
		t.Fatalf("expected zero-valued slice to be dropped, got %d", len(chart.Slices))
	}
	if !chart.Slices[0].Full || chart.Slices[0].Path != "" {
		t.Fatalf("expected full circle slice, got %+v", chart.Slices[0])
	}
}

func TestNewPieChartEmptyTotal(t *testing.T) {
	chart := NewPieChart("nothing", []PieEntry{{Label: "KC", Value: 0}, {Label: "BUF", Value: -0.2}})
	if len(chart.Slices) != 0 {
		t.Fatalf("expected no slices, got %+v", chart.Slices)
	}
	if chart.Size != pieSize || chart.Radius != pieRadius {
		t.Fatalf("expected geometry to be set, got %+v", chart)
	}
}

func TestNewPieChartUnnormalizedValues(t *testing.T) {
	// Shares are relative to the total even when values do not sum to 1.
	chart := NewPieChart("skewed", []PieEntry{{Label: "A", Value: 0.6}, {Label: "B", Value: 0.6}})
	if !strings.HasSuffix(chart.Slices[0].Path, "150.00 260.00 Z") {
		t.Fatalf("expected equal halves, got %s", chart.Slices[0].Path)
	}
	if chart.Slices[0].Percent != "60.0%" {
		t.Fatalf("expected label to show the raw probability, got %s", chart.Slices[0].Percent)
	}
}
