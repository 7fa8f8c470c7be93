package views

import (
	"math"
	"strconv"
)

const (
	pieSize   = 300.0
	pieRadius = 110.0

	// HomeColor and AwayColor are the slice fills for the home and away side.
	HomeColor = "#006778"
	AwayColor = "#000000"
)

// PieChart is an SVG pie with one slice per entry, drawn clockwise from 12 o'clock.
type PieChart struct {
	Title  string
	Size   float64
	Center float64
	Radius float64
	Slices []PieSlice
}

// PieSlice is one wedge. Full marks a slice covering the whole pie, drawn as a circle.
type PieSlice struct {
	Label   string
	Value   float64
	Percent string
	Color   string
	Path    string
	Full    bool
}

// PieEntry is an input value for NewPieChart.
type PieEntry struct {
	Label string
	Value float64
	Color string
}

// NewPieChart sizes slices by each value's share of the total. Negative values count as zero;
// a zero total yields a chart with no slices.
func NewPieChart(title string, entries []PieEntry) PieChart {
	chart := PieChart{
		Title:  title,
		Size:   pieSize,
		Center: pieSize / 2,
		Radius: pieRadius,
	}

	var total float64
	for _, e := range entries {
		total += math.Max(e.Value, 0)
	}
	if total <= 0 {
		return chart
	}

	start := 0.0
	for _, e := range entries {
		value := math.Max(e.Value, 0)
		if value == 0 {
			continue
		}
		sweep := value / total * 2 * math.Pi
		slice := PieSlice{
			Label:   e.Label,
			Value:   e.Value,
			Percent: Percent(e.Value),
			Color:   e.Color,
		}
		if value >= total {
			slice.Full = true
		} else {
			slice.Path = wedgePath(chart.Center, chart.Radius, start, start+sweep)
		}
		chart.Slices = append(chart.Slices, slice)
		start += sweep
	}
	return chart
}

// wedgePath returns an SVG path for the wedge between two angles (radians, clockwise from 12 o'clock).
func wedgePath(c, r, from, to float64) string {
	x1, y1 := polar(c, r, from)
	x2, y2 := polar(c, r, to)
	largeArc := "0"
	if to-from > math.Pi {
		largeArc = "1"
	}
	return "M " + coord(c) + " " + coord(c) +
		" L " + coord(x1) + " " + coord(y1) +
		" A " + coord(r) + " " + coord(r) + " 0 " + largeArc + " 1 " + coord(x2) + " " + coord(y2) +
		" Z"
}

func polar(c, r, angle float64) (float64, float64) {
	return c + r*math.Sin(angle), c - r*math.Cos(angle)
}

func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
