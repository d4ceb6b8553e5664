package chart

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBarLayout(t *testing.T) {
	b := Bar{
		Width:  600,
		Height: 400,
		Bars: []BarDatum{
			{Category: "Current age", Value: 30, Color: "#636EFA"},
			{Category: "Observed age", Value: 20, Color: "#EF553B"},
		},
	}
	l := b.Layout()

	if len(l.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(l.Bars))
	}
	plotH := l.Bottom - l.Top
	if !approx(l.Bars[0].H, plotH) {
		t.Errorf("tallest bar height = %v, want full plot height %v", l.Bars[0].H, plotH)
	}
	if !approx(l.Bars[1].H, plotH*2/3) {
		t.Errorf("second bar height = %v, want %v", l.Bars[1].H, plotH*2/3)
	}
	if l.Bars[0].X >= l.Bars[1].X {
		t.Error("bars should be laid out left to right")
	}
	if l.Bars[1].Color != "#EF553B" || l.Bars[1].Label != "20" {
		t.Errorf("unexpected bar: %+v", l.Bars[1])
	}

	wantTicks := []string{"0", "10", "20", "30"}
	if len(l.Ticks) != len(wantTicks) {
		t.Fatalf("ticks = %+v, want labels %v", l.Ticks, wantTicks)
	}
	for i, tick := range l.Ticks {
		if tick.Label != wantTicks[i] {
			t.Errorf("tick %d = %q, want %q", i, tick.Label, wantTicks[i])
		}
	}
	if !approx(l.Ticks[0].Pos, l.Bottom) {
		t.Errorf("zero tick at %v, want %v", l.Ticks[0].Pos, l.Bottom)
	}
}

func TestBarLayoutAllZero(t *testing.T) {
	l := Bar{Width: 600, Height: 400, Bars: []BarDatum{{Value: 0}, {Value: 0}}}.Layout()
	for _, bar := range l.Bars {
		if bar.H != 0 {
			t.Errorf("zero bar has height %v", bar.H)
		}
	}
	if len(l.Ticks) < 2 {
		t.Errorf("expected an axis even with zero data, got %+v", l.Ticks)
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0, 1},
		{-3, 1},
		{0.3, 0.5},
		{1, 1},
		{1.5, 2},
		{6, 10},
		{24, 50},
		{120, 200},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); !approx(got, tt.want) {
			t.Errorf("niceStep(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		20:      "20",
		47.88:   "47.88",
		0.5:     "0.5",
		26.1349: "26.13",
	}
	for v, want := range tests {
		if got := FormatNumber(v); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", v, got, want)
		}
	}
}

func skyChart() Polar {
	return Polar{
		Width:         600,
		Height:        400,
		RadialRange:   [2]float64{0, 90},
		RadialVisible: true,
		Direction:     Clockwise,
		ShowLegend:    true,
		Points: []PolarPoint{
			{Name: "Object position", R: 47.88, Theta: 26.13, Color: "#EF553B", Size: 10},
		},
	}
}

func TestPolarProjectClockwise(t *testing.T) {
	p := skyChart()
	l := p.Layout()

	tests := []struct {
		name  string
		r     float64
		theta float64
		x, y  float64
	}{
		{name: "zenith at centre", r: 0, theta: 123, x: l.CX, y: l.CY},
		{name: "north is up", r: 90, theta: 0, x: l.CX, y: l.CY - l.Radius},
		{name: "east is right", r: 90, theta: 90, x: l.CX + l.Radius, y: l.CY},
		{name: "south is down", r: 90, theta: 180, x: l.CX, y: l.CY + l.Radius},
		{name: "west is left", r: 90, theta: 270, x: l.CX - l.Radius, y: l.CY},
		{name: "beyond range pinned", r: 200, theta: 90, x: l.CX + l.Radius, y: l.CY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.Project(l, tt.r, tt.theta)
			if !approx(x, tt.x) || !approx(y, tt.y) {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)", tt.r, tt.theta, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestPolarProjectCounterClockwise(t *testing.T) {
	p := skyChart()
	p.Direction = CounterClockwise
	l := p.Layout()

	x, y := p.Project(l, 90, 90)
	if !approx(x, l.CX) || !approx(y, l.CY-l.Radius) {
		t.Errorf("90° counterclockwise should be up, got (%v, %v)", x, y)
	}
}

func TestPolarLayoutMarker(t *testing.T) {
	l := skyChart().Layout()

	if len(l.Markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(l.Markers))
	}
	m := l.Markers[0]
	dist := math.Hypot(m.X-l.CX, m.Y-l.CY)
	if !approx(dist, l.Radius*47.88/90) {
		t.Errorf("marker distance = %v, want %v", dist, l.Radius*47.88/90)
	}
	// 26.13° clockwise from north lands in the upper right quadrant.
	if m.X <= l.CX || m.Y >= l.CY {
		t.Errorf("marker at (%v, %v) is not north-east of centre (%v, %v)", m.X, m.Y, l.CX, l.CY)
	}
	if len(l.Legend) != 1 || l.Legend[0].Name != "Object position" {
		t.Errorf("unexpected legend: %+v", l.Legend)
	}
	if len(l.Rings) != 3 || l.Rings[2].Label != "90" {
		t.Errorf("unexpected rings: %+v", l.Rings)
	}
	if len(l.Spokes) != 8 || l.Spokes[2].Label != "90°" {
		t.Errorf("unexpected spokes: %+v", l.Spokes)
	}
}

func TestPolarLayoutWithoutLegend(t *testing.T) {
	p := skyChart()
	p.ShowLegend = false
	l := p.Layout()
	if len(l.Legend) != 0 {
		t.Errorf("expected no legend, got %+v", l.Legend)
	}
	if !approx(l.CX, 300) {
		t.Errorf("CX = %v, want 300 without legend", l.CX)
	}
}
