package chart

import (
	"math"
	"strconv"
)

const (
	barMarginLeft   = 64.0
	barMarginRight  = 24.0
	barMarginTop    = 48.0
	barMarginBottom = 56.0
	barTickCount    = 5

	polarMargin      = 36.0
	polarLegendWidth = 150.0
	polarRings       = 3
	polarSpokeStep   = 45.0
)

// Tick is an axis gridline at Pos pixels.
type Tick struct {
	Value float64
	Label string
	Pos   float64
}

type BarRect struct {
	Category string
	Value    float64
	Label    string
	Color    string
	X, Y     float64
	W, H     float64
	CenterX  float64
}

// BarLayout is the pixel geometry of a Bar chart with the origin at the top left.
type BarLayout struct {
	Width, Height int
	Title         string
	XLabel        string
	YLabel        string
	Left, Top     float64
	Right, Bottom float64
	Bars          []BarRect
	Ticks         []Tick
}

// Layout computes bar positions and y-axis ticks. The y axis always starts at
// zero and ends on a round number at or above the tallest bar.
func (b Bar) Layout() BarLayout {
	l := BarLayout{
		Width:  b.Width,
		Height: b.Height,
		Title:  b.Title,
		XLabel: b.XLabel,
		YLabel: b.YLabel,
		Left:   barMarginLeft,
		Top:    barMarginTop,
		Right:  float64(b.Width) - barMarginRight,
		Bottom: float64(b.Height) - barMarginBottom,
	}

	maxVal := 0.0
	for _, d := range b.Bars {
		maxVal = math.Max(maxVal, d.Value)
	}
	step := niceStep(maxVal / barTickCount)
	top := step * math.Ceil(maxVal/step)
	if top <= 0 {
		top = step
	}

	plotH := l.Bottom - l.Top
	scale := func(v float64) float64 {
		return l.Bottom - (v/top)*plotH
	}

	for v := 0.0; v <= top+step/2; v += step {
		l.Ticks = append(l.Ticks, Tick{Value: v, Label: FormatNumber(v), Pos: scale(v)})
	}

	if n := len(b.Bars); n > 0 {
		slot := (l.Right - l.Left) / float64(n)
		width := slot * 0.6
		for i, d := range b.Bars {
			v := math.Max(d.Value, 0)
			y := scale(v)
			x := l.Left + slot*float64(i) + (slot-width)/2
			l.Bars = append(l.Bars, BarRect{
				Category: d.Category,
				Value:    d.Value,
				Label:    FormatNumber(d.Value),
				Color:    d.Color,
				X:        x,
				Y:        y,
				W:        width,
				H:        l.Bottom - y,
				CenterX:  x + width/2,
			})
		}
	}
	return l
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / exp; {
	case f <= 1:
		return exp
	case f <= 2:
		return 2 * exp
	case f <= 5:
		return 5 * exp
	default:
		return 10 * exp
	}
}

// FormatNumber prints v without trailing zeros, to at most two decimals.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

type Ring struct {
	Radius         float64
	Label          string
	LabelX, LabelY float64
}

type Spoke struct {
	X, Y           float64
	Label          string
	LabelX, LabelY float64
}

type Marker struct {
	Name         string
	X, Y         float64
	Size         float64
	Color        string
	Text         string
	TextX, TextY float64
}

type LegendItem struct {
	Name  string
	Color string
	X, Y  float64
}

// PolarLayout is the pixel geometry of a Polar chart.
type PolarLayout struct {
	Width, Height int
	Title         string
	CX, CY        float64
	Radius        float64
	RadialVisible bool
	Rings         []Ring
	Spokes        []Spoke
	Markers       []Marker
	Legend        []LegendItem
}

// Layout computes grid rings, angular spokes, marker positions and legend
// placement for p.
func (p Polar) Layout() PolarLayout {
	w, h := float64(p.Width), float64(p.Height)
	plotW := w
	if p.ShowLegend {
		plotW -= polarLegendWidth
	}

	l := PolarLayout{
		Width:         p.Width,
		Height:        p.Height,
		Title:         p.Title,
		CX:            plotW / 2,
		CY:            h / 2,
		Radius:        math.Max(math.Min(plotW, h)/2-polarMargin, 1),
		RadialVisible: p.RadialVisible,
	}

	lo, hi := p.RadialRange[0], p.RadialRange[1]
	for i := 1; i <= polarRings; i++ {
		frac := float64(i) / polarRings
		r := l.Radius * frac
		ring := Ring{Radius: r, Label: FormatNumber(lo + (hi-lo)*frac)}
		// Radial labels sit along the 0° spoke, just off the line.
		ring.LabelX, ring.LabelY = p.project(l, r, 0)
		ring.LabelX += 4
		l.Rings = append(l.Rings, ring)
	}

	for deg := 0.0; deg < 360; deg += polarSpokeStep {
		s := Spoke{Label: FormatNumber(deg) + "°"}
		s.X, s.Y = p.project(l, l.Radius, deg)
		s.LabelX, s.LabelY = p.project(l, l.Radius+16, deg)
		l.Spokes = append(l.Spokes, s)
	}

	for i, pt := range p.Points {
		x, y := p.Project(l, pt.R, pt.Theta)
		m := Marker{
			Name:  pt.Name,
			X:     x,
			Y:     y,
			Size:  pt.Size,
			Color: pt.Color,
			Text:  pt.Text,
			TextX: x,
			TextY: y - pt.Size - 4,
		}
		l.Markers = append(l.Markers, m)
		if p.ShowLegend {
			l.Legend = append(l.Legend, LegendItem{
				Name:  pt.Name,
				Color: pt.Color,
				X:     plotW + 16,
				Y:     polarMargin + float64(i)*20,
			})
		}
	}
	return l
}

// Project maps a data point to pixels. R outside RadialRange is pinned to the
// nearest edge of the grid.
func (p Polar) Project(l PolarLayout, r, theta float64) (x, y float64) {
	lo, hi := p.RadialRange[0], p.RadialRange[1]
	frac := 0.0
	if hi > lo {
		frac = math.Min(math.Max((r-lo)/(hi-lo), 0), 1)
	}
	return p.project(l, l.Radius*frac, theta)
}

func (p Polar) project(l PolarLayout, px, theta float64) (x, y float64) {
	rad := theta * math.Pi / 180
	if p.Direction == Clockwise {
		return l.CX + px*math.Sin(rad), l.CY - px*math.Cos(rad)
	}
	return l.CX + px*math.Cos(rad), l.CY - px*math.Sin(rad)
}
