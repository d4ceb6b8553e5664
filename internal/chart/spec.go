// Package chart holds declarative chart specifications and the pixel geometry
// needed to draw them. Specs carry data and encoding only; rendering lives in
// the templates (SVG) and in imagegen (PNG).
package chart

// Direction is the sense in which angles increase on a polar chart.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
)

// Bar is a single-series categorical bar chart. Each bar carries its own colour.
type Bar struct {
	Title  string     `json:"title"`
	XLabel string     `json:"x_label"`
	YLabel string     `json:"y_label"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Bars   []BarDatum `json:"bars"`
}

type BarDatum struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}

// Polar is a scatter plot on a polar grid. R is plotted against RadialRange;
// Theta is in degrees, measured in Direction from north when clockwise and
// from east otherwise.
type Polar struct {
	Title         string       `json:"title,omitempty"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	RadialRange   [2]float64   `json:"radial_range"`
	RadialVisible bool         `json:"radial_visible"`
	Direction     Direction    `json:"direction"`
	ShowLegend    bool         `json:"show_legend"`
	Points        []PolarPoint `json:"points"`
}

type PolarPoint struct {
	Name  string  `json:"name"`
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}
