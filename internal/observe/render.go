package observe

import (
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/lox/lightage/internal/chart"
	"github.com/lox/lightage/internal/metadata"
	"github.com/lox/lightage/internal/models"
)

// Fixed chart colours: current age, observed age / object marker.
const (
	ColorCurrent  = "#636EFA"
	ColorObserved = "#EF553B"
)

const (
	chartWidth  = 600
	chartHeight = 400
	markerSize  = 10
)

const (
	CategoryCurrent  = "Current age"
	CategoryObserved = "Observed age"
	SeriesPosition   = "Object position"
)

const (
	DirectionPlaceholder = "Upload an image to see it here."
	DirectionMissing     = "Could not extract a direction from the image metadata."
)

// Observer is the reference location the page describes positions from.
// It only appears in text.
type Observer struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// View is everything one render produces.
type View struct {
	Input         models.ObservationInput  `json:"input"`
	Result        models.ObservationResult `json:"result"`
	Direction     metadata.Result          `json:"direction"`
	DirectionText string                   `json:"direction_text"`
	Observer      Observer                 `json:"observer"`
	Summary       []string                 `json:"summary"`
	AgeChart      chart.Bar                `json:"age_chart"`
	SkyChart      chart.Polar              `json:"sky_chart"`
	Explanation   string                   `json:"-"` // HTML
}

// Render builds the complete view for one set of inputs. The input is
// clamped first; dir is shown as text and never feeds the calculation.
func Render(in models.ObservationInput, dir metadata.Result, obs Observer) View {
	in = in.Clamp()
	res := Compute(in)
	return View{
		Input:         in,
		Result:        res,
		Direction:     dir,
		DirectionText: DirectionText(dir),
		Observer:      obs,
		Summary:       Summary(in, res),
		AgeChart:      AgeChart(in, res),
		SkyChart:      SkyChart(in),
		Explanation:   Explanation(obs),
	}
}

// AgeChart compares current and observed age.
func AgeChart(in models.ObservationInput, res models.ObservationResult) chart.Bar {
	return chart.Bar{
		Title:  "Current age vs. observed age",
		XLabel: "Situation",
		YLabel: "Age (years)",
		Width:  chartWidth,
		Height: chartHeight,
		Bars: []chart.BarDatum{
			{Category: CategoryCurrent, Value: float64(in.CurrentAgeYears), Color: ColorCurrent},
			{Category: CategoryObserved, Value: res.ObservedAgeYears, Color: ColorObserved},
		},
	}
}

// SkyChart places the object on a compass-oriented sky dome.
func SkyChart(in models.ObservationInput) chart.Polar {
	return chart.Polar{
		Width:         chartWidth,
		Height:        chartHeight,
		RadialRange:   [2]float64{0, 90},
		RadialVisible: true,
		Direction:     chart.Clockwise,
		ShowLegend:    true,
		Points: []chart.PolarPoint{{
			Name:  SeriesPosition,
			R:     SkyRadius(in.AltitudeDegrees),
			Theta: in.AzimuthDegrees,
			Text:  fmt.Sprintf("Azimuth: %.2f°, Altitude: %.2f°", in.AzimuthDegrees, in.AltitudeDegrees),
			Color: ColorObserved,
			Size:  markerSize,
		}},
	}
}

func Summary(in models.ObservationInput, res models.ObservationResult) []string {
	dist := FormatYears(in.DistanceLightYears)
	return []string{
		fmt.Sprintf("Current age: %d years", in.CurrentAgeYears),
		fmt.Sprintf("Object position: azimuth %.2f°, altitude %.2f°, distance %s light-years",
			in.AzimuthDegrees, in.AltitudeDegrees, dist),
		fmt.Sprintf("Your age as seen from an object %s light-years away: %s years",
			dist, FormatYears(res.ObservedAgeYears)),
	}
}

func DirectionText(dir metadata.Result) string {
	switch dir.Status {
	case metadata.StatusFound:
		return fmt.Sprintf("Direction extracted from the image: %.2f° (reference only, the values you enter take precedence).", dir.Degrees)
	case metadata.StatusUnavailable:
		return DirectionMissing
	default:
		return DirectionPlaceholder
	}
}

// Explanation is the static block under the charts, as HTML.
func Explanation(obs Observer) string {
	where := html.EscapeString(fmt.Sprintf("%s (%s, %s)", obs.Name,
		formatCoord(obs.Latitude, "N", "S"), formatCoord(obs.Longitude, "E", "W")))
	return "<p>Positions are given for an object seen from " + where + " at the azimuth and altitude you enter.</p>\n" +
		"<p>Light travels at a finite speed, so an observer that many light-years away sees you as you were that many years ago. " +
		"From an object 10 light-years away you would be seen as you looked 10 years ago, that is, your current age minus 10.</p>\n" +
		"<p>An uploaded image is shown for reference only. If its metadata records a direction, that value is shown too, " +
		"but the azimuth and altitude you enter always take precedence.</p>"
}

// FormatYears prints a year count the way the summaries show it: rounded
// to two decimals like the chart labels, with at least one decimal place.
func FormatYears(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	v = math.Round(v*100) / 100
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) {
		s += ".0"
	}
	return s
}

func formatCoord(v float64, pos, neg string) string {
	hemi := pos
	if v < 0 {
		hemi, v = neg, -v
	}
	return fmt.Sprintf("%.2f°%s", v, hemi)
}
