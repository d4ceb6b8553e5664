// Package observe computes how old someone looks to an observer light-years
// away and builds the page's summaries and chart specs from that.
package observe

import (
	"math"

	"github.com/lox/lightage/internal/models"
)

// ComputeObservedAge returns currentAge minus the light travel time in years,
// floored at zero. One light-year of distance is one year of delay.
// Negative or NaN arguments are treated as zero.
func ComputeObservedAge(currentAge int, distanceLightYears float64) float64 {
	age := float64(max(currentAge, 0))
	if math.IsNaN(distanceLightYears) || distanceLightYears < 0 {
		distanceLightYears = 0
	}
	return math.Max(0, age-distanceLightYears)
}

// Compute runs the calculator over a full input.
func Compute(in models.ObservationInput) models.ObservationResult {
	return models.ObservationResult{
		ObservedAgeYears: ComputeObservedAge(in.CurrentAgeYears, in.DistanceLightYears),
	}
}

// SkyRadius maps altitude to angular distance from the zenith: 90° altitude
// is the centre of the sky chart and the horizon is its rim.
func SkyRadius(altitudeDegrees float64) float64 {
	return 90 - math.Abs(altitudeDegrees)
}
