package models

import "math"

// Input domains for an observation. Distance has no upper bound.
const (
	MinAge      = 0
	MaxAge      = 120
	MinAzimuth  = 0.0
	MaxAzimuth  = 360.0
	MinAltitude = -90.0
	MaxAltitude = 90.0
)

// Form defaults used when a value is missing.
const (
	DefaultAge      = 30
	DefaultDistance = 10.0
	DefaultAzimuth  = 26.13
	DefaultAltitude = 42.12
)

type ObservationInput struct {
	CurrentAgeYears    int     `json:"current_age_years"`
	DistanceLightYears float64 `json:"distance_light_years"`
	AzimuthDegrees     float64 `json:"azimuth_degrees"`
	AltitudeDegrees    float64 `json:"altitude_degrees"`
}

type ObservationResult struct {
	ObservedAgeYears float64 `json:"observed_age_years"`
}

// DefaultInput returns the values the page starts with.
func DefaultInput() ObservationInput {
	return ObservationInput{
		CurrentAgeYears:    DefaultAge,
		DistanceLightYears: DefaultDistance,
		AzimuthDegrees:     DefaultAzimuth,
		AltitudeDegrees:    DefaultAltitude,
	}
}

// Clamp returns a copy with every field forced into its domain.
// NaN falls back to the field default.
func (in ObservationInput) Clamp() ObservationInput {
	out := in
	out.CurrentAgeYears = min(max(in.CurrentAgeYears, MinAge), MaxAge)
	out.DistanceLightYears = clampFloat(in.DistanceLightYears, 0, math.Inf(1), DefaultDistance)
	out.AzimuthDegrees = clampFloat(in.AzimuthDegrees, MinAzimuth, MaxAzimuth, DefaultAzimuth)
	out.AltitudeDegrees = clampFloat(in.AltitudeDegrees, MinAltitude, MaxAltitude, DefaultAltitude)
	return out
}

func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Min(math.Max(v, lo), hi)
}
