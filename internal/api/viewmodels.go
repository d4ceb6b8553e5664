package api

import (
	"html/template"

	"github.com/lox/lightage/internal/chart"
	"github.com/lox/lightage/internal/imagegen"
	"github.com/lox/lightage/internal/models"
	"github.com/lox/lightage/internal/observe"
)

// observation is one parsed request and its render.
type observation struct {
	ID        string
	View      observe.View
	Upload    *upload
	UploadErr error // set when an image was sent but could not be used
}

// IndexData is everything the page template needs.
type IndexData struct {
	RenderID     string
	View         observe.View
	Form         FormData
	ImageName    string
	Preview      *imagegen.Preview
	PreviewURI   template.URL
	PreviewError string
	Notice       string
	Explanation  template.HTML
	AgeLayout    chart.BarLayout
	SkyLayout    chart.PolarLayout
	ChartQuery   template.URL
}

// FormData carries the input field values and their domains.
type FormData struct {
	Age         int
	Distance    float64
	Azimuth     float64
	Altitude    float64
	MinAge      int
	MaxAge      int
	MinAzimuth  float64
	MaxAzimuth  float64
	MinAltitude float64
	MaxAltitude float64
}

func newFormData(in models.ObservationInput) FormData {
	return FormData{
		Age:         in.CurrentAgeYears,
		Distance:    in.DistanceLightYears,
		Azimuth:     in.AzimuthDegrees,
		Altitude:    in.AltitudeDegrees,
		MinAge:      models.MinAge,
		MaxAge:      models.MaxAge,
		MinAzimuth:  models.MinAzimuth,
		MaxAzimuth:  models.MaxAzimuth,
		MinAltitude: models.MinAltitude,
		MaxAltitude: models.MaxAltitude,
	}
}

// APIResponse is the JSON body of /api/observe.
type APIResponse struct {
	RenderID string `json:"render_id"`
	observe.View
	Explanation string `json:"explanation"`
}
