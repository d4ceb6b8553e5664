package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/lox/lightage/internal/api"
	"github.com/lox/lightage/internal/htmlutil"
	"github.com/lox/lightage/internal/imagegen"
	"github.com/lox/lightage/internal/metadata"
	"github.com/lox/lightage/internal/models"
	"github.com/lox/lightage/internal/observe"
)

type ObserveCmd struct {
	Age      int     `help:"Current age in years." default:"${default_age}"`
	Distance float64 `help:"Distance to the object in light-years." default:"${default_distance}"`
	Azimuth  float64 `help:"Azimuth in degrees, 0 to 360." default:"${default_azimuth}"`
	Altitude float64 `help:"Altitude in degrees, -90 to 90." default:"${default_altitude}"`

	Image  string `help:"Image to read the GPS direction tag from." type:"existingfile"`
	AgePNG string `name:"age-png" help:"Write the age chart to this PNG file." type:"path"`
	SkyPNG string `name:"sky-png" help:"Write the sky chart to this PNG file." type:"path"`
	JSON   bool   `help:"Print the result as JSON."`
}

func (c *ObserveCmd) Validate() error {
	for _, v := range []float64{c.Distance, c.Azimuth, c.Altitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("distance, azimuth and altitude must be finite numbers")
		}
	}
	return nil
}

func (c *ObserveCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, err := g.setup(context.Background())
	if err != nil {
		return err
	}

	dir := metadata.Result{Status: metadata.StatusNoImage}
	if c.Image != "" {
		data, err := os.ReadFile(c.Image)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		if len(data) > 0 {
			dir = metadata.Read(data)
		}
		logger.Debug("read image", "path", c.Image, "bytes", len(data), "direction", dir.Status)
	}

	in := models.ObservationInput{
		CurrentAgeYears:    c.Age,
		DistanceLightYears: c.Distance,
		AzimuthDegrees:     c.Azimuth,
		AltitudeDegrees:    c.Altitude,
	}
	v := observe.Render(in, dir, observe.Observer{
		Name:      cfg.ObserverName,
		Latitude:  cfg.ObserverLat,
		Longitude: cfg.ObserverLon,
	})

	if c.AgePNG != "" {
		if err := writePNG(c.AgePNG, func() ([]byte, error) { return imagegen.RenderBar(v.AgeChart) }); err != nil {
			return err
		}
	}
	if c.SkyPNG != "" {
		if err := writePNG(c.SkyPNG, func() ([]byte, error) { return imagegen.RenderPolar(v.SkyChart) }); err != nil {
			return err
		}
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(api.APIResponse{
			RenderID:    uuid.NewString(),
			View:        v,
			Explanation: htmlutil.ToText(v.Explanation),
		})
	}
	printView(out, v)
	return nil
}

func writePNG(path string, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func printView(out io.Writer, v observe.View) {
	r := lipgloss.NewRenderer(out)
	heading := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4fc3f7"))
	muted := r.NewStyle().Foreground(lipgloss.Color("245"))
	accent := r.NewStyle().Foreground(lipgloss.Color(observe.ColorObserved))

	fmt.Fprintln(out, heading.Render("Result"))
	for _, line := range v.Summary {
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out, "  "+accent.Render(fmt.Sprintf("Sky radius: %.2f°", observe.SkyRadius(v.Input.AltitudeDegrees))))

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading.Render("Image"))
	fmt.Fprintln(out, "  "+v.DirectionText)

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading.Render("About"))
	for _, line := range htmlutil.Lines(v.Explanation) {
		fmt.Fprintln(out, "  "+muted.Render(line))
	}
}
