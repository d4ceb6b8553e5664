// Package imagegen rasterises chart specs to PNG and prepares uploaded
// images for display.
package imagegen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/lox/lightage/internal/chart"
)

// Upper bound on rendered chart size, in pixels per side.
const maxChartSide = 4096

var ErrChartSize = errors.New("chart dimensions out of range")

// RenderBar draws a bar chart and returns it PNG encoded.
func RenderBar(b chart.Bar) ([]byte, error) {
	if err := checkSize(b.Width, b.Height); err != nil {
		return nil, err
	}
	l := b.Layout()
	img := newCanvas(l.Width, l.Height)

	drawText(img, l.Title, float64(l.Width)/2, 24, "middle", colorText)

	for _, tick := range l.Ticks {
		drawLine(img, l.Left, tick.Pos, l.Right, tick.Pos, colorGrid)
		drawText(img, tick.Label, l.Left-6, tick.Pos+4, "end", colorText)
	}
	drawLine(img, l.Left, l.Top, l.Left, l.Bottom, colorAxis)
	drawLine(img, l.Left, l.Bottom, l.Right, l.Bottom, colorAxis)

	for _, bar := range l.Bars {
		fillRect(img, bar.X, bar.Y, bar.X+bar.W, l.Bottom, parseHex(bar.Color))
		drawText(img, bar.Label, bar.CenterX, bar.Y-6, "middle", colorText)
		drawText(img, bar.Category, bar.CenterX, l.Bottom+18, "middle", colorText)
	}

	drawText(img, l.XLabel, (l.Left+l.Right)/2, float64(l.Height)-10, "middle", colorText)
	drawText(img, l.YLabel, 4, l.Top-12, "start", colorText)

	return encodePNG(img, "bar chart")
}

// RenderPolar draws a polar scatter chart and returns it PNG encoded.
func RenderPolar(p chart.Polar) ([]byte, error) {
	if err := checkSize(p.Width, p.Height); err != nil {
		return nil, err
	}
	l := p.Layout()
	img := newCanvas(l.Width, l.Height)

	if l.Title != "" {
		drawText(img, l.Title, l.CX, 18, "middle", colorText)
	}

	for _, s := range l.Spokes {
		drawLine(img, l.CX, l.CY, s.X, s.Y, colorGrid)
		drawText(img, s.Label, s.LabelX, s.LabelY+4, "middle", colorText)
	}
	for _, ring := range l.Rings {
		drawCircle(img, l.CX, l.CY, ring.Radius, colorGrid)
		if l.RadialVisible {
			drawText(img, ring.Label, ring.LabelX, ring.LabelY+12, "start", colorAxis)
		}
	}
	drawCircle(img, l.CX, l.CY, l.Radius, colorAxis)

	for _, m := range l.Markers {
		fillCircle(img, m.X, m.Y, m.Size/2, parseHex(m.Color))
		drawText(img, m.Text, m.TextX, m.TextY, "middle", colorText)
	}
	for _, item := range l.Legend {
		fillCircle(img, item.X+5, item.Y-4, 5, parseHex(item.Color))
		drawText(img, item.Name, item.X+16, item.Y, "start", colorText)
	}

	return encodePNG(img, "polar chart")
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 || w > maxChartSide || h > maxChartSide {
		return fmt.Errorf("%w: %dx%d", ErrChartSize, w, h)
	}
	return nil
}

func encodePNG(img image.Image, what string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", what, err)
	}
	return buf.Bytes(), nil
}
