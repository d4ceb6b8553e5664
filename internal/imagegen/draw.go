package imagegen

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{42, 63, 95, 255}
	colorGrid       = color.RGBA{223, 227, 235, 255}
	colorAxis       = color.RGBA{120, 130, 150, 255}
)

// labelFace is the only face we draw with; it covers ASCII and Latin-1,
// which includes the degree sign.
var labelFace font.Face = basicfont.Face7x13

// parseHex reads "#rrggbb" or "#rgb". Anything else comes back as the text colour.
func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return colorText
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return colorText
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	r := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// drawLine plots a one pixel line by stepping along its longer axis.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	steps := math.Max(math.Abs(x1-x0), math.Abs(y1-y0))
	if steps < 1 {
		img.SetRGBA(int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		img.SetRGBA(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), c)
	}
}

func drawCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	n := math.Max(16, 2*math.Pi*r)
	for i := 0.0; i < n; i++ {
		a := 2 * math.Pi * i / n
		img.SetRGBA(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), c)
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	for y := math.Floor(cy - r); y <= math.Ceil(cy+r); y++ {
		for x := math.Floor(cx - r); x <= math.Ceil(cx+r); x++ {
			if math.Hypot(x-cx, y-cy) <= r {
				img.SetRGBA(int(x), int(y), c)
			}
		}
	}
}

// drawText draws s with its baseline at y. anchor is "start", "middle" or "end".
func drawText(img *image.RGBA, s string, x, y float64, anchor string, c color.Color) {
	width := font.MeasureString(labelFace, s).Ceil()
	switch anchor {
	case "middle":
		x -= float64(width) / 2
	case "end":
		x -= float64(width)
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: labelFace,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(x))), Y: fixed.I(int(math.Round(y)))},
	}
	d.DrawString(s)
}
