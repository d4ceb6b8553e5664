package imagegen

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Refuse to decode anything larger than this many pixels.
const maxPreviewPixels = 50_000_000

var ErrTooLarge = errors.New("image dimensions too large")

// Preview is a display-ready copy of an uploaded image.
type Preview struct {
	Format        string // source format as reported by image.Decode
	Width, Height int    // source dimensions
	DataURI       string
}

// NewPreview decodes data and returns a copy no wider than maxWidth, encoded
// as a data URI. PNG and GIF sources stay PNG so transparency survives;
// everything else becomes JPEG.
func NewPreview(data []byte, maxWidth int) (Preview, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Preview{}, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width*cfg.Height > maxPreviewPixels {
		return Preview{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Preview{}, fmt.Errorf("decode image: %w", err)
	}

	p := Preview{Format: format, Width: cfg.Width, Height: cfg.Height}
	out := scaleToWidth(src, maxWidth)

	var (
		encoded []byte
		mime    string
	)
	if format == "png" || format == "gif" {
		mime = "image/png"
		encoded, err = encodePNG(out, "preview")
	} else {
		mime = "image/jpeg"
		encoded, err = encodeJPEG(out)
	}
	if err != nil {
		return Preview{}, err
	}

	p.DataURI = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(encoded)
	return p, nil
}

func scaleToWidth(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}
	h := max(1, b.Dy()*maxWidth/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
