// Package metadata reads the capture direction stored in an image's EXIF GPS block.
package metadata

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

// Status describes how an extraction ended.
type Status string

const (
	StatusNoImage     Status = "no_image"
	StatusFound       Status = "found"
	StatusUnavailable Status = "unavailable"
)

// Result is the outcome of reading an image's direction tag. Degrees is only
// meaningful when Status is StatusFound.
type Result struct {
	Status  Status  `json:"status"`
	Degrees float64 `json:"degrees"`
}

// Found reports whether a direction was read.
func (r Result) Found() bool {
	return r.Status == StatusFound
}

// Read extracts the GPS image direction from data and reports the outcome.
// An empty buffer means no image was supplied.
func Read(data []byte) Result {
	if len(data) == 0 {
		return Result{Status: StatusNoImage}
	}
	deg, ok := ExtractDirection(data)
	if !ok {
		return Result{Status: StatusUnavailable}
	}
	return Result{Status: StatusFound, Degrees: deg}
}

// ExtractDirection returns the GPSImgDirection value in degrees. It never
// fails: missing metadata, unsupported containers and corrupt bytes all
// report ok=false.
func ExtractDirection(data []byte) (deg float64, ok bool) {
	defer func() {
		if recover() != nil {
			deg, ok = 0, false
		}
	}()

	if len(data) == 0 {
		return 0, false
	}

	payload := data
	if isPNG(data) {
		chunk, found := pngExifChunk(data)
		if !found {
			return 0, false
		}
		payload = chunk
	}

	// Decode can hand back a partially parsed structure alongside an error
	// from a broken sub-IFD; the GPS block may still be intact.
	x, _ := exif.Decode(bytes.NewReader(payload))
	if x == nil {
		return 0, false
	}
	tag, err := x.Get(exif.GPSImgDirection)
	if err != nil {
		return 0, false
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}
