package api

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lox/lightage/internal/metrics"
	"github.com/lox/lightage/internal/models"
)

// Form field names, shared by the page, the JSON API and the PNG endpoints.
const (
	fieldAge      = "age"
	fieldDistance = "distance"
	fieldAzimuth  = "azimuth"
	fieldAltitude = "altitude"
	fieldImage    = "image"
)

const (
	// Hard cap on a request body. An oversized image is streamed past
	// rather than rejected up front, so this only stops runaway bodies.
	maxBodyBytes = 256 << 20
	// Room for the numeric fields and multipart framing next to the image.
	bodyOverhead  = 1 << 20
	maxFormParts  = 32
	maxValueBytes = 1 << 10
)

var (
	errUploadTooLarge = errors.New("uploaded image too large")
	errTooManyParts   = errors.New("too many form parts")
	errValueTooLong   = errors.New("form value too long")
)

// ParseInput reads the numeric fields from values. Missing or unparseable
// fields take their defaults; everything is then clamped to its domain.
func ParseInput(values url.Values) models.ObservationInput {
	in := models.DefaultInput()
	if v, ok := parseFloat(values.Get(fieldAge)); ok {
		in.CurrentAgeYears = int(math.Round(math.Max(math.Min(v, models.MaxAge), models.MinAge)))
	}
	if v, ok := parseFloat(values.Get(fieldDistance)); ok {
		in.DistanceLightYears = v
	}
	if v, ok := parseFloat(values.Get(fieldAzimuth)); ok {
		in.AzimuthDegrees = v
	}
	if v, ok := parseFloat(values.Get(fieldAltitude)); ok {
		in.AltitudeDegrees = v
	}
	return in.Clamp()
}

// EncodeInput is the inverse of ParseInput.
func EncodeInput(in models.ObservationInput) url.Values {
	return url.Values{
		fieldAge:      {strconv.Itoa(in.CurrentAgeYears)},
		fieldDistance: {strconv.FormatFloat(in.DistanceLightYears, 'f', -1, 64)},
		fieldAzimuth:  {strconv.FormatFloat(in.AzimuthDegrees, 'f', -1, 64)},
		fieldAltitude: {strconv.FormatFloat(in.AltitudeDegrees, 'f', -1, 64)},
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// upload is an image read from a multipart request.
type upload struct {
	Name string
	Data []byte
}

// readForm parses the request so r.Form holds the numeric fields, and returns
// the uploaded image if there is one. GET requests only carry a query string.
// Multipart bodies are streamed part by part: value parts land in r.Form
// whatever order they arrive in, and an image over the limit is skipped.
// errUploadTooLarge is returned with r.Form populated in that case.
func (s *Server) readForm(w http.ResponseWriter, r *http.Request) (*upload, error) {
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, max(maxBodyBytes, s.cfg.MaxUploadBytes+bodyOverhead))
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	if r.Method != http.MethodPost {
		return nil, nil
	}

	mr, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read multipart: %w", err)
	}

	var (
		up       *upload
		tooLarge bool
	)
	for n := 0; ; n++ {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.multipartErr(err)
		}
		if n >= maxFormParts {
			part.Close()
			return nil, errTooManyParts
		}

		name := part.FormName()
		switch {
		case name == "":
		case part.FileName() == "":
			v, err := io.ReadAll(io.LimitReader(part, maxValueBytes+1))
			if err != nil {
				part.Close()
				return nil, s.multipartErr(err)
			}
			if len(v) > maxValueBytes {
				part.Close()
				return nil, fmt.Errorf("%w: %s", errValueTooLong, name)
			}
			r.Form.Add(name, string(v))
		case name == fieldImage && up == nil && !tooLarge:
			data, over, err := readUpload(part, s.cfg.MaxUploadBytes)
			if err != nil {
				part.Close()
				return nil, s.multipartErr(err)
			}
			switch {
			case over:
				metrics.UploadsRejected.WithLabelValues("file_too_large").Inc()
				tooLarge = true
			case len(data) > 0:
				// An empty file input still submits a part on some browsers.
				metrics.UploadBytes.Observe(float64(len(data)))
				up = &upload{Name: part.FileName(), Data: data}
			}
		}
		part.Close()
	}

	if tooLarge {
		return nil, errUploadTooLarge
	}
	return up, nil
}

// readUpload reads at most limit bytes of an image part. A larger part is
// drained and reported as over.
func readUpload(part io.Reader, limit int64) (data []byte, over bool, err error) {
	data, err = io.ReadAll(io.LimitReader(part, limit+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(data)) <= limit {
		return data, false, nil
	}
	if _, err := io.Copy(io.Discard, part); err != nil {
		return nil, true, err
	}
	return nil, true, nil
}

// multipartErr maps a body read failure. Hitting the body cap keeps the
// values read so far and is reported as an oversized upload.
func (s *Server) multipartErr(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		metrics.UploadsRejected.WithLabelValues("body_too_large").Inc()
		return errUploadTooLarge
	}
	return fmt.Errorf("read multipart: %w", err)
}
