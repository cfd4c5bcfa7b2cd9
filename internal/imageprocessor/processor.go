package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"campusconnect_backend/pkg/apperrors"
)

// Result is a normalized image: JPEG, width capped at the processor's
// maximum, aspect ratio preserved.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Processor normalizes uploaded images. Oversized payloads are rejected
// before decoding.
type Processor struct {
	maxBytes int64
	maxWidth int
	quality  int
}

func New(maxBytes int64, maxWidth, quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 70
	}
	if maxWidth <= 0 {
		maxWidth = 800
	}
	return &Processor{
		maxBytes: maxBytes,
		maxWidth: maxWidth,
		quality:  quality,
	}
}

// Process validates and normalizes data asynchronously, delivering the
// outcome to exactly one deliver call. The caller applies any store
// mutation inside deliver, so nothing observes a half-applied upload.
func (p *Processor) Process(data []byte, deliver func(Result, error)) {
	go func() {
		deliver(p.process(data))
	}()
}

func (p *Processor) process(data []byte) (Result, error) {
	if int64(len(data)) > p.maxBytes {
		return Result{}, apperrors.PayloadTooLarge(int64(len(data)), p.maxBytes)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"Unsupported or corrupt image", 400)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > p.maxWidth {
		height = height * p.maxWidth / width
		width = p.maxWidth
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return Result{}, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return Result{Data: buf.Bytes(), Width: width, Height: height}, nil
}
