package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Analysis holds properties derived from the decoded pixels of an image.
type Analysis struct {
	Width        int
	Height       int
	AverageColor colorful.Color
}

// Analyze decodes an image, applying its EXIF orientation, and reports its
// displayed dimensions and average colour.
func Analyze(r io.Reader) (*Analysis, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	bounds := img.Bounds()

	return &Analysis{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		AverageColor: AverageColor(img),
	}, nil
}

// AverageColor box-filters img down to a single pixel.
func AverageColor(img image.Image) colorful.Color {
	if img.Bounds().Empty() {
		return colorful.Color{}
	}

	pixel := imaging.Resize(img, 1, 1, imaging.Box)
	c, ok := colorful.MakeColor(pixel.At(0, 0))
	if !ok {
		return colorful.Color{}
	}

	return c.Clamped()
}
