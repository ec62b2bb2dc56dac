package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}

	return &buf
}

func TestAnalyze(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 20 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	a, err := Analyze(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.Width != 40 || a.Height != 20 {
		t.Fatalf("dimensions = %dx%d, want 40x20", a.Width, a.Height)
	}

	r, g, b := a.AverageColor.RGB255()
	if r < 120 || r > 135 || g > 5 || b < 120 || b > 135 {
		t.Fatalf("average color = %s, want a purple close to #800080", a.AverageColor.Hex())
	}
}

func TestAnalyze_Garbage(t *testing.T) {
	if _, err := Analyze(bytes.NewBufferString("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestAverageColor_Uniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0x33, 0x66, 0x99, 0xff
	}

	if got := AverageColor(img).Hex(); got != "#336699" {
		t.Fatalf("AverageColor = %s, want #336699", got)
	}
}

func TestReadEXIF_PNGHasNone(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if _, err := ReadEXIF(encodePNG(t, img)); err != ErrNoExif {
		t.Fatalf("ReadEXIF(png) error = %v, want ErrNoExif", err)
	}
}

func TestEXIFData_Camera(t *testing.T) {
	tests := []struct {
		make, model, want string
	}{
		{"Canon", "Canon EOS 5D", "Canon EOS 5D"},
		{"FUJIFILM", "X-T3", "FUJIFILM X-T3"},
		{"", "Pixel 7", "Pixel 7"},
		{"Sony", "", "Sony"},
	}

	for _, tt := range tests {
		d := &EXIFData{CameraMake: tt.make, CameraModel: tt.model}
		if got := d.Camera(); got != tt.want {
			t.Errorf("Camera(%q, %q) = %q, want %q", tt.make, tt.model, got, tt.want)
		}
	}
}
