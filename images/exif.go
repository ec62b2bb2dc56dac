package images

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

var ErrNoExif = errors.New("no EXIF data")

type EXIFData struct {
	Time        *time.Time
	CameraMake  string
	CameraModel string
	Orientation int
}

// Camera joins make and model, dropping the make when the model repeats it.
func (d *EXIFData) Camera() string {
	switch {
	case d.CameraModel == "":
		return d.CameraMake
	case d.CameraMake == "" || strings.HasPrefix(d.CameraModel, d.CameraMake):
		return d.CameraModel
	}

	return d.CameraMake + " " + d.CameraModel
}

func ReadEXIFFromFile(path string) (*EXIFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadEXIF(f)
}

// ReadEXIF decodes the EXIF block of a JPEG (or raw TIFF) stream. Streams
// without EXIF, such as PNG and GIF files, yield ErrNoExif.
func ReadEXIF(r io.Reader) (*EXIFData, error) {
	x, err := exif.Decode(r)
	if err != nil {
		if exif.IsCriticalError(err) {
			return nil, ErrNoExif
		}
		// Non-critical errors leave a usable, partially decoded block.
	}

	data := &EXIFData{
		CameraMake:  tagString(x, exif.Make),
		CameraModel: tagString(x, exif.Model),
		Orientation: 1,
	}

	// DateTime prefers DateTimeOriginal over DateTime.
	if t, err := x.DateTime(); err == nil && !t.IsZero() {
		data.Time = &t
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil && v >= 1 && v <= 8 {
			data.Orientation = v
		}
	}

	if data.Time == nil && data.CameraMake == "" && data.CameraModel == "" {
		return nil, ErrNoExif
	}

	return data, nil
}

func tagString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}

	s, err := tag.StringVal()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
