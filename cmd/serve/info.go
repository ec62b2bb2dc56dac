package serve

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bgraf/diashow/images"
	"github.com/bgraf/diashow/logging"
	"github.com/bgraf/diashow/metrics"
	"github.com/bgraf/diashow/render"
	"github.com/bgraf/diashow/slideshow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type imageInfo struct {
	Path         string     `json:"path"`
	Size         int64      `json:"size"`
	Modified     time.Time  `json:"modified"`
	Width        int        `json:"width,omitempty"`
	Height       int        `json:"height,omitempty"`
	Color        string     `json:"color,omitempty"`
	Taken        *time.Time `json:"taken,omitempty"`
	TakenDisplay string     `json:"taken_display,omitempty"`
	Camera       string     `json:"camera,omitempty"`
	Orientation  int        `json:"orientation,omitempty"`
}

// lookupParam resolves the wildcard path of an /img or /info route.
func (api *serveAPI) lookupParam(c *gin.Context) (slideshow.Image, error) {
	rel := strings.TrimPrefix(c.Param("path"), "/")
	if rel == "" {
		return slideshow.Image{}, slideshow.ErrNotFound
	}

	return api.engine.Lookup(rel)
}

func (api *serveAPI) ServeImage(c *gin.Context) {
	img, err := api.lookupParam(c)
	if err != nil {
		api.failFile(c, err)
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.File(img.Absolute)
}

func (api *serveAPI) ServeInfo(c *gin.Context) {
	img, err := api.lookupParam(c)
	if err != nil {
		api.failFile(c, err)
		return
	}

	f, err := os.Open(img.Absolute)
	if err != nil {
		api.failFile(c, slideshow.ErrNotFound)
		return
	}
	defer f.Close()

	info := imageInfo{
		Path:     img.Path,
		Size:     img.Size,
		Modified: img.ModTime,
	}

	log := logging.FromGin(c).With(zap.String("img", img.Path))

	data, err := images.ReadEXIF(f)
	switch {
	case err == nil:
		info.Taken = data.Time
		info.Camera = data.Camera()
		info.Orientation = data.Orientation
		if data.Time != nil {
			info.TakenDisplay = render.DisplayDate(*data.Time, api.locale)
		}
	case !errors.Is(err, images.ErrNoExif):
		log.Debug("reading EXIF failed", zap.Error(err))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		log.Warn("rewinding image failed", zap.Error(err))
		c.JSON(http.StatusOK, info)
		return
	}

	start := time.Now()
	analysis, err := images.Analyze(f)
	metrics.ObserveAnalysis(time.Since(start))

	if err != nil {
		log.Warn("decoding image failed", zap.Error(err))
	} else {
		info.Width = analysis.Width
		info.Height = analysis.Height
		info.Color = analysis.AverageColor.Hex()
	}

	c.JSON(http.StatusOK, info)
}

func (api *serveAPI) failFile(c *gin.Context, err error) {
	status := slideshow.StatusCode(err)

	logging.FromGin(c).Debug("file lookup failed", zap.String("path", c.Param("path")), zap.Error(err))

	c.String(status, strings.ToLower(http.StatusText(status)))
}
