package serve

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bgraf/diashow/images"
	"github.com/bgraf/diashow/logging"
	"github.com/bgraf/diashow/metrics"
	"github.com/bgraf/diashow/render"
	"github.com/bgraf/diashow/slideshow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cacheControl = "must-revalidate, max-age=86400"

type serveAPI struct {
	collection string
	base       string
	engine     *slideshow.Engine
	locale     string
	exif       bool
}

func newServeAPI(c Collection, base string, opts Options) *serveAPI {
	return &serveAPI{
		collection: collectionLabel(c.Name),
		base:       base,
		engine:     c.Engine,
		locale:     opts.Locale,
		exif:       opts.EXIF,
	}
}

// navigationQuery is the per-request navigation context: the shown image,
// the subtree filter and the slideshow timer.
type navigationQuery struct {
	Img    string `form:"img"`
	Prefix string `form:"prefix"`
	Timer  string `form:"timer"`
}

// timerSeconds returns the timer duration; unparsable or non-positive
// values disable the timer.
func (q navigationQuery) timerSeconds() int {
	seconds, err := strconv.Atoi(q.Timer)
	if err != nil || seconds <= 0 {
		return 0
	}
	return seconds
}

func (api *serveAPI) bindQuery(c *gin.Context) (navigationQuery, bool) {
	var q navigationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return q, false
	}

	return q, true
}

func (api *serveAPI) ServeRandom(c *gin.Context) {
	q, ok := api.bindQuery(c)
	if !ok {
		return
	}

	prefix, prefixErr := slideshow.Validate(q.Prefix)

	if q.Img != "" {
		img, err := api.engine.Lookup(q.Img)
		if err == nil {
			// A requested image is shown as is; the client already holds its
			// URL. Validate yields "" for an unusable prefix.
			api.renderImage(c, img, prefix, q.timerSeconds(), false)
			return
		}

		logging.FromGin(c).Debug("requested image unavailable, picking random",
			zap.String("img", q.Img), zap.Error(err))
	}

	if prefixErr != nil {
		api.fail(c, "random", prefixErr)
		return
	}

	rel, err := api.engine.Random(prefix)
	if err != nil {
		api.fail(c, "random", err)
		return
	}

	img, err := api.engine.Lookup(rel)
	if err != nil {
		api.fail(c, "random", err)
		return
	}

	metrics.RecordSelection(api.collection, "random", metrics.OutcomeOK)
	api.renderImage(c, img, prefix, q.timerSeconds(), true)
}

func (api *serveAPI) ServeNext(c *gin.Context) {
	api.serveNavigate(c, slideshow.Next)
}

func (api *serveAPI) ServePrev(c *gin.Context) {
	api.serveNavigate(c, slideshow.Prev)
}

func (api *serveAPI) serveNavigate(c *gin.Context, dir slideshow.Direction) {
	q, ok := api.bindQuery(c)
	if !ok {
		return
	}

	operation := dir.String()

	if q.Img == "" {
		metrics.RecordSelection(api.collection, operation, metrics.OutcomeBadRequest)
		c.String(http.StatusBadRequest, "Bad Request: img parameter required")
		return
	}

	// The prefix only scopes later random picks; an unusable one is dropped.
	prefix, _ := slideshow.Validate(q.Prefix)

	rel, err := api.engine.Navigate(dir, q.Img)
	if err != nil {
		api.fail(c, operation, err)
		return
	}

	img, err := api.engine.Lookup(rel)
	if err != nil {
		api.fail(c, operation, err)
		return
	}

	metrics.RecordSelection(api.collection, operation, metrics.OutcomeOK)
	api.renderImage(c, img, prefix, q.timerSeconds(), true)
}

func (api *serveAPI) renderImage(c *gin.Context, img slideshow.Image, prefix string, timer int, push bool) {
	payload := render.MakeImagePayload(api.base, img.Path, prefix, timer)

	if api.exif {
		data, err := images.ReadEXIFFromFile(img.Absolute)
		switch {
		case err == nil:
			payload.Taken = data.Time
			payload.Camera = data.Camera()
		case !errors.Is(err, images.ErrNoExif):
			logging.FromGin(c).Debug("reading EXIF failed", zap.String("img", img.Path), zap.Error(err))
		}
	}

	if push {
		c.Header("HX-Push-Url", render.PageURL(api.base, img.Path, prefix, timer))
	}

	c.HTML(http.StatusOK, "image.html", payload)
}

func (api *serveAPI) fail(c *gin.Context, operation string, err error) {
	status := slideshow.StatusCode(err)

	outcome := metrics.OutcomeError
	switch status {
	case http.StatusNotFound:
		outcome = metrics.OutcomeNotFound
	case http.StatusBadRequest:
		outcome = metrics.OutcomeBadRequest
	}
	metrics.RecordSelection(api.collection, operation, outcome)

	logging.FromGin(c).Debug("selection failed",
		zap.String("collection", api.collection),
		zap.String("operation", operation),
		zap.Error(err),
	)

	c.String(status, strings.ToLower(http.StatusText(status)))
}
