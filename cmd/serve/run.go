package serve

import (
	"fmt"
	"html/template"
	"net/http"
	"path"

	"github.com/bgraf/diashow/config"
	"github.com/bgraf/diashow/filesystem"
	"github.com/bgraf/diashow/logging"
	"github.com/bgraf/diashow/metrics"
	"github.com/bgraf/diashow/render"
	"github.com/bgraf/diashow/slideshow"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Collection is an engine served below a URL base.
type Collection struct {
	Name   string
	Engine *slideshow.Engine
}

type Options struct {
	Base        string
	Collections []Collection
	Templates   *template.Template
	Locale      string
	EXIF        bool
	Metrics     bool
}

func RunServeCmd(cmd *cobra.Command, args []string) error {
	if !config.HasRootDirectory() {
		return fmt.Errorf("no root directory configured")
	}

	var collections []Collection
	for _, c := range config.Collections() {
		if !filesystem.IsDirectory(c.Root) {
			return fmt.Errorf("collection root '%s' is not a directory", c.Root)
		}

		engine := slideshow.New(
			filesystem.Abs(c.Root),
			slideshow.WithBudget(config.WalkBudget()),
		)
		collections = append(collections, Collection{Name: c.Name, Engine: engine})

		logging.Info("serving collection",
			zap.String("collection", collectionLabel(c.Name)),
			zap.String("root", engine.Root()),
		)
	}

	templates, err := render.ReadTemplates(config.ServeResources(), config.DisplayLocale())
	if err != nil {
		return err
	}

	r := NewRouter(Options{
		Base:        config.ServeBase(),
		Collections: collections,
		Templates:   templates,
		Locale:      config.DisplayLocale(),
		EXIF:        config.DisplayEXIF(),
		Metrics:     config.MetricsEnabled(),
	})

	address := config.ServeAddress()
	logging.Info("listening", zap.String("address", address), zap.String("base", config.ServeBase()))

	return r.Run(address)
}

// NewRouter mounts every collection below opts.Base; the main collection at
// the base itself and the others at base/name.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Gin())

	if opts.Metrics {
		r.Use(metrics.Gin())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	r.UseRawPath = true
	r.SetHTMLTemplate(opts.Templates)

	for _, c := range opts.Collections {
		base := opts.Base
		if c.Name != "" {
			base = path.Join(opts.Base+"/", c.Name)
		}

		api := newServeAPI(c, base, opts)

		index := base
		if index == "" {
			index = "/"
		}

		r.GET(index, api.ServeIndex)
		r.GET(base+"/random", api.ServeRandom)
		r.GET(base+"/next", api.ServeNext)
		r.GET(base+"/prev", api.ServePrev)
		r.GET(base+"/img/*path", api.ServeImage)
		r.GET(base+"/info/*path", api.ServeInfo)
	}

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return r
}

func collectionLabel(name string) string {
	if name == "" {
		return "main"
	}
	return name
}
