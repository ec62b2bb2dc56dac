package serve

import (
	"net/http"

	"github.com/bgraf/diashow/render"
	"github.com/gin-gonic/gin"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	q, ok := api.bindQuery(c)
	if !ok {
		return
	}

	c.HTML(
		http.StatusOK,
		"index.html",
		render.PagePayload{
			Base:   api.base,
			Img:    q.Img,
			Prefix: q.Prefix,
			Timer:  q.timerSeconds(),
		},
	)
}
