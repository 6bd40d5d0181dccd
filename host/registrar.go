package host

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostframe/weather-plugin/plugin"
)

// GinRegistrar adapts a Gin router to the plugin EndpointRegistrar contract.
// Modules stay framework-free; this adapter is the only place handler
// signatures are translated.
type GinRegistrar struct {
	router gin.IRouter
}

var _ plugin.EndpointRegistrar = (*GinRegistrar)(nil)

// NewGinRegistrar wraps router for route declaration.
func NewGinRegistrar(router gin.IRouter) *GinRegistrar {
	return &GinRegistrar{router: router}
}

// GET declares a GET route backed by handler.
func (g *GinRegistrar) GET(path string, handler plugin.HandlerFunc) {
	g.router.GET(path, wrapHandler(handler))
}

// POST declares a POST route backed by handler.
func (g *GinRegistrar) POST(path string, handler plugin.HandlerFunc) {
	g.router.POST(path, wrapHandler(handler))
}

// wrapHandler bridges the transport-neutral handler into Gin. Handler errors
// are attached to the context for the error-handling middleware to map to a
// status code.
func wrapHandler(handler plugin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			data, err := io.ReadAll(c.Request.Body)
			if err != nil {
				_ = c.Error(err)
				return
			}
			body = data
		}

		resp, err := handler(c.Request.Context(), &plugin.Request{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Body:   body,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}

		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, resp.Body)
	}
}
