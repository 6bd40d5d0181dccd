package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hostframe/weather-plugin/config"
	"github.com/hostframe/weather-plugin/host"
	"github.com/hostframe/weather-plugin/middleware"
	"github.com/hostframe/weather-plugin/plugin"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config *config.Config
	Module plugin.Module
	Logger *zap.SugaredLogger
}

// SetupRouter configures the Gin engine: global middleware, host-level
// routes, and the routes declared by the plugin module. The module must
// already be initialized; its RegisterEndpoints call happens here.
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Config.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Host-level routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Plugin-declared routes
	if err := deps.Module.RegisterEndpoints(host.NewGinRegistrar(r)); err != nil {
		return nil, err
	}

	return r, nil
}
