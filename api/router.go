package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var context Backend

func apiMetricsGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		countPackagesByRepos()
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	}
}

// Router returns prebuilt with routes http.Handler
func Router(c Backend) http.Handler {
	if pacfind.EnableDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	context = c

	router.UseRawPath = true

	if c.Config().LogFormat == "json" {
		utils.SetupJSONLogger(c.Config().LogLevel, os.Stdout)
		gin.DefaultWriter = utils.LogWriter{Logger: log.Logger}
		router.Use(JSONLogger())
	} else {
		utils.SetupDefaultLogger(c.Config().LogLevel, os.Stderr)
		router.Use(gin.Logger())
	}

	router.Use(gin.Recovery(), gin.ErrorLogger())

	if c.Config().EnableMetricsEndpoint {
		MetricsCollectorRegistrar.Register(router)
	}

	api := router.Group("/api")

	{
		if c.Config().EnableMetricsEndpoint {
			api.GET("/metrics", apiMetricsGet())
		}
		api.GET("/version", apiVersion)
		api.GET("/fields", apiFields)
	}

	{
		api.GET("/repos", apiReposList)
	}

	{
		api.GET("/packages/:name", apiPackagesShow)
		api.GET("/packages", apiPackages)
	}

	return router
}
