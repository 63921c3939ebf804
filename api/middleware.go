package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// getBasePath returns first two path segments (e.g.: /api/packages), keeping
// label cardinality low
func getBasePath(c *gin.Context) string {
	segment0, err := getURLSegment(c.Request.URL.Path, 0)
	if err != nil {
		return "/"
	}
	segment1, err := getURLSegment(c.Request.URL.Path, 1)
	if err != nil {
		return *segment0
	}

	return *segment0 + *segment1
}

func getURLSegment(url string, idx int) (*string, error) {
	urlSegments := strings.Split(strings.TrimPrefix(url, "/"), "/")

	if len(urlSegments) <= idx {
		return nil, fmt.Errorf("index %d out of range, only has %d url segments", idx, len(urlSegments))
	}

	return pointer.ToString("/" + urlSegments[idx]), nil
}

func instrumentHandlerInFlight(g *prometheus.GaugeVec, pathFunc func(*gin.Context) string) func(*gin.Context) {
	return func(c *gin.Context) {
		g.WithLabelValues(c.Request.Method, pathFunc(c)).Inc()
		defer g.WithLabelValues(c.Request.Method, pathFunc(c)).Dec()
		c.Next()
	}
}

func instrumentHandlerCounter(counter *prometheus.CounterVec, pathFunc func(*gin.Context) string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Next()
		counter.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, pathFunc(c)).Inc()
	}
}

func instrumentHandlerRequestSize(obs prometheus.ObserverVec, pathFunc func(*gin.Context) string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Next()
		obs.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, pathFunc(c)).Observe(float64(c.Request.ContentLength))
	}
}

func instrumentHandlerResponseSize(obs prometheus.ObserverVec, pathFunc func(*gin.Context) string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Next()
		var responseSize = math.Max(float64(c.Writer.Size()), 0)
		obs.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, pathFunc(c)).Observe(responseSize)
	}
}

func instrumentHandlerDuration(obs prometheus.ObserverVec, pathFunc func(*gin.Context) string) func(*gin.Context) {
	return func(c *gin.Context) {
		now := time.Now()
		c.Next()
		obs.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, pathFunc(c)).Observe(time.Since(now).Seconds())
	}
}

// JSONLogger is a gin middleware writing access logs through global zerolog
// logger, including error messages if there are any
func JSONLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		errorMessage := strings.TrimSuffix(c.Errors.ByType(gin.ErrorTypePrivate).String(), "\n")
		l := log.With().
			Str("remote", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("protocol", c.Request.Proto).
			Str("code", fmt.Sprint(c.Writer.Status())).
			Str("latency", time.Since(start).String()).
			Str("agent", c.Request.UserAgent()).
			Logger()

		switch status := c.Writer.Status(); {
		case status >= 400 && status < 500:
			l.Warn().Msg(errorMessage)
		case status >= 500:
			l.Error().Msg(errorMessage)
		default:
			l.Info().Msg(errorMessage)
		}
	}
}
