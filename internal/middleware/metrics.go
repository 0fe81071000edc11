package middleware

import (
	"time"

	"github.com/RafaelEmery/rafood-api/prometheus"
	"github.com/labstack/echo/v4"
)

// unmeteredPaths are served without being counted
var unmeteredPaths = map[string]bool{
	"/ping":    true,
	"/metrics": true,
}

// Metrics records the count, duration and status category of every request
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if unmeteredPaths[c.Request().URL.Path] {
				return next(c)
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			prometheus.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
