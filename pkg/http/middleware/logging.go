package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// scrape endpoints are polled constantly and would drown the request log
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogging logs each request with its status and latency.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)

			if !quietPaths[req.URL.Path] {
				log.Printf("%s %s from %s - %d (%s)",
					req.Method,
					req.RequestURI,
					c.RealIP(),
					c.Response().Status,
					time.Since(start),
				)
			}

			return err
		}
	}
}
