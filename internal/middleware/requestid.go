package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied correlation ids
const maxRequestIDLength = 128

// RequestID propagates the correlation id found in header, generating one
// when the client did not send it. The id is echoed on the response so the
// logger middleware can pick it up.
func RequestID(header string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(header)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			c.Request().Header.Set(header, requestID)
			c.Response().Header().Set(header, requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}
