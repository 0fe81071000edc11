package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// scopedKey is where a request-scoped logger lives in a context.Context
type scopedKey struct{}

// FromContext returns the request-scoped logger carried by ctx, or the global one
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if scoped, ok := ctx.Value(scopedKey{}).(*zap.Logger); ok {
			return scoped
		}
	}
	return GetLogger()
}

// WithContext returns a copy of ctx carrying l
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, scopedKey{}, l)
}

// FromEcho returns the logger scoped to the request being served by c
func FromEcho(c echo.Context) *zap.Logger {
	return FromContext(c.Request().Context())
}

// SetEcho scopes l to the request served by c. Handlers and the services they
// call with c.Request().Context() both see it.
func SetEcho(c echo.Context, l *zap.Logger) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithContext(req.Context(), l)))
}
