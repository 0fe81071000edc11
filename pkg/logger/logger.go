package logger

import (
	"time"

	"github.com/RafaelEmery/rafood-api/pkg/config"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// New builds a zap logger from the log and app configuration
func New(logConfig config.LogConfig, appConfig config.AppConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch logConfig.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapConfig zap.Config
	if logConfig.JSON || appConfig.Env == "production" {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// Human friendly console output for local development
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stdout"}

	return zapConfig.Build(zap.Fields(
		zap.String("service", appConfig.Name),
		zap.String("environment", appConfig.Env),
	))
}

// InitLogger builds the logger and installs it as the package and zap global
func InitLogger(cfg *config.Config) error {
	built, err := New(cfg.Log, cfg.App)
	if err != nil {
		return err
	}

	SetLogger(built)
	return nil
}

// SetLogger replaces the global logger instance
func SetLogger(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	return log
}

// Middleware returns an Echo middleware that logs every HTTP request once it
// has been served. It expects the request ID middleware to run first.
func Middleware(header string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			ctxLogger := FromEcho(c)
			if requestID := c.Response().Header().Get(header); requestID != "" {
				ctxLogger = log.With(zap.String("request_id", requestID))
				SetEcho(c, ctxLogger)
			}

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status below is final
				c.Error(err)
			}

			ctxLogger.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("route", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.RealIP()),
				zap.String("user_agent", c.Request().UserAgent()),
			)

			return nil
		}
	}
}
