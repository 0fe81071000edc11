package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorMapping is the HTTP rendering of one apperror.Kind
type errorMapping struct {
	Status int
	Title  string
}

var errorMappings = map[apperror.Kind]errorMapping{
	apperror.KindNotFound:   {Status: http.StatusNotFound, Title: "Not Found Error"},
	apperror.KindInternal:   {Status: http.StatusInternalServerError, Title: "Internal Server Error"},
	apperror.KindValidation: {Status: http.StatusUnprocessableEntity, Title: "Validation Error"},
}

type notFoundResponse struct {
	Title     string `json:"title"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type internalErrorResponse struct {
	Title     string            `json:"title"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Params    map[string]string `json:"params"`
	Query     map[string]string `json:"query"`
	Timestamp string            `json:"timestamp"`
}

type validationErrorResponse struct {
	Title     string            `json:"title"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   []apperror.Detail `json:"details"`
	Timestamp string            `json:"timestamp"`
}

type httpErrorResponse struct {
	Title   string      `json:"title"`
	Message interface{} `json:"message"`
}

type unexpectedErrorResponse struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorHandler renders every error returned by a handler or middleware
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := renderError(err, c)

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(status)
	} else {
		respErr = c.JSON(status, body)
	}
	if respErr != nil {
		logger.FromEcho(c).Error("Failed to write error response", zap.Error(respErr))
	}
}

func renderError(err error, c echo.Context) (int, interface{}) {
	log := logger.FromEcho(c)
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		mapping := errorMappings[appErr.Kind]

		switch appErr.Kind {
		case apperror.KindNotFound:
			log.Info(appErr.Message, zap.String("error_code", appErr.Code()))
			return mapping.Status, notFoundResponse{
				Title:     mapping.Title,
				Error:     appErr.Code(),
				Message:   appErr.Message,
				Timestamp: timestamp,
			}
		case apperror.KindValidation:
			log.Info("Request validation failed",
				zap.String("message", appErr.Message),
				zap.Int("invalid_fields", len(appErr.Details)))
			details := appErr.Details
			if details == nil {
				details = []apperror.Detail{}
			}
			return mapping.Status, validationErrorResponse{
				Title:     mapping.Title,
				Error:     appErr.Code(),
				Message:   appErr.Message,
				Details:   details,
				Timestamp: timestamp,
			}
		default:
			log.Error(appErr.Message, zap.String("error_code", appErr.Code()), zap.Error(appErr.Err))
			return mapping.Status, internalErrorResponse{
				Title:     mapping.Title,
				Error:     appErr.Code(),
				Message:   appErr.Message,
				Path:      c.Request().URL.Path,
				Params:    pathParams(c),
				Query:     queryParams(c),
				Timestamp: timestamp,
			}
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := httpErr.Message
		if httpErr.Internal != nil {
			log.Warn("HTTP error", zap.Int("status", httpErr.Code), zap.Error(httpErr.Internal))
		}
		if text, ok := message.(string); ok && text == "" {
			message = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, httpErrorResponse{
			Title:   http.StatusText(httpErr.Code),
			Message: message,
		}
	}

	log.Error("Unhandled error", zap.Error(err), zap.Stack("stacktrace"))
	return http.StatusInternalServerError, unexpectedErrorResponse{
		Title:   "Unexpected Error",
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
}

func pathParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	if len(names) == 0 {
		return nil
	}
	values := c.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}

func queryParams(c echo.Context) map[string]string {
	query := c.QueryParams()
	if len(query) == 0 {
		return nil
	}
	params := make(map[string]string, len(query))
	for key := range query {
		params[key] = query.Get(key)
	}
	return params
}
