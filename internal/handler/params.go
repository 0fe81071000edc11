package handler

import (
	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the UUID path parameter name
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return parseID(name, c.Param(name))
}

// queryID parses an optional UUID query parameter; absent means nil
func queryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("Invalid identifier", err, apperror.Detail{
			Field:   name,
			Message: "value is not a valid UUID",
		})
	}
	return id, nil
}

// bind decodes the JSON body into input and validates it
func bind(c echo.Context, input interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		message := "Invalid request body"
		if httpErr, ok := err.(*echo.HTTPError); ok && httpErr.Internal != nil {
			message = httpErr.Internal.Error()
		}
		return apperror.Validation(message, err)
	}
	return c.Validate(input)
}
