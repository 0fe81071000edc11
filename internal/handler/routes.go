package handler

import (
	"net/http"

	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Configure installs request validation, error rendering and trailing slash
// normalisation on e
func Configure(e *echo.Echo) {
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
}

// Register mounts the health check and every catalog route under prefix
func Register(e *echo.Echo, prefix string, services *service.Services) {
	e.GET("/ping", Ping)

	v1 := e.Group(prefix)
	NewUserHandler(services.Users).Register(v1.Group("/users"))
	NewCategoryHandler(services.Categories).Register(v1.Group("/categories"))
	NewRestaurantHandler(services.Restaurants, services.RestaurantSchedules).Register(v1.Group("/restaurants"))
	NewProductHandler(services.Products).Register(v1.Group("/products"))
	NewOfferHandler(services.Offers, services.OfferSchedules).Register(v1.Group("/offers"))
}

// Ping reports that the service is up
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "pong"})
}
