package handler

import (
	"context"
	"net/http"

	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/RafaelEmery/rafood-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryService is the category behaviour the handler depends on
type CategoryService interface {
	List(ctx context.Context, name string) ([]model.Category, error)
	Create(ctx context.Context, input service.CreateCategoryInput) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves /categories
type CategoryHandler struct {
	service CategoryService
}

func NewCategoryHandler(service CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Register mounts the category routes on g
func (h *CategoryHandler) Register(g *echo.Group) {
	g.GET("", h.ListCategories)
	g.POST("", h.CreateCategory)
	g.DELETE("/:id", h.DeleteCategory)
}

// ListCategories retrieves all product categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(categories, toCategoryResponse))
}

// CreateCategory adds a new product category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req service.CreateCategoryInput
	if err := bind(c, &req); err != nil {
		return err
	}

	logger.FromEcho(c).Debug("Category creation request", zap.String("name", req.Name))

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// DeleteCategory removes a category that no product references
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
