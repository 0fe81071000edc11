package handler

import (
	"context"
	"net/http"

	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductService is the product behaviour the handler depends on
type ProductService interface {
	List(ctx context.Context, filter service.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, input service.ProductInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input service.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler serves /products
type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Register mounts the product routes on g
func (h *ProductHandler) Register(g *echo.Group) {
	g.GET("", h.ListProducts)
	g.GET("/:id", h.GetProduct)
	g.POST("", h.CreateProduct)
	g.PATCH("/:id", h.UpdateProduct)
	g.DELETE("/:id", h.DeleteProduct)
}

// ListProducts retrieves products with their category, filtered by name and category
func (h *ProductHandler) ListProducts(c echo.Context) error {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), service.ProductFilter{
		Name:       c.QueryParam("name"),
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(products, toProductListResponse))
}

// GetProduct retrieves a product with its offers
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDetailResponse(*product))
}

// CreateProduct adds a product to a restaurant
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req service.ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateProduct replaces every field of a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
