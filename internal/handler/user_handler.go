package handler

import (
	"context"
	"net/http"

	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserService is the user behaviour the handler depends on
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, input service.CreateUserInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler serves /users
type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register mounts the user routes on g
func (h *UserHandler) Register(g *echo.Group) {
	g.GET("", h.ListUsers)
	g.GET("/:id", h.GetUser)
	g.POST("", h.CreateUser)
	g.PUT("/:id", h.UpdateUser)
	g.DELETE("/:id", h.DeleteUser)
}

// ListUsers retrieves all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(users, toUserResponse))
}

// GetUser retrieves a user with the restaurants it owns
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDetailResponse(*user))
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req service.CreateUserInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateUser changes the first and last name of a user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateUserInput
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
