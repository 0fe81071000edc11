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

// RestaurantService is the restaurant behaviour the handler depends on
type RestaurantService interface {
	List(ctx context.Context, filter service.RestaurantFilter) ([]model.Restaurant, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Create(ctx context.Context, input service.RestaurantInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input service.RestaurantInput) (*model.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RestaurantScheduleService is the restaurant schedule behaviour the handler depends on
type RestaurantScheduleService interface {
	Create(ctx context.Context, restaurantID uuid.UUID, input service.RestaurantScheduleInput) (uuid.UUID, error)
	Update(ctx context.Context, restaurantID, scheduleID uuid.UUID, input service.RestaurantScheduleInput) (*model.RestaurantSchedule, error)
	Delete(ctx context.Context, restaurantID, scheduleID uuid.UUID) error
}

// RestaurantHandler serves /restaurants and their schedules
type RestaurantHandler struct {
	restaurants RestaurantService
	schedules   RestaurantScheduleService
}

func NewRestaurantHandler(restaurants RestaurantService, schedules RestaurantScheduleService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, schedules: schedules}
}

// Register mounts the restaurant routes on g
func (h *RestaurantHandler) Register(g *echo.Group) {
	g.GET("", h.ListRestaurants)
	g.GET("/:id", h.GetRestaurant)
	g.POST("", h.CreateRestaurant)
	g.PATCH("/:id", h.UpdateRestaurant)
	g.DELETE("/:id", h.DeleteRestaurant)

	g.POST("/:id/schedules", h.CreateSchedule)
	g.PATCH("/:id/schedules/:schedule_id", h.UpdateSchedule)
	g.DELETE("/:id/schedules/:schedule_id", h.DeleteSchedule)
}

// ListRestaurants retrieves restaurants with their schedules, filtered by name and owner
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	ownerID, err := queryID(c, "owner_id")
	if err != nil {
		return err
	}

	filter := service.RestaurantFilter{Name: c.QueryParam("name"), OwnerID: ownerID}
	logger.FromEcho(c).Debug("Listing restaurants", zap.String("name", filter.Name), zap.Bool("by_owner", ownerID != nil))

	restaurants, err := h.restaurants.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(restaurants, toRestaurantListResponse))
}

// GetRestaurant retrieves a restaurant with its products
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.restaurants.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantDetailResponse(*restaurant))
}

// CreateRestaurant adds a restaurant for an existing owner
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req service.RestaurantInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.restaurants.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateRestaurant replaces every field of a restaurant
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.RestaurantInput
	if err := bind(c, &req); err != nil {
		return err
	}

	restaurant, err := h.restaurants.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantResponse(*restaurant))
}

// DeleteRestaurant removes a restaurant
func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.restaurants.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateSchedule adds an opening schedule to a restaurant
func (h *RestaurantHandler) CreateSchedule(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.RestaurantScheduleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.schedules.Create(c.Request().Context(), restaurantID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateSchedule replaces every field of a restaurant schedule
func (h *RestaurantHandler) UpdateSchedule(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scheduleID, err := pathID(c, "schedule_id")
	if err != nil {
		return err
	}

	var req service.RestaurantScheduleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	schedule, err := h.schedules.Update(c.Request().Context(), restaurantID, scheduleID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantScheduleResponse(*schedule))
}

// DeleteSchedule removes a restaurant schedule
func (h *RestaurantHandler) DeleteSchedule(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scheduleID, err := pathID(c, "schedule_id")
	if err != nil {
		return err
	}

	if err := h.schedules.Delete(c.Request().Context(), restaurantID, scheduleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
