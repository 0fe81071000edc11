package handler

import (
	"context"
	"net/http"

	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OfferService is the offer behaviour the handler depends on
type OfferService interface {
	List(ctx context.Context) ([]model.Offer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Offer, error)
	Create(ctx context.Context, input service.CreateOfferInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateOfferInput) (*model.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfferScheduleService is the offer schedule behaviour the handler depends on
type OfferScheduleService interface {
	Create(ctx context.Context, offerID uuid.UUID, input service.OfferScheduleInput) (uuid.UUID, error)
	Update(ctx context.Context, offerID, scheduleID uuid.UUID, input service.OfferScheduleInput) (*model.OfferSchedule, error)
	Delete(ctx context.Context, offerID, scheduleID uuid.UUID) error
}

// OfferHandler serves /offers and their schedules
type OfferHandler struct {
	offers    OfferService
	schedules OfferScheduleService
}

func NewOfferHandler(offers OfferService, schedules OfferScheduleService) *OfferHandler {
	return &OfferHandler{offers: offers, schedules: schedules}
}

// Register mounts the offer routes on g
func (h *OfferHandler) Register(g *echo.Group) {
	g.GET("", h.ListOffers)
	g.GET("/:id", h.GetOffer)
	g.POST("", h.CreateOffer)
	g.PATCH("/:id", h.UpdateOffer)
	g.DELETE("/:id", h.DeleteOffer)

	g.POST("/:id/schedules", h.CreateSchedule)
	g.PATCH("/:id/schedules/:schedule_id", h.UpdateSchedule)
	g.DELETE("/:id/schedules/:schedule_id", h.DeleteSchedule)
}

// ListOffers retrieves all offers
func (h *OfferHandler) ListOffers(c echo.Context) error {
	offers, err := h.offers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(offers, toOfferResponse))
}

// GetOffer retrieves an offer with its schedules
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferDetailResponse(*offer))
}

// CreateOffer adds an active offer to a product
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req service.CreateOfferInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.offers.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateOffer changes the price and optionally the active flag of an offer
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.UpdateOfferInput
	if err := bind(c, &req); err != nil {
		return err
	}

	offer, err := h.offers.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferResponse(*offer))
}

// DeleteOffer removes an offer
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offers.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateSchedule adds a schedule to an offer
func (h *OfferHandler) CreateSchedule(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.OfferScheduleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.schedules.Create(c.Request().Context(), offerID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateSchedule replaces every field of an offer schedule
func (h *OfferHandler) UpdateSchedule(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scheduleID, err := pathID(c, "schedule_id")
	if err != nil {
		return err
	}

	var req service.OfferScheduleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	schedule, err := h.schedules.Update(c.Request().Context(), offerID, scheduleID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferScheduleResponse(*schedule))
}

// DeleteSchedule removes an offer schedule
func (h *OfferHandler) DeleteSchedule(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scheduleID, err := pathID(c, "schedule_id")
	if err != nil {
		return err
	}

	if err := h.schedules.Delete(c.Request().Context(), offerID, scheduleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
