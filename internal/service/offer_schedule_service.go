package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/google/uuid"
)

// OfferScheduleInput is used both to create a schedule and to replace all of its fields
type OfferScheduleInput struct {
	Day       string `json:"day" validate:"required,day"`
	StartTime string `json:"start_time" validate:"required,min=6,max=8,clock"`
	EndTime   string `json:"end_time" validate:"required,min=6,max=8,clock"`
	Repeats   *bool  `json:"repeats" validate:"required"`
}

func (input OfferScheduleInput) apply(schedule *model.OfferSchedule) error {
	day, err := model.ParseDay(input.Day)
	if err != nil {
		return apperror.Validation(err.Error(), err)
	}
	startTime, err := model.ParseClock(input.StartTime)
	if err != nil {
		return apperror.Validation(err.Error(), err)
	}
	endTime, err := model.ParseClock(input.EndTime)
	if err != nil {
		return apperror.Validation(err.Error(), err)
	}

	schedule.Day = day
	schedule.StartTime = startTime
	schedule.EndTime = endTime
	schedule.Repeats = input.Repeats != nil && *input.Repeats
	return nil
}

// OfferScheduleService manages the windows in which an offer applies.
// Every operation confirms the offer exists before touching schedules.
type OfferScheduleService struct {
	crud   crud[model.OfferSchedule]
	offers Repository[model.Offer]
}

func NewOfferScheduleService(
	repo ScheduleRepository[model.OfferSchedule],
	offers Repository[model.Offer],
	publisher events.Publisher,
) *OfferScheduleService {
	c := newCrud[model.OfferSchedule](apperror.OfferSchedule, repo, publisher)
	c.metadata = func(schedule *model.OfferSchedule) map[string]string {
		return map[string]string{"offer_id": schedule.OfferID.String()}
	}
	return &OfferScheduleService{crud: c, offers: offers}
}

func (s *OfferScheduleService) Create(ctx context.Context, offerID uuid.UUID, input OfferScheduleInput) (uuid.UUID, error) {
	offer, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return uuid.Nil, s.crud.wrap(err)
	}

	schedule := model.OfferSchedule{OfferID: offer.ID}
	if err := input.apply(&schedule); err != nil {
		return uuid.Nil, err
	}

	return s.crud.create(ctx, &schedule)
}

func (s *OfferScheduleService) Update(ctx context.Context, offerID, scheduleID uuid.UUID, input OfferScheduleInput) (*model.OfferSchedule, error) {
	if _, err := s.offers.Get(ctx, offerID); err != nil {
		return nil, s.crud.wrap(err)
	}

	return s.crud.update(ctx, scheduleID, func(schedule *model.OfferSchedule) error {
		if schedule.OfferID != offerID {
			return apperror.NotFound(apperror.OfferSchedule, scheduleID)
		}
		return input.apply(schedule)
	})
}

func (s *OfferScheduleService) Delete(ctx context.Context, offerID, scheduleID uuid.UUID) error {
	if _, err := s.offers.Get(ctx, offerID); err != nil {
		return s.crud.wrap(err)
	}

	return s.crud.delete(ctx, scheduleID, func(schedule *model.OfferSchedule) error {
		if schedule.OfferID != offerID {
			return apperror.NotFound(apperror.OfferSchedule, scheduleID)
		}
		return nil
	})
}
