package service

import (
	"context"
	"errors"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/pkg/logger"
	"github.com/RafaelEmery/rafood-api/prometheus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrScheduleLimitReached is returned when a restaurant already holds
// model.MaxRestaurantSchedules schedules.
var ErrScheduleLimitReached = errors.New("Cannot create more than three active schedules for a restaurant")

// RestaurantScheduleInput is used both to create a schedule and to replace all of its fields
type RestaurantScheduleInput struct {
	DayType   string `json:"day_type" validate:"required,day_type"`
	StartDay  string `json:"start_day" validate:"required,day"`
	EndDay    string `json:"end_day" validate:"required,day"`
	StartTime string `json:"start_time" validate:"required,min=6,max=8,clock"`
	EndTime   string `json:"end_time" validate:"required,min=6,max=8,clock"`
}

// apply normalises the enum and clock values onto schedule
func (input RestaurantScheduleInput) apply(schedule *model.RestaurantSchedule) error {
	dayType, err := model.ParseDayType(input.DayType)
	if err != nil {
		return apperror.Validation(err.Error(), err)
	}
	startDay, err := model.ParseDay(input.StartDay)
	if err != nil {
		return apperror.Validation(err.Error(), err)
	}
	endDay, err := model.ParseDay(input.EndDay)
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

	schedule.DayType = dayType
	schedule.StartDay = startDay
	schedule.EndDay = endDay
	schedule.StartTime = startTime
	schedule.EndTime = endTime
	return nil
}

// RestaurantScheduleService manages the opening schedules of a restaurant.
// Every operation confirms the restaurant exists before touching schedules.
type RestaurantScheduleService struct {
	crud        crud[model.RestaurantSchedule]
	schedules   ScheduleRepository[model.RestaurantSchedule]
	restaurants Repository[model.Restaurant]
}

func NewRestaurantScheduleService(
	repo ScheduleRepository[model.RestaurantSchedule],
	restaurants Repository[model.Restaurant],
	publisher events.Publisher,
) *RestaurantScheduleService {
	c := newCrud[model.RestaurantSchedule](apperror.RestaurantSchedule, repo, publisher)
	c.metadata = func(schedule *model.RestaurantSchedule) map[string]string {
		return map[string]string{"restaurant_id": schedule.RestaurantID.String()}
	}
	return &RestaurantScheduleService{crud: c, schedules: repo, restaurants: restaurants}
}

// Create adds a schedule unless the restaurant already has the maximum.
// The count and the insert are separate statements, so concurrent creates
// for the same restaurant can exceed the limit.
func (s *RestaurantScheduleService) Create(ctx context.Context, restaurantID uuid.UUID, input RestaurantScheduleInput) (uuid.UUID, error) {
	restaurant, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return uuid.Nil, s.crud.wrap(err)
	}

	if err := s.checkLimit(ctx, restaurant.ID); err != nil {
		return uuid.Nil, s.crud.wrap(err)
	}

	schedule := model.RestaurantSchedule{RestaurantID: restaurant.ID}
	if err := input.apply(&schedule); err != nil {
		return uuid.Nil, err
	}

	return s.crud.create(ctx, &schedule)
}

func (s *RestaurantScheduleService) checkLimit(ctx context.Context, restaurantID uuid.UUID) error {
	existing, err := s.schedules.ListByParent(ctx, restaurantID)
	if err != nil {
		return err
	}

	if len(existing) >= model.MaxRestaurantSchedules {
		logger.FromContext(ctx).Warn(ErrScheduleLimitReached.Error(),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Int("active_schedules_count", len(existing)))
		prometheus.RecordScheduleLimitReject()
		return ErrScheduleLimitReached
	}
	return nil
}

func (s *RestaurantScheduleService) Update(ctx context.Context, restaurantID, scheduleID uuid.UUID, input RestaurantScheduleInput) (*model.RestaurantSchedule, error) {
	if _, err := s.restaurants.Get(ctx, restaurantID); err != nil {
		return nil, s.crud.wrap(err)
	}

	return s.crud.update(ctx, scheduleID, func(schedule *model.RestaurantSchedule) error {
		if schedule.RestaurantID != restaurantID {
			return apperror.NotFound(apperror.RestaurantSchedule, scheduleID)
		}
		return input.apply(schedule)
	})
}

func (s *RestaurantScheduleService) Delete(ctx context.Context, restaurantID, scheduleID uuid.UUID) error {
	if _, err := s.restaurants.Get(ctx, restaurantID); err != nil {
		return s.crud.wrap(err)
	}

	return s.crud.delete(ctx, scheduleID, func(schedule *model.RestaurantSchedule) error {
		if schedule.RestaurantID != restaurantID {
			return apperror.NotFound(apperror.RestaurantSchedule, scheduleID)
		}
		return nil
	})
}
