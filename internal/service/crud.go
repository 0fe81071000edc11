package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/RafaelEmery/rafood-api/pkg/logger"
	"github.com/RafaelEmery/rafood-api/prometheus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the persistence contract shared by every entity family
type Repository[T model.Identifiable] interface {
	List(ctx context.Context, filter repository.ListFilter) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) (uuid.UUID, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// ScheduleRepository adds the lookup of schedules owned by a parent
type ScheduleRepository[T model.Identifiable] interface {
	Repository[T]
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]T, error)
}

// crud implements the list/get/create/update/delete flow common to all
// families. Every returned error is tagged with the family's entity.
type crud[T model.Identifiable] struct {
	entity    apperror.Entity
	repo      Repository[T]
	publisher events.Publisher
	// metadata adds routing hints (e.g. the parent id) to published events
	metadata func(*T) map[string]string
}

func newCrud[T model.Identifiable](entity apperror.Entity, repo Repository[T], publisher events.Publisher) crud[T] {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return crud[T]{entity: entity, repo: repo, publisher: publisher}
}

func (c crud[T]) list(ctx context.Context, filter repository.ListFilter) ([]T, error) {
	items, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, c.wrap(err)
	}

	logger.FromContext(ctx).Info(c.entity.Label()+" list retrieved successfully",
		zap.Int("listed_"+c.entity.Family()+"_count", len(items)))
	return items, nil
}

func (c crud[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	entity, err := c.repo.GetDetailed(ctx, id)
	if err != nil {
		return nil, c.wrap(err)
	}

	logger.FromContext(ctx).Info(c.entity.Label()+" retrieved successfully", c.idField(id))
	return entity, nil
}

func (c crud[T]) create(ctx context.Context, entity *T) (uuid.UUID, error) {
	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, c.wrap(err)
	}

	logger.FromContext(ctx).Info(c.entity.Label()+" created successfully", c.idField(id))
	c.record(ctx, events.ActionCreated, id, entity)
	return id, nil
}

// update fetches the entity, lets mutate overwrite its fields and saves it.
// An error from mutate aborts the update.
func (c crud[T]) update(ctx context.Context, id uuid.UUID, mutate func(*T) error) (*T, error) {
	entity, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, c.wrap(err)
	}

	if err := mutate(entity); err != nil {
		return nil, c.wrap(err)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, c.wrap(err)
	}

	logger.FromContext(ctx).Info(c.entity.Label()+" updated successfully", c.idField(id))
	c.record(ctx, events.ActionUpdated, id, entity)
	return entity, nil
}

// delete fetches the entity and removes it. A non-nil guard may refuse the
// deletion after the fetch.
func (c crud[T]) delete(ctx context.Context, id uuid.UUID, guard func(*T) error) error {
	entity, err := c.repo.Get(ctx, id)
	if err != nil {
		return c.wrap(err)
	}

	if guard != nil {
		if err := guard(entity); err != nil {
			return c.wrap(err)
		}
	}

	if err := c.repo.Delete(ctx, entity); err != nil {
		return c.wrap(err)
	}

	logger.FromContext(ctx).Info(c.entity.Label()+" deleted successfully", c.idField(id))
	c.record(ctx, events.ActionDeleted, id, entity)
	return nil
}

func (c crud[T]) wrap(err error) error {
	return apperror.Wrap(c.entity, err)
}

func (c crud[T]) idField(id uuid.UUID) zap.Field {
	return zap.String(string(c.entity)+"_id", id.String())
}

// record counts a successful mutation and publishes its change event.
// Publishing failures are logged and never reach the caller.
func (c crud[T]) record(ctx context.Context, action string, id uuid.UUID, entity *T) {
	prometheus.RecordCatalogOperation(c.entity.Family(), action)

	var metadata map[string]string
	if c.metadata != nil {
		metadata = c.metadata(entity)
	}

	var data interface{}
	if action != events.ActionDeleted {
		data = entity
	}

	event := events.New(string(c.entity), action, id.String(), data, metadata)
	err := c.publisher.Publish(ctx, event)
	prometheus.RecordEventPublished(event.Topic, err)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to publish change event",
			zap.String("topic", event.Topic),
			c.idField(id),
			zap.Error(err))
	}
}
