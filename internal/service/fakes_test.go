package service

import (
	"context"
	"sync"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type idAssigner interface {
	BeforeCreate(tx *gorm.DB) error
}

// fakeRepo is an in-memory Repository keyed by entity id
type fakeRepo[T model.Identifiable] struct {
	entity   apperror.Entity
	items    map[uuid.UUID]T
	parentOf func(T) uuid.UUID

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	creates int
}

func newFakeRepo[T model.Identifiable](entity apperror.Entity) *fakeRepo[T] {
	return &fakeRepo[T]{entity: entity, items: make(map[uuid.UUID]T)}
}

func (r *fakeRepo[T]) List(_ context.Context, _ repository.ListFilter) ([]T, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	items := make([]T, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeRepo[T]) Get(_ context.Context, id uuid.UUID) (*T, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperror.NotFound(r.entity, id)
	}
	return &item, nil
}

func (r *fakeRepo[T]) GetDetailed(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.Get(ctx, id)
}

func (r *fakeRepo[T]) Create(_ context.Context, entity *T) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	if assigner, ok := any(entity).(idAssigner); ok {
		_ = assigner.BeforeCreate(nil)
	}
	r.creates++
	id := (*entity).EntityID()
	r.items[id] = *entity
	return id, nil
}

func (r *fakeRepo[T]) Update(_ context.Context, entity *T) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.items[(*entity).EntityID()] = *entity
	return nil
}

func (r *fakeRepo[T]) Delete(_ context.Context, entity *T) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.items, (*entity).EntityID())
	return nil
}

func (r *fakeRepo[T]) ListByParent(_ context.Context, parentID uuid.UUID) ([]T, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	items := make([]T, 0)
	for _, item := range r.items {
		if r.parentOf(item) == parentID {
			items = append(items, item)
		}
	}
	return items, nil
}

// recordingPublisher keeps every published event and can be made to fail
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	topics := make([]string, len(p.events))
	for i, event := range p.events {
		topics[i] = event.Topic
	}
	return topics
}
