package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/prometheus"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Descriptor specialises a Store for one entity family
type Descriptor struct {
	Entity apperror.Entity
	// NameColumn is matched case-insensitively by ListFilter.Name
	NameColumn string
	// FilterColumns are the only columns ListFilter.Equals may reference
	FilterColumns []string
	// ListPreloads are the relations loaded by List
	ListPreloads []string
	// DetailPreloads are the relations loaded by GetDetailed
	DetailPreloads []string
	// ParentColumn is the foreign key used by ListByParent
	ParentColumn string
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	Name   string
	Equals map[string]interface{}
}

// Store performs CRUD for one entity type through gorm
type Store[T model.Identifiable] struct {
	db         *gorm.DB
	descriptor Descriptor
}

// NewStore creates a store for T described by descriptor
func NewStore[T model.Identifiable](db *gorm.DB, descriptor Descriptor) *Store[T] {
	return &Store[T]{db: db, descriptor: descriptor}
}

// Entity returns the entity the store persists
func (s *Store[T]) Entity() apperror.Entity {
	return s.descriptor.Entity
}

// List returns every row matching filter with the list relations loaded
func (s *Store[T]) List(ctx context.Context, filter ListFilter) ([]T, error) {
	defer s.track("list")(time.Now())

	query := s.preload(s.db.WithContext(ctx), s.descriptor.ListPreloads)

	if filter.Name != "" {
		if s.descriptor.NameColumn == "" {
			return nil, fmt.Errorf("%s cannot be filtered by name", s.descriptor.Entity.Family())
		}
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		query = query.Where(clause.Expr{
			SQL:  "LOWER(?) LIKE ?",
			Vars: []interface{}{clause.Column{Name: s.descriptor.NameColumn}, pattern},
		})
	}

	for column, value := range filter.Equals {
		if !s.filterable(column) {
			return nil, fmt.Errorf("%s cannot be filtered by %s", s.descriptor.Entity.Family(), column)
		}
		query = query.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}

	items := make([]T, 0)
	if err := query.Order(createdAtOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single row without relations
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	defer s.track("get")(time.Now())
	return s.find(s.db.WithContext(ctx), id)
}

// GetDetailed fetches a single row with the detail relations loaded
func (s *Store[T]) GetDetailed(ctx context.Context, id uuid.UUID) (*T, error) {
	defer s.track("get_detailed")(time.Now())
	return s.find(s.preload(s.db.WithContext(ctx), s.descriptor.DetailPreloads), id)
}

// Create inserts entity and returns its generated id
func (s *Store[T]) Create(ctx context.Context, entity *T) (uuid.UUID, error) {
	defer s.track("create")(time.Now())

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return uuid.Nil, err
	}
	return (*entity).EntityID(), nil
}

// Update saves every column of an entity previously fetched with Get
func (s *Store[T]) Update(ctx context.Context, entity *T) error {
	defer s.track("update")(time.Now())
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

// Delete removes an entity previously fetched with Get
func (s *Store[T]) Delete(ctx context.Context, entity *T) error {
	defer s.track("delete")(time.Now())
	return s.db.WithContext(ctx).Delete(entity).Error
}

// ListByParent returns the rows owned by parentID
func (s *Store[T]) ListByParent(ctx context.Context, parentID uuid.UUID) ([]T, error) {
	defer s.track("list_by_parent")(time.Now())

	if s.descriptor.ParentColumn == "" {
		return nil, fmt.Errorf("%s have no parent", s.descriptor.Entity.Family())
	}

	items := make([]T, 0)
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: s.descriptor.ParentColumn}, Value: parentID}).
		Order(createdAtOrder).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) find(query *gorm.DB, id uuid.UUID) (*T, error) {
	var entity T
	err := query.Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(s.descriptor.Entity, id)
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *Store[T]) preload(query *gorm.DB, relations []string) *gorm.DB {
	for _, relation := range relations {
		query = query.Preload(relation, func(db *gorm.DB) *gorm.DB {
			return db.Order(createdAtOrder)
		})
	}
	return query
}

func (s *Store[T]) filterable(column string) bool {
	for _, allowed := range s.descriptor.FilterColumns {
		if allowed == column {
			return true
		}
	}
	return false
}

func (s *Store[T]) track(operation string) func(startTime time.Time) {
	return prometheus.TrackDBOperation(s.descriptor.Entity.Family() + "." + operation)
}

var createdAtOrder = clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}
