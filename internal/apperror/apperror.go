package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for the HTTP boundary
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Entity identifies the catalog entity an error belongs to
type Entity string

const (
	User               Entity = "user"
	Category           Entity = "category"
	Restaurant         Entity = "restaurant"
	RestaurantSchedule Entity = "restaurant_schedule"
	Product            Entity = "product"
	Offer              Entity = "offer"
	OfferSchedule      Entity = "offer_schedule"
)

var labels = map[Entity]string{
	User:               "User",
	Category:           "Category",
	Restaurant:         "Restaurant",
	RestaurantSchedule: "Restaurant schedule",
	Product:            "Product",
	Offer:              "Offer",
	OfferSchedule:      "Offer schedule",
}

// Label is the human readable name used in messages
func (e Entity) Label() string {
	if label, ok := labels[e]; ok {
		return label
	}
	return string(e)
}

// Family is the plural name shared by the entity's repository, service and routes
func (e Entity) Family() string {
	if e == Category {
		return "categories"
	}
	return string(e) + "s"
}

// Detail describes why one request field was rejected
type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single tagged error type used between repositories, services and handlers
type Error struct {
	Kind    Kind
	Entity  Entity
	Message string
	Details []Detail
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code is the machine readable error code returned to clients
func (e *Error) Code() string {
	switch e.Kind {
	case KindNotFound:
		return string(e.Entity) + "_not_found"
	case KindValidation:
		return "validation_error"
	default:
		return e.Entity.Family() + "_internal_error"
	}
}

// NotFound reports that no entity with the given id exists
func NotFound(entity Entity, id fmt.Stringer) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s %s not found", entity.Label(), id),
	}
}

// Internal tags an unexpected failure with the entity family, keeping its message
func Internal(entity Entity, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Entity:  entity,
		Message: err.Error(),
		Err:     err,
	}
}

// Validation reports a request that was rejected before reaching a service
func Validation(message string, err error, details ...Detail) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Details: details,
		Err:     err,
	}
}

// Wrap passes application errors through and tags everything else as an
// internal error of the given entity family.
func Wrap(entity Entity, err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	return Internal(entity, err)
}

// IsNotFound reports whether err is a not found error of any entity
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// IsNotFoundOf reports whether err is a not found error of the given entity
func IsNotFoundOf(err error, entity Entity) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound && appErr.Entity == entity
}
