package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
)

// CreateUserInput is the payload accepted when registering a user
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required,max=256"`
	LastName  string `json:"last_name" validate:"required,max=256"`
	Email     string `json:"email" validate:"required,email,max=256"`
	Password  string `json:"password" validate:"required,max=256"`
}

// UpdateUserInput holds the only user fields that can change
type UpdateUserInput struct {
	FirstName string `json:"first_name" validate:"required,max=256"`
	LastName  string `json:"last_name" validate:"required,max=256"`
}

// UserService manages users
type UserService struct {
	crud crud[model.User]
}

func NewUserService(repo Repository[model.User], publisher events.Publisher) *UserService {
	return &UserService{crud: newCrud(apperror.User, repo, publisher)}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.crud.list(ctx, repository.ListFilter{})
}

// Get returns the user with the restaurants it owns
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.crud.get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error) {
	// TODO: hash passwords once existing clients can migrate; they are stored as received
	user := model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	}
	return s.crud.create(ctx, &user)
}

// Update changes the user's names. Email and password are left untouched.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	return s.crud.update(ctx, id, func(user *model.User) error {
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		return nil
	})
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.delete(ctx, id, nil)
}
