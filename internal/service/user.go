package service

import (
	"context"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// UserService defines the use cases for users.
type UserService interface {
	// Create validates and stores a user. A duplicate e-mail yields ErrConflict.
	Create(ctx context.Context, in model.UserInput) (*model.User, error)

	// Get returns ErrUserNotFound for an unknown ID.
	Get(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	in.Normalize()
	if err := violations(in.Validate()); err != nil {
		return nil, err
	}
	u, err := s.repo.Create(ctx, model.User{Name: in.Name, Surname: in.Surname, Email: in.Email})
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return u, nil
}
