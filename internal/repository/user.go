package repository

import (
	"context"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

// UserRepository defines data access for users.
type UserRepository interface {
	// Create inserts a user. A duplicate e-mail yields ErrConflict.
	Create(ctx context.Context, u model.User) (*model.User, error)

	// FindByID returns ErrNotFound when no user has the given ID.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
