package postgres

import (
	"context"
	"database/sql"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (name, surname, email)
		VALUES ($1, $2, $3)
		RETURNING id, name, surname, email
	`
	var out model.User
	if err := r.db.QueryRowContext(ctx, q, u.Name, u.Surname, u.Email).
		Scan(&out.ID, &out.Name, &out.Surname, &out.Email); err != nil {
		return nil, classify(err)
	}
	return &out, nil
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, name, surname, email
		FROM users
		WHERE id = $1
	`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// Exists reports whether a user row with the given ID exists.
func (r *UserPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, classify(err)
	}
	return ok, nil
}
