package repository

import (
	"context"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

// FreightRepository defines data access for freights using SQL queries only.
type FreightRepository interface {
	// Create inserts a freight and returns it with its assigned ID.
	Create(ctx context.Context, f model.Freight) (*model.Freight, error)

	// FindByID returns ErrNotFound when no freight has the given ID.
	FindByID(ctx context.Context, id int64) (*model.Freight, error)

	// List returns a page of freights, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Freight], error)
}
