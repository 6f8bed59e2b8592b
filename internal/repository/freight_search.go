package repository

import (
	"context"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
)

// FreightSearchRepository is the criteria store. Rows are append-only.
type FreightSearchRepository interface {
	matching.Store

	// Create inserts a search; the store assigns ID and CreatedAt.
	// An unknown owner yields ErrForeignKey.
	Create(ctx context.Context, s model.FreightSearch) (*model.FreightSearch, error)

	// List returns a page of searches in (created_at, id) descending order and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.FreightSearch], error)
}
