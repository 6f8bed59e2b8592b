package service

import (
	"context"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// FreightService defines the use cases for freights.
type FreightService interface {
	Create(ctx context.Context, in model.FreightInput) (*model.Freight, error)

	// Get returns ErrFreightNotFound for an unknown ID.
	Get(ctx context.Context, id int64) (*model.Freight, error)

	// List returns freights using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ListResult[model.Freight], error)
}

type freightService struct {
	repo repository.FreightRepository
}

// NewFreightService constructs a new FreightService.
func NewFreightService(repo repository.FreightRepository) FreightService {
	return &freightService{repo: repo}
}

func (s *freightService) Create(ctx context.Context, in model.FreightInput) (*model.Freight, error) {
	if err := violations(in.Validate()); err != nil {
		return nil, err
	}
	f, err := s.repo.Create(ctx, in.Freight())
	if err != nil {
		return nil, translate(err, ErrFreightNotFound)
	}
	return f, nil
}

func (s *freightService) Get(ctx context.Context, id int64) (*model.Freight, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrFreightNotFound)
	}
	return f, nil
}

func (s *freightService) List(ctx context.Context, limit, offset int) (*ListResult[model.Freight], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, pq)
	if err != nil {
		return nil, translate(err, ErrNotFound)
	}
	return listResult(res, pq), nil
}
