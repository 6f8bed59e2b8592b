package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/1vor/fulltruck-challenge/internal/events"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// FreightSearchService defines the use cases for saved searches.
type FreightSearchService interface {
	// Create validates the criteria, checks the owner exists and stores the search.
	// A search-created event is published afterwards; its failure does not fail Create.
	Create(ctx context.Context, in model.FreightSearchInput) (*model.FreightSearch, error)

	// List returns searches, newest first, using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ListResult[model.FreightSearch], error)
}

type freightSearchService struct {
	users     repository.UserRepository
	searches  repository.FreightSearchRepository
	publisher events.Publisher
	now       func() time.Time
}

// NewFreightSearchService constructs a new FreightSearchService.
func NewFreightSearchService(users repository.UserRepository, searches repository.FreightSearchRepository, publisher events.Publisher) FreightSearchService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &freightSearchService{users: users, searches: searches, publisher: publisher, now: time.Now}
}

func (s *freightSearchService) Create(ctx context.Context, in model.FreightSearchInput) (*model.FreightSearch, error) {
	if err := violations(in.Validate()); err != nil {
		return nil, err
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	// The foreign key still guards against the owner disappearing in between.
	created, err := s.searches.Create(ctx, in.FreightSearch())
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	if err := s.publisher.PublishSearchCreated(ctx, events.NewSearchCreated(*created, s.now())); err != nil {
		slog.Warn("publish search created failed",
			slog.Int64("search_id", created.ID),
			slog.String("error", err.Error()),
		)
	}
	return created, nil
}

func (s *freightSearchService) List(ctx context.Context, limit, offset int) (*ListResult[model.FreightSearch], error) {
	pq := pageQuery(limit, offset)
	res, err := s.searches.List(ctx, pq)
	if err != nil {
		return nil, translate(err, ErrNotFound)
	}
	return listResult(res, pq), nil
}
