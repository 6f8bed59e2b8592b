package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockFreightRepository struct {
	mock.Mock
}

func (m *MockFreightRepository) Create(ctx context.Context, f model.Freight) (*model.Freight, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Freight), args.Error(1)
}

func (m *MockFreightRepository) FindByID(ctx context.Context, id int64) (*model.Freight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Freight), args.Error(1)
}

func (m *MockFreightRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Freight], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Freight]), args.Error(1)
}

type MockFreightSearchRepository struct {
	mock.Mock
}

func (m *MockFreightSearchRepository) Create(ctx context.Context, s model.FreightSearch) (*model.FreightSearch, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FreightSearch), args.Error(1)
}

func (m *MockFreightSearchRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FreightSearch], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.FreightSearch]), args.Error(1)
}

func (m *MockFreightSearchRepository) FindMatching(ctx context.Context, q matching.Query) ([]model.FreightSearch, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FreightSearch), args.Error(1)
}
