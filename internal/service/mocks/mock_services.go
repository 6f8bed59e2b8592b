package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockFreightService struct {
	mock.Mock
}

func (m *MockFreightService) Create(ctx context.Context, in model.FreightInput) (*model.Freight, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Freight), args.Error(1)
}

func (m *MockFreightService) Get(ctx context.Context, id int64) (*model.Freight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Freight), args.Error(1)
}

func (m *MockFreightService) List(ctx context.Context, limit, offset int) (*service.ListResult[model.Freight], error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Freight]), args.Error(1)
}

type MockFreightSearchService struct {
	mock.Mock
}

func (m *MockFreightSearchService) Create(ctx context.Context, in model.FreightSearchInput) (*model.FreightSearch, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FreightSearch), args.Error(1)
}

func (m *MockFreightSearchService) List(ctx context.Context, limit, offset int) (*service.ListResult[model.FreightSearch], error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.FreightSearch]), args.Error(1)
}

type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) FindMatches(ctx context.Context, freightID int64, req matching.PageRequest) (*matching.Page, error) {
	args := m.Called(ctx, freightID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matching.Page), args.Error(1)
}

func (m *MockMatchService) Export(ctx context.Context, freightID int64) (*service.ExportResult, error) {
	args := m.Called(ctx, freightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
