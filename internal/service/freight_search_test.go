package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/1vor/fulltruck-challenge/internal/events"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
	repoMocks "github.com/1vor/fulltruck-challenge/internal/repository/mocks"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishSearchCreated(ctx context.Context, e events.SearchCreatedEvent) error {
	return m.Called(ctx, e).Error(0)
}

func TestFreightSearchService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2022, 1, 1, 9, 0, 0, 0, time.UTC)
	in := model.FreightSearchInput{
		UserID:       1,
		PickupCode:   ptr(int64(10100)),
		DeliveryCode: ptr(int64(20100)),
		MinPrice:     ptr(decimal.RequireFromString("200")),
		MaxPrice:     ptr(decimal.RequireFromString("350")),
	}
	stored := in.FreightSearch()
	stored.ID = 11
	stored.CreatedAt = now

	tests := []struct {
		name       string
		in         model.FreightSearchInput
		setupMocks func(mUsers *repoMocks.MockUserRepository, mSearches *repoMocks.MockFreightSearchRepository, mPub *mockPublisher)
		wantErr    error
	}{
		{
			name: "happy path publishes event",
			in:   in,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mSearches *repoMocks.MockFreightSearchRepository, mPub *mockPublisher) {
				mUsers.On("Exists", ctx, int64(1)).Return(true, nil)
				mSearches.On("Create", ctx, in.FreightSearch()).Return(&stored, nil)
				mPub.On("PublishSearchCreated", ctx, events.NewSearchCreated(stored, now)).Return(nil)
			},
		},
		{
			name: "publish failure is not fatal",
			in:   in,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mSearches *repoMocks.MockFreightSearchRepository, mPub *mockPublisher) {
				mUsers.On("Exists", ctx, int64(1)).Return(true, nil)
				mSearches.On("Create", ctx, mock.Anything).Return(&stored, nil)
				mPub.On("PublishSearchCreated", ctx, mock.Anything).Return(errors.New("broker down"))
			},
		},
		{
			name: "inverted price band rejected before storage",
			in: model.FreightSearchInput{
				UserID:   1,
				MinPrice: ptr(decimal.RequireFromString("350")),
				MaxPrice: ptr(decimal.RequireFromString("200")),
			},
			setupMocks: func(*repoMocks.MockUserRepository, *repoMocks.MockFreightSearchRepository, *mockPublisher) {},
			wantErr:    ErrInvalidArgument,
		},
		{
			name: "unknown owner",
			in:   in,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, _ *repoMocks.MockFreightSearchRepository, _ *mockPublisher) {
				mUsers.On("Exists", ctx, int64(1)).Return(false, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "owner removed before insert",
			in:   in,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, mSearches *repoMocks.MockFreightSearchRepository, _ *mockPublisher) {
				mUsers.On("Exists", ctx, int64(1)).Return(true, nil)
				mSearches.On("Create", ctx, mock.Anything).Return(nil, repository.ErrForeignKey)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "storage unavailable on lookup",
			in:   in,
			setupMocks: func(mUsers *repoMocks.MockUserRepository, _ *repoMocks.MockFreightSearchRepository, _ *mockPublisher) {
				mUsers.On("Exists", ctx, int64(1)).Return(false, repository.ErrStorageUnavailable)
			},
			wantErr: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			mSearches := new(repoMocks.MockFreightSearchRepository)
			mPub := new(mockPublisher)
			tt.setupMocks(mUsers, mSearches, mPub)

			svc := NewFreightSearchService(mUsers, mSearches, mPub).(*freightSearchService)
			svc.now = func() time.Time { return now }

			got, err := svc.Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), got.ID)
				assert.Equal(t, now, got.CreatedAt)
			}
			mUsers.AssertExpectations(t)
			mSearches.AssertExpectations(t)
			mPub.AssertExpectations(t)
		})
	}
}

func TestFreightSearchService_List(t *testing.T) {
	ctx := context.Background()
	mSearches := new(repoMocks.MockFreightSearchRepository)
	mSearches.On("List", ctx, repository.PageQuery{Limit: 20, Offset: 40}).
		Return(&repository.PageResult[model.FreightSearch]{Items: []model.FreightSearch{{ID: 3}}, Total: 41}, nil)

	svc := NewFreightSearchService(nil, mSearches, nil)
	res, err := svc.List(ctx, 20, 40)

	assert.NoError(t, err)
	assert.Equal(t, 41, res.Total)
	assert.Equal(t, 40, res.Offset)
	assert.Len(t, res.Items, 1)
	mSearches.AssertExpectations(t)
}
