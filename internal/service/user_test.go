package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
	repoMocks "github.com/1vor/fulltruck-challenge/internal/repository/mocks"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         model.UserInput
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "happy path normalizes input",
			in:   model.UserInput{Name: " Ada ", Surname: "Lovelace", Email: " ADA@Example.com"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("Create", ctx, model.User{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"}).
					Return(&model.User{ID: 1, Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"}, nil)
			},
		},
		{
			name:       "validation error",
			in:         model.UserInput{Name: "Ada"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidArgument,
		},
		{
			name: "duplicate email",
			in:   model.UserInput{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)
			},
			wantErr: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)
			svc := NewUserService(mRepo)

			u, err := svc.Create(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), u.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
			},
		},
		{
			name:       "invalid id",
			id:         0,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidArgument,
		},
		{
			name: "not found",
			id:   2,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(2)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "generic repository error",
			id:   3,
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)
			svc := NewUserService(mRepo)

			u, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) || errors.Is(tt.wantErr, ErrInvalidArgument) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, u)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
