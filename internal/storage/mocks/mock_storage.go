package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/1vor/fulltruck-challenge/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

// Put drains r so producers writing into a pipe are not blocked.
func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, key, body, opt)
	if f, ok := args.Get(0).(func(string, []byte) storage.ObjectInfo); ok {
		return f(key, body), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
