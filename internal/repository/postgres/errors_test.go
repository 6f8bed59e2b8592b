package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/1vor/fulltruck-challenge/internal/repository"
)

func TestClassify(t *testing.T) {
	other := errors.New("syntax error")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "no rows", in: sql.ErrNoRows, want: repository.ErrNotFound},
		{name: "unique", in: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, want: repository.ErrConflict},
		{name: "foreign key", in: &pgconn.PgError{Code: "23503"}, want: repository.ErrForeignKey},
		{name: "check", in: &pgconn.PgError{Code: "23514"}, want: repository.ErrCheckViolation},
		{name: "numeric overflow", in: &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}, want: repository.ErrCheckViolation},
		{name: "invalid datetime", in: &pgconn.PgError{Code: "22008"}, want: repository.ErrCheckViolation},
		{name: "statement timeout", in: &pgconn.PgError{Code: "57014"}, want: repository.ErrStorageUnavailable},
		{name: "connection exception", in: &pgconn.PgError{Code: "08006"}, want: repository.ErrStorageUnavailable},
		{name: "bad conn", in: fmt.Errorf("exec: %w", driver.ErrBadConn), want: repository.ErrStorageUnavailable},
		{name: "conn done", in: sql.ErrConnDone, want: repository.ErrStorageUnavailable},
		{name: "deadline", in: context.DeadlineExceeded, want: repository.ErrStorageUnavailable},
		{name: "canceled", in: context.Canceled, want: context.Canceled},
		{name: "other pg error", in: &pgconn.PgError{Code: "42601"}},
		{name: "other", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			assert.Error(t, got)
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
			}
			if errors.Is(got, repository.ErrStorageUnavailable) {
				assert.ErrorIs(t, got, tt.in, "original error kept in chain")
			}
		})
	}

	assert.NoError(t, classify(nil))
}
