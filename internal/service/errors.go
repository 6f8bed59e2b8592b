package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrFreightNotFound = fmt.Errorf("freight %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageUnavailable marks a transient persistence failure; callers may retry reads.
	ErrStorageUnavailable = repository.ErrStorageUnavailable

	ErrConflict       = errors.New("conflict")
	ErrExportDisabled = errors.New("export storage is not configured")
)

// ValidationError lists the constraints an input violated.
// errors.Is(err, ErrInvalidArgument) holds for every ValidationError.
type ValidationError struct {
	Violations []model.Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Msg)
	}
	return "invalid argument: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

func invalid(field, msg string) error {
	return &ValidationError{Violations: []model.Violation{{Field: field, Msg: msg}}}
}

func violations(vs []model.Violation) error {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs}
}

// translate maps repository and engine errors onto the service taxonomy.
// notFound replaces repository.ErrNotFound.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrForeignKey):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, repository.ErrCheckViolation):
		return invalid("", err.Error())
	case errors.Is(err, matching.ErrInvalidPageRequest):
		msg := strings.TrimPrefix(err.Error(), matching.ErrInvalidPageRequest.Error()+": ")
		field := "limit"
		if strings.HasPrefix(msg, "offset") {
			field = "offset"
		}
		return invalid(field, msg)
	}
	return err
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return invalid(field, field+" must be a positive integer")
	}
	return nil
}
