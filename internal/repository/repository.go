// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import "errors"

// Errors returned by implementations. Driver errors are classified into these
// so callers never inspect driver types.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrForeignKey         = errors.New("referenced record does not exist")
	ErrCheckViolation     = errors.New("check constraint violated")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
