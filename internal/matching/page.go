package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

// ErrInvalidPageRequest is returned for a limit outside [1, max] or a negative offset.
var ErrInvalidPageRequest = errors.New("invalid page request")

// Store runs a Query against the criteria table.
type Store interface {
	FindMatching(ctx context.Context, q Query) ([]model.FreightSearch, error)
}

// PageRequest carries the caller's paging parameters. When Before is set the
// keyset path is used and Offset is ignored. Offset paging is kept for older
// clients only: rows shift under concurrent inserts and cost grows with depth.
type PageRequest struct {
	Limit  int
	Offset int
	Before *Cursor
}

// Page is one bounded slice of matches in (created_at, id) descending order.
type Page struct {
	Items   []model.FreightSearch
	HasMore bool
	Next    *Cursor
}

// Engine applies a Predicate with keyset pagination.
type Engine struct {
	store    Store
	maxLimit int
}

// NewEngine returns an engine that rejects limits above maxLimit.
func NewEngine(store Store, maxLimit int) *Engine {
	if maxLimit < 1 {
		maxLimit = 1
	}
	return &Engine{store: store, maxLimit: maxLimit}
}

// MaxLimit is the largest accepted page size.
func (e *Engine) MaxLimit() int { return e.maxLimit }

// Page fetches one page. A page holding exactly Limit rows is full and carries
// the cursor of its last row; a short page has no cursor.
func (e *Engine) Page(ctx context.Context, pred Predicate, req PageRequest) (*Page, error) {
	if req.Limit < 1 || req.Limit > e.maxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPageRequest, e.maxLimit)
	}
	if req.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidPageRequest)
	}

	q := Query{Predicate: pred, Before: req.Before, Limit: req.Limit}
	if req.Before == nil {
		q.Offset = req.Offset
	}

	rows, err := e.store.FindMatching(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.FreightSearch{}
	}

	p := &Page{Items: rows}
	if len(rows) == req.Limit {
		last := rows[len(rows)-1]
		p.HasMore = true
		p.Next = CursorOf(last.CreatedAt, last.ID)
	}
	return p, nil
}

// Each walks every matching row from the newest, pageSize rows at a time,
// following the keyset cursor. It returns the number of rows passed to fn.
func (e *Engine) Each(ctx context.Context, pred Predicate, pageSize int, fn func([]model.FreightSearch) error) (int, error) {
	if pageSize > e.maxLimit {
		pageSize = e.maxLimit
	}
	var (
		total  int
		before *Cursor
	)
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		p, err := e.Page(ctx, pred, PageRequest{Limit: pageSize, Before: before})
		if err != nil {
			return total, err
		}
		if len(p.Items) > 0 {
			if err := fn(p.Items); err != nil {
				return total, err
			}
			total += len(p.Items)
		}
		if !p.HasMore {
			return total, nil
		}
		before = p.Next
	}
}
