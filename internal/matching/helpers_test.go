package matching

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) *model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func i64(v int64) *int64 { return &v }

func sampleFreight() model.Freight {
	return model.Freight{
		ID:           7,
		Price:        decimal.RequireFromString("300"),
		PickupCode:   10100,
		DeliveryCode: 20100,
		PickupDate:   *day("2022-01-01"),
		DeliveryDate: *day("2022-01-02"),
	}
}

// memStore evaluates queries in process with the same semantics as the SQL rendering.
type memStore struct {
	mu     sync.Mutex
	rows   []model.FreightSearch
	nextID int64
	calls  []Query
}

func (m *memStore) insert(s model.FreightSearch, at time.Time) model.FreightSearch {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = at
	m.rows = append(m.rows, s)
	return s
}

func (m *memStore) FindMatching(_ context.Context, q Query) ([]model.FreightSearch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, q)

	var out []model.FreightSearch
	for _, s := range m.rows {
		if !q.Predicate.Matches(s) {
			continue
		}
		if q.Before != nil && !q.Before.Admits(s.CreatedAt, s.ID) {
			continue
		}
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b model.FreightSearch) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if q.Before == nil && q.Offset > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		out = out[q.Offset:]
	}
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

type failingStore struct{ err error }

func (f failingStore) FindMatching(context.Context, Query) ([]model.FreightSearch, error) {
	return nil, f.err
}
