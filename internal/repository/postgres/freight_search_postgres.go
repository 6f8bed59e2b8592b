package postgres

import (
	"context"
	"database/sql"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// FreightSearchPostgres is a PostgreSQL implementation of repository.FreightSearchRepository.
type FreightSearchPostgres struct {
	db *sql.DB
}

// NewFreightSearchPostgres creates a new FreightSearchPostgres repository.
func NewFreightSearchPostgres(db *sql.DB) *FreightSearchPostgres {
	return &FreightSearchPostgres{db: db}
}

var _ repository.FreightSearchRepository = (*FreightSearchPostgres)(nil)

const selectFreightSearches = `SELECT ` + freightSearchColumns + `
	FROM freight_searches ` + matching.Alias

// Create inserts a search; created_at comes from the column default.
func (r *FreightSearchPostgres) Create(ctx context.Context, s model.FreightSearch) (*model.FreightSearch, error) {
	const q = `
		INSERT INTO freight_searches AS fs (
			user_id, min_price, max_price, pickup_code, delivery_code,
			pickup_date_from, pickup_date_to, delivery_date_from, delivery_date_to
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + freightSearchColumns
	row := r.db.QueryRowContext(ctx, q,
		s.UserID,
		s.MinPrice,
		s.MaxPrice,
		s.PickupCode,
		s.DeliveryCode,
		s.PickupDateFrom,
		s.PickupDateTo,
		s.DeliveryDateFrom,
		s.DeliveryDateTo,
	)
	out, err := scanFreightSearch(row)
	if err != nil {
		return nil, classify(err)
	}
	return &out, nil
}

// List returns searches using LIMIT/OFFSET pagination and a total count.
func (r *FreightSearchPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FreightSearch], error) {
	const qCount = `SELECT COUNT(*) FROM freight_searches`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, classify(err)
	}

	const qList = selectFreightSearches + `
	ORDER BY fs.created_at DESC, fs.id DESC
	LIMIT $1 OFFSET $2`
	items, err := r.query(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.FreightSearch]{
		Items: items,
		Total: total,
	}, nil
}

// FindMatching runs one page of a matching query.
func (r *FreightSearchPostgres) FindMatching(ctx context.Context, q matching.Query) ([]model.FreightSearch, error) {
	stmt, args := q.Build(selectFreightSearches)
	return r.query(ctx, stmt, args...)
}

func (r *FreightSearchPostgres) query(ctx context.Context, stmt string, args ...any) ([]model.FreightSearch, error) {
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]model.FreightSearch, 0)
	for rows.Next() {
		s, err := scanFreightSearch(rows)
		if err != nil {
			return nil, classify(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return items, nil
}
