package postgres

import (
	"context"
	"database/sql"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
)

// FreightPostgres is a PostgreSQL implementation of repository.FreightRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FreightPostgres struct {
	db *sql.DB
}

// NewFreightPostgres creates a new FreightPostgres repository.
func NewFreightPostgres(db *sql.DB) *FreightPostgres {
	return &FreightPostgres{db: db}
}

var _ repository.FreightRepository = (*FreightPostgres)(nil)

// Create inserts a new freight row and returns the stored record.
func (r *FreightPostgres) Create(ctx context.Context, f model.Freight) (*model.Freight, error) {
	const q = `
		INSERT INTO freights (price, pickup_code, delivery_code, pickup_date, delivery_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + freightColumns
	row := r.db.QueryRowContext(ctx, q,
		f.Price,
		f.PickupCode,
		f.DeliveryCode,
		f.PickupDate,
		f.DeliveryDate,
	)
	out, err := scanFreight(row)
	if err != nil {
		return nil, classify(err)
	}
	return &out, nil
}

// FindByID fetches a single freight by its ID.
func (r *FreightPostgres) FindByID(ctx context.Context, id int64) (*model.Freight, error) {
	const q = `SELECT ` + freightColumns + ` FROM freights WHERE id = $1`
	f, err := scanFreight(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, classify(err)
	}
	return &f, nil
}

// List returns freights using LIMIT/OFFSET pagination and a total count.
func (r *FreightPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Freight], error) {
	const qCount = `SELECT COUNT(*) FROM freights`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, classify(err)
	}

	const qList = `SELECT ` + freightColumns + ` FROM freights ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]model.Freight, 0)
	for rows.Next() {
		f, err := scanFreight(rows)
		if err != nil {
			return nil, classify(err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return &repository.PageResult[model.Freight]{
		Items: items,
		Total: total,
	}, nil
}
