package postgres

import "github.com/1vor/fulltruck-challenge/internal/model"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const freightSearchColumns = `fs.id, fs.user_id, fs.min_price, fs.max_price, fs.pickup_code, fs.delivery_code,
		fs.pickup_date_from, fs.pickup_date_to, fs.delivery_date_from, fs.delivery_date_to, fs.created_at`

// Optional columns scan through pointer fields: NULL leaves them nil.
func scanFreightSearch(rs rowScanner) (model.FreightSearch, error) {
	var s model.FreightSearch
	err := rs.Scan(
		&s.ID,
		&s.UserID,
		&s.MinPrice,
		&s.MaxPrice,
		&s.PickupCode,
		&s.DeliveryCode,
		&s.PickupDateFrom,
		&s.PickupDateTo,
		&s.DeliveryDateFrom,
		&s.DeliveryDateTo,
		&s.CreatedAt,
	)
	return s, err
}

const freightColumns = `id, price, pickup_code, delivery_code, pickup_date, delivery_date`

func scanFreight(rs rowScanner) (model.Freight, error) {
	var f model.Freight
	err := rs.Scan(
		&f.ID,
		&f.Price,
		&f.PickupCode,
		&f.DeliveryCode,
		&f.PickupDate,
		&f.DeliveryDate,
	)
	return f, err
}
