package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightSearch is a saved, possibly partial, set of freight criteria.
// A nil optional field places no constraint on that dimension.
// Rows are never mutated after insertion; CreatedAt is assigned by the store.
type FreightSearch struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	MinPrice         *decimal.Decimal `json:"min_price"`
	MaxPrice         *decimal.Decimal `json:"max_price"`
	PickupCode       *int64           `json:"pickup_code"`
	DeliveryCode     *int64           `json:"delivery_code"`
	PickupDateFrom   *Date            `json:"pickup_date_from"`
	PickupDateTo     *Date            `json:"pickup_date_to"`
	DeliveryDateFrom *Date            `json:"delivery_date_from"`
	DeliveryDateTo   *Date            `json:"delivery_date_to"`
	CreatedAt        time.Time        `json:"created_at"`
}

// FreightSearchInput carries the client-supplied criteria of a new search.
type FreightSearchInput struct {
	UserID           int64            `json:"user_id"`
	MinPrice         *decimal.Decimal `json:"min_price"`
	MaxPrice         *decimal.Decimal `json:"max_price"`
	PickupCode       *int64           `json:"pickup_code"`
	DeliveryCode     *int64           `json:"delivery_code"`
	PickupDateFrom   *Date            `json:"pickup_date_from"`
	PickupDateTo     *Date            `json:"pickup_date_to"`
	DeliveryDateFrom *Date            `json:"delivery_date_from"`
	DeliveryDateTo   *Date            `json:"delivery_date_to"`
}

// Validate checks the required owner and the cross-field ordering invariants.
func (in FreightSearchInput) Validate() []Violation {
	var out []Violation
	if in.UserID <= 0 {
		out = append(out, Violation{Field: "user_id", Msg: "user_id is required"})
	}
	out = append(out, checkPrice("min_price", in.MinPrice)...)
	out = append(out, checkPrice("max_price", in.MaxPrice)...)
	if in.MinPrice != nil && in.MaxPrice != nil && in.MaxPrice.LessThan(*in.MinPrice) {
		out = append(out, Violation{Field: "max_price", Msg: "max_price must be >= min_price"})
	}
	if in.PickupDateFrom != nil && in.PickupDateTo != nil && in.PickupDateTo.Before(*in.PickupDateFrom) {
		out = append(out, Violation{Field: "pickup_date_to", Msg: "pickup_date_to must be >= pickup_date_from"})
	}
	if in.DeliveryDateFrom != nil && in.DeliveryDateTo != nil && in.DeliveryDateTo.Before(*in.DeliveryDateFrom) {
		out = append(out, Violation{Field: "delivery_date_to", Msg: "delivery_date_to must be >= delivery_date_from"})
	}
	return out
}

// FreightSearch converts the input into a record without ID and CreatedAt.
func (in FreightSearchInput) FreightSearch() FreightSearch {
	return FreightSearch{
		UserID:           in.UserID,
		MinPrice:         in.MinPrice,
		MaxPrice:         in.MaxPrice,
		PickupCode:       in.PickupCode,
		DeliveryCode:     in.DeliveryCode,
		PickupDateFrom:   in.PickupDateFrom,
		PickupDateTo:     in.PickupDateTo,
		DeliveryDateFrom: in.DeliveryDateFrom,
		DeliveryDateTo:   in.DeliveryDateTo,
	}
}
