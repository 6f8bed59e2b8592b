package model

import "github.com/shopspring/decimal"

// PriceCeiling is the largest amount a NUMERIC(12, 2) price column holds.
var PriceCeiling = decimal.RequireFromString("9999999999.99")

// checkPrice reports a negative or out-of-range amount; nil is not checked.
func checkPrice(field string, p *decimal.Decimal) []Violation {
	switch {
	case p == nil:
		return nil
	case p.IsNegative():
		return []Violation{{Field: field, Msg: field + " must be >= 0"}}
	case p.GreaterThan(PriceCeiling):
		return []Violation{{Field: field, Msg: field + " must be <= " + PriceCeiling.StringFixed(2)}}
	}
	return nil
}

// Freight is a shipment listing. It is immutable once created.
type Freight struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	PickupCode   int64           `json:"pickup_code"`
	DeliveryCode int64           `json:"delivery_code"`
	PickupDate   Date            `json:"pickup_date"`
	DeliveryDate Date            `json:"delivery_date"`
}

// FreightInput carries the client-supplied fields of a new freight.
// Pointers distinguish missing fields from zero values.
type FreightInput struct {
	Price        *decimal.Decimal `json:"price"`
	PickupCode   *int64           `json:"pickup_code"`
	DeliveryCode *int64           `json:"delivery_code"`
	PickupDate   *Date            `json:"pickup_date"`
	DeliveryDate *Date            `json:"delivery_date"`
}

// Validate returns the violated constraints, if any.
func (in FreightInput) Validate() []Violation {
	var out []Violation
	if in.Price == nil {
		out = append(out, Violation{Field: "price", Msg: "price is required"})
	}
	out = append(out, checkPrice("price", in.Price)...)
	if in.PickupCode == nil {
		out = append(out, Violation{Field: "pickup_code", Msg: "pickup_code is required"})
	}
	if in.DeliveryCode == nil {
		out = append(out, Violation{Field: "delivery_code", Msg: "delivery_code is required"})
	}
	if in.PickupDate == nil {
		out = append(out, Violation{Field: "pickup_date", Msg: "pickup_date is required"})
	}
	if in.DeliveryDate == nil {
		out = append(out, Violation{Field: "delivery_date", Msg: "delivery_date is required"})
	}
	return out
}

// Freight converts a validated input into a Freight without an ID.
func (in FreightInput) Freight() Freight {
	return Freight{
		Price:        *in.Price,
		PickupCode:   *in.PickupCode,
		DeliveryCode: *in.DeliveryCode,
		PickupDate:   *in.PickupDate,
		DeliveryDate: *in.DeliveryDate,
	}
}
