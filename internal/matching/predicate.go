// Package matching decides which saved freight searches a freight satisfies
// and pages through them in a stable (created_at, id) descending order.
package matching

import (
	"strings"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

// Alias is the table alias every rendered column is qualified with.
const Alias = "fs"

// bound is one optional criteria column compared against a freight value.
// A NULL column never constrains: it renders as (col IS NULL OR col <op> value).
type bound struct {
	column string
	op     string
}

// dimension groups the bounds that share one freight value.
type dimension struct {
	name   string
	bounds []bound
	value  func(f model.Freight) any
}

var dimensions = []dimension{
	{
		name:   "pickup_code",
		bounds: []bound{{column: "pickup_code", op: "="}},
		value:  func(f model.Freight) any { return f.PickupCode },
	},
	{
		name:   "delivery_code",
		bounds: []bound{{column: "delivery_code", op: "="}},
		value:  func(f model.Freight) any { return f.DeliveryCode },
	},
	{
		name:   "price",
		bounds: []bound{{column: "min_price", op: "<="}, {column: "max_price", op: ">="}},
		value:  func(f model.Freight) any { return f.Price },
	},
	{
		name:   "pickup_date",
		bounds: []bound{{column: "pickup_date_from", op: "<="}, {column: "pickup_date_to", op: ">="}},
		value:  func(f model.Freight) any { return f.PickupDate },
	},
	{
		name:   "delivery_date",
		bounds: []bound{{column: "delivery_date_from", op: "<="}, {column: "delivery_date_to", op: ">="}},
		value:  func(f model.Freight) any { return f.DeliveryDate },
	},
}

// Predicate is the match condition derived from one freight.
type Predicate struct {
	freight model.Freight
}

// ForFreight builds the predicate satisfied by every search that accepts f.
func ForFreight(f model.Freight) Predicate {
	return Predicate{freight: f}
}

// Freight returns the freight the predicate was built from.
func (p Predicate) Freight() model.Freight {
	return p.freight
}

// Where renders the predicate as a WHERE fragment over Alias, registering
// one parameter per freight value in args.
func (p Predicate) Where(args *Args) string {
	conds := make([]string, 0, 8)
	for _, d := range dimensions {
		ph := args.Add(d.value(p.freight))
		for _, b := range d.bounds {
			col := Alias + "." + b.column
			conds = append(conds, "("+col+" IS NULL OR "+col+" "+b.op+" "+ph+")")
		}
	}
	return strings.Join(conds, "\n\t  AND ")
}

// Matches evaluates the predicate in process. It agrees with Where.
func (p Predicate) Matches(s model.FreightSearch) bool {
	f := p.freight
	return routeMatches(s, f) && priceMatches(s, f) &&
		windowMatches(s.PickupDateFrom, s.PickupDateTo, f.PickupDate) &&
		windowMatches(s.DeliveryDateFrom, s.DeliveryDateTo, f.DeliveryDate)
}

func routeMatches(s model.FreightSearch, f model.Freight) bool {
	if s.PickupCode != nil && *s.PickupCode != f.PickupCode {
		return false
	}
	if s.DeliveryCode != nil && *s.DeliveryCode != f.DeliveryCode {
		return false
	}
	return true
}

func priceMatches(s model.FreightSearch, f model.Freight) bool {
	if s.MinPrice != nil && s.MinPrice.GreaterThan(f.Price) {
		return false
	}
	if s.MaxPrice != nil && s.MaxPrice.LessThan(f.Price) {
		return false
	}
	return true
}

func windowMatches(from, to *model.Date, day model.Date) bool {
	if from != nil && from.After(day) {
		return false
	}
	if to != nil && to.Before(day) {
		return false
	}
	return true
}
