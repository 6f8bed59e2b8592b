package matching

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

func TestPredicate_UnconstrainedMatchesAnything(t *testing.T) {
	freights := []model.Freight{
		sampleFreight(),
		{Price: decimal.Zero, PickupCode: 0, DeliveryCode: 0, PickupDate: *day("1970-01-01"), DeliveryDate: *day("1970-01-01")},
		{Price: decimal.RequireFromString("999999.99"), PickupCode: 99999, DeliveryCode: 1, PickupDate: *day("2099-12-31"), DeliveryDate: *day("2100-01-01")},
	}
	for _, f := range freights {
		assert.True(t, ForFreight(f).Matches(model.FreightSearch{ID: 1, UserID: 1}), "freight %+v", f)
	}
}

func TestPredicate_RouteExactness(t *testing.T) {
	p := ForFreight(sampleFreight())

	wide := model.FreightSearch{
		UserID:   1,
		MinPrice: dec("0"), MaxPrice: dec("1000"),
		PickupDateFrom: day("2000-01-01"), PickupDateTo: day("2100-01-01"),
	}

	pickup := wide
	pickup.PickupCode = i64(99999)
	assert.False(t, p.Matches(pickup))

	delivery := wide
	delivery.DeliveryCode = i64(20101)
	assert.False(t, p.Matches(delivery))

	exact := wide
	exact.PickupCode = i64(10100)
	exact.DeliveryCode = i64(20100)
	assert.True(t, p.Matches(exact))
}

func TestPredicate_ZeroIsNotWildcard(t *testing.T) {
	f := sampleFreight()
	assert.False(t, ForFreight(f).Matches(model.FreightSearch{PickupCode: i64(0)}))
	assert.False(t, ForFreight(f).Matches(model.FreightSearch{MaxPrice: dec("0")}))
}

func TestPredicate_Bounds(t *testing.T) {
	p := ForFreight(sampleFreight())

	tests := []struct {
		name   string
		search model.FreightSearch
		want   bool
	}{
		{name: "min equals price", search: model.FreightSearch{MinPrice: dec("300")}, want: true},
		{name: "max equals price", search: model.FreightSearch{MaxPrice: dec("300.00")}, want: true},
		{name: "band around price", search: model.FreightSearch{MinPrice: dec("200"), MaxPrice: dec("350")}, want: true},
		{name: "min above price", search: model.FreightSearch{MinPrice: dec("300.01")}, want: false},
		{name: "max below price", search: model.FreightSearch{MaxPrice: dec("299.99")}, want: false},
		{name: "pickup window inclusive", search: model.FreightSearch{PickupDateFrom: day("2022-01-01"), PickupDateTo: day("2022-01-01")}, want: true},
		{name: "pickup window after", search: model.FreightSearch{PickupDateFrom: day("2022-01-02")}, want: false},
		{name: "pickup window before", search: model.FreightSearch{PickupDateTo: day("2021-12-31")}, want: false},
		{name: "delivery window inclusive", search: model.FreightSearch{DeliveryDateFrom: day("2022-01-02"), DeliveryDateTo: day("2022-01-02")}, want: true},
		{name: "delivery window open start", search: model.FreightSearch{DeliveryDateTo: day("2022-02-01")}, want: true},
		{name: "delivery window after", search: model.FreightSearch{DeliveryDateFrom: day("2022-01-03")}, want: false},
		{name: "one failing dimension", search: model.FreightSearch{PickupCode: i64(10100), DeliveryCode: i64(20100), MinPrice: dec("301")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Matches(tt.search))
		})
	}
}

func TestPredicate_Where(t *testing.T) {
	var args Args
	where := ForFreight(sampleFreight()).Where(&args)

	for _, frag := range []string{
		"(fs.pickup_code IS NULL OR fs.pickup_code = $1)",
		"(fs.delivery_code IS NULL OR fs.delivery_code = $2)",
		"(fs.min_price IS NULL OR fs.min_price <= $3)",
		"(fs.max_price IS NULL OR fs.max_price >= $3)",
		"(fs.pickup_date_from IS NULL OR fs.pickup_date_from <= $4)",
		"(fs.pickup_date_to IS NULL OR fs.pickup_date_to >= $4)",
		"(fs.delivery_date_from IS NULL OR fs.delivery_date_from <= $5)",
		"(fs.delivery_date_to IS NULL OR fs.delivery_date_to >= $5)",
	} {
		assert.Contains(t, where, frag)
	}

	vals := args.Values()
	assert.Len(t, vals, 5)
	assert.Equal(t, int64(10100), vals[0])
	assert.Equal(t, int64(20100), vals[1])
	assert.Equal(t, *day("2022-01-02"), vals[4])
}
