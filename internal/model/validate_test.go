package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(s string) *Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func i64(v int64) *int64 { return &v }

func fields(vs []Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestFreightSearchInput_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   FreightSearchInput
		want []string
	}{
		{name: "only owner", in: FreightSearchInput{UserID: 1}, want: []string{}},
		{name: "missing owner", in: FreightSearchInput{}, want: []string{"user_id"}},
		{
			name: "equal price bounds are allowed",
			in:   FreightSearchInput{UserID: 1, MinPrice: dec("300"), MaxPrice: dec("300.00")},
			want: []string{},
		},
		{
			name: "inverted price band",
			in:   FreightSearchInput{UserID: 1, MinPrice: dec("350"), MaxPrice: dec("200")},
			want: []string{"max_price"},
		},
		{
			name: "negative min price",
			in:   FreightSearchInput{UserID: 1, MinPrice: dec("-1")},
			want: []string{"min_price"},
		},
		{
			name: "prices at the column ceiling",
			in:   FreightSearchInput{UserID: 1, MinPrice: dec("9999999999.99"), MaxPrice: dec("9999999999.99")},
			want: []string{},
		},
		{
			name: "min price above the column ceiling",
			in:   FreightSearchInput{UserID: 1, MinPrice: dec("12345678901234.56")},
			want: []string{"min_price"},
		},
		{
			name: "max price above the column ceiling",
			in:   FreightSearchInput{UserID: 1, MaxPrice: dec("10000000000")},
			want: []string{"max_price"},
		},
		{
			name: "inverted pickup window",
			in:   FreightSearchInput{UserID: 1, PickupDateFrom: date("2022-01-05"), PickupDateTo: date("2022-01-04")},
			want: []string{"pickup_date_to"},
		},
		{
			name: "inverted delivery window",
			in:   FreightSearchInput{UserID: 1, DeliveryDateFrom: date("2022-01-05"), DeliveryDateTo: date("2022-01-01")},
			want: []string{"delivery_date_to"},
		},
		{
			name: "open-ended windows",
			in:   FreightSearchInput{UserID: 1, PickupDateTo: date("2022-01-04"), DeliveryDateFrom: date("2022-01-05")},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(tt.in.Validate()))
		})
	}
}

func TestFreightInput_Validate(t *testing.T) {
	full := FreightInput{
		Price:        dec("300"),
		PickupCode:   i64(10100),
		DeliveryCode: i64(20100),
		PickupDate:   date("2022-01-01"),
		DeliveryDate: date("2022-01-02"),
	}
	assert.Empty(t, full.Validate())

	f := full.Freight()
	assert.Equal(t, int64(10100), f.PickupCode)
	assert.True(t, f.Price.Equal(decimal.NewFromInt(300)))

	assert.Equal(t,
		[]string{"price", "pickup_code", "delivery_code", "pickup_date", "delivery_date"},
		fields(FreightInput{}.Validate()))

	neg := full
	neg.Price = dec("-0.01")
	assert.Equal(t, []string{"price"}, fields(neg.Validate()))

	huge := full
	huge.Price = dec("10000000000.00")
	vs := huge.Validate()
	assert.Equal(t, []string{"price"}, fields(vs))
	assert.Equal(t, "price must be <= 9999999999.99", vs[0].Msg)
}

func TestUserInput_Validate(t *testing.T) {
	in := UserInput{Name: " Alice ", Surname: "Rossi", Email: " Alice.Rossi@Example.com "}
	in.Normalize()
	assert.Equal(t, "Alice", in.Name)
	assert.Equal(t, "alice.rossi@example.com", in.Email)
	assert.Empty(t, in.Validate())

	assert.Equal(t, []string{"name", "surname", "email"}, fields(UserInput{}.Validate()))
	assert.Equal(t, []string{"email"}, fields(UserInput{Name: "a", Surname: "b", Email: "nope"}.Validate()))
}
