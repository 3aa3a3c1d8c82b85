package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/pricing"
	couponModel "inn/internal/domains/coupon/model"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestStayUnits(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "partial second day rounds up",
			checkIn:  date("2024-06-01T14:00:00Z"),
			checkOut: date("2024-06-03T11:00:00Z"),
			want:     2,
		},
		{
			name:     "exactly one day",
			checkIn:  date("2024-06-01T12:00:00Z"),
			checkOut: date("2024-06-02T12:00:00Z"),
			want:     1,
		},
		{
			name:     "same moment bills one unit",
			checkIn:  date("2024-06-01T10:00:00Z"),
			checkOut: date("2024-06-01T10:00:00Z"),
			want:     1,
		},
		{
			name:     "inverted range bills one unit",
			checkIn:  date("2024-06-03T10:00:00Z"),
			checkOut: date("2024-06-01T10:00:00Z"),
			want:     1,
		},
		{
			name:     "one week",
			checkIn:  date("2024-06-01T14:00:00Z"),
			checkOut: date("2024-06-08T11:00:00Z"),
			want:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.StayUnits(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotal(t *testing.T) {
	checkIn := date("2024-06-01T14:00:00Z")
	checkOut := date("2024-06-03T11:00:00Z")

	tests := []struct {
		name  string
		draft pricing.Draft
		want  float64
	}{
		{
			name: "two nights no extras",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
			},
			want: 200,
		},
		{
			name: "services are additive",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
				Services: []pricing.Service{
					{ID: "breakfast", Price: 15},
					{ID: "laundry", Price: 10},
				},
			},
			want: 225,
		},
		{
			name: "percentage coupon discounts the running total",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
				Services: []pricing.Service{
					{ID: "breakfast", Price: 15},
					{ID: "laundry", Price: 10},
				},
				Coupon: &pricing.Coupon{Type: couponModel.TypePercentage, Value: 10},
			},
			want: 202.50,
		},
		{
			name: "fixed coupon larger than total clamps at zero",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
				Services: []pricing.Service{
					{ID: "breakfast", Price: 15},
					{ID: "laundry", Price: 10},
				},
				Coupon: &pricing.Coupon{Type: couponModel.TypeFixed, Value: 500},
			},
			want: 0,
		},
		{
			name: "fixed coupon smaller than total",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
				Coupon:    &pricing.Coupon{Type: couponModel.TypeFixed, Value: 50},
			},
			want: 150,
		},
		{
			name: "same day hall rental bills one day",
			draft: pricing.Draft{
				CheckIn:   date("2024-06-01T09:00:00Z"),
				CheckOut:  date("2024-06-01T17:00:00Z"),
				UnitPrice: 300,
			},
			want: 300,
		},
		{
			name: "unknown coupon type leaves the total untouched",
			draft: pricing.Draft{
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				UnitPrice: 100,
				Coupon:    &pricing.Coupon{Type: "loyalty", Value: 50},
			},
			want: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.Total(tt.draft), 0.0001)
		})
	}
}

func TestTotalNeverNegative(t *testing.T) {
	draft := pricing.Draft{
		CheckIn:   date("2024-06-01T14:00:00Z"),
		CheckOut:  date("2024-06-02T11:00:00Z"),
		UnitPrice: 40,
		Coupon:    &pricing.Coupon{Type: couponModel.TypePercentage, Value: 250},
	}

	assert.GreaterOrEqual(t, pricing.Total(draft), 0.0)
}
