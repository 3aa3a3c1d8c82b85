// Package pricing computes booking totals. It is deliberately free of any
// storage or transport dependency so the calculation can be exercised in
// isolation.
package pricing

import (
	"math"
	"time"

	couponModel "inn/internal/domains/coupon/model"
)

type Service struct {
	ID    string
	Price float64
}

type Coupon struct {
	Type  string
	Value float64
}

// Draft carries the priced parts of an in-progress booking. UnitPrice is the
// nightly rate of the selected room type or the daily rate of the selected
// hall type.
type Draft struct {
	CheckIn   time.Time
	CheckOut  time.Time
	UnitPrice float64
	Services  []Service
	Coupon    *Coupon
}

// StayUnits returns the number of billable nights or days between check-in and
// check-out, rounding partial days up. A same-day or inverted range still
// bills one unit.
func StayUnits(checkIn, checkOut time.Time) int {
	units := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if units < 1 {
		units = 1
	}

	return units
}

// Total computes the booking total: unit price times stay units, plus every
// selected service, minus the coupon discount. The result never goes below
// zero.
func Total(draft Draft) float64 {
	total := draft.UnitPrice * float64(StayUnits(draft.CheckIn, draft.CheckOut))

	for _, svc := range draft.Services {
		total += svc.Price
	}

	if draft.Coupon != nil {
		switch draft.Coupon.Type {
		case couponModel.TypePercentage:
			total -= total * draft.Coupon.Value / 100
		case couponModel.TypeFixed:
			total -= draft.Coupon.Value
		}
	}

	if total < 0 {
		total = 0
	}

	return total
}
