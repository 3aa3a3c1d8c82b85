package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		paid  float64
		total float64
		want  string
	}{
		{name: "nothing paid", paid: 0, total: 200, want: model.PaymentStatusPending},
		{name: "partially paid", paid: 50, total: 200, want: model.PaymentStatusPartial},
		{name: "fully paid", paid: 200, total: 200, want: model.PaymentStatusPaid},
		{name: "overpaid", paid: 250, total: 200, want: model.PaymentStatusPaid},
		{name: "free booking counts as paid", paid: 0, total: 0, want: model.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.PaymentStatusFor(tt.paid, tt.total))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	checkIn, _ := time.Parse(time.RFC3339, "2024-06-01T14:00:00Z")
	checkOut, _ := time.Parse(time.RFC3339, "2024-06-03T11:00:00Z")
	couponID := "coupon-1"

	req := dto.CreateBookingRequest{
		GuestID:     "guest-1",
		BookingType: model.TypeRoom,
		Adults:      2,
		Kids:        1,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Room:        &dto.RoomSelection{RoomTypeID: "rt-1", RoomID: "room-1"},
		CouponID:    &couponID,
		PaidAmount:  100,
	}

	booking := req.ToModel("account-1", "operator@example.com", 202.50)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "account-1", booking.AccountID)
	assert.Equal(t, "guest-1", booking.GuestID)
	assert.Equal(t, model.TypeRoom, booking.BookingType)
	assert.Equal(t, 202.50, booking.TotalAmount)
	assert.Equal(t, 100.0, booking.PaidAmount)
	assert.Equal(t, model.PaymentStatusPartial, booking.PaymentStatus)
	assert.Equal(t, model.StatusPending, booking.BookingStatus)
	assert.Equal(t, &couponID, booking.CouponID)
	assert.Equal(t, "operator@example.com", booking.CreatedBy)
}
