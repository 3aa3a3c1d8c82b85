package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldAccountID     = "account_id"
	FieldGuestID       = "guest_id"
	FieldBookingType   = "booking_type"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldCouponID      = "coupon_id"
	FieldTotalAmount   = "total_amount"
	FieldPaidAmount    = "paid_amount"
	FieldPaymentStatus = "payment_status"
	FieldBookingStatus = "booking_status"
)

const (
	GuestTableName  = "booking_guests"
	GuestEntityName = "booking_guest"

	GuestFieldID        = "id"
	GuestFieldBookingID = "booking_id"
)

const (
	BookedRoomTableName  = "booked_rooms"
	BookedRoomEntityName = "booked_room"

	BookedRoomFieldID        = "id"
	BookedRoomFieldBookingID = "booking_id"
	BookedRoomFieldStatus    = "status"
)

const (
	BookedHallTableName  = "booked_halls"
	BookedHallEntityName = "booked_hall"

	BookedHallFieldID        = "id"
	BookedHallFieldBookingID = "booking_id"
	BookedHallFieldStatus    = "status"
)

const (
	ServiceTableName  = "booking_services"
	ServiceEntityName = "booking_service"

	ServiceFieldID        = "id"
	ServiceFieldBookingID = "booking_id"
)

const (
	TypeRoom = "room"
	TypeHall = "hall"

	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	UnitStatusBooked    = "booked"
	UnitStatusCancelled = "cancelled"
)

type Booking struct {
	ID            string    `db:"id"`
	AccountID     string    `db:"account_id"`
	GuestID       string    `db:"guest_id"`
	BookingType   string    `db:"booking_type"`
	Adults        int       `db:"adults"`
	Kids          int       `db:"kids"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	CouponID      *string   `db:"coupon_id"`
	TotalAmount   float64   `db:"total_amount"`
	PaidAmount    float64   `db:"paid_amount"`
	PaymentStatus string    `db:"payment_status"`
	BookingStatus string    `db:"booking_status"`
	model.Metadata
}

// BookingGuest links a guest to a booking. Exactly one row per booking carries
// IsHeadGuest.
type BookingGuest struct {
	ID          string `db:"id"`
	BookingID   string `db:"booking_id"`
	GuestID     string `db:"guest_id"`
	IsHeadGuest bool   `db:"is_head_guest"`
	model.Metadata
}

type BookedRoom struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	RoomID    string    `db:"room_id"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	Status    string    `db:"status"`
	model.Metadata
}

type BookedHall struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	HallID    string    `db:"hall_id"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	Status    string    `db:"status"`
	model.Metadata
}

// BookingService snapshots the service price at booking time so later catalog
// edits do not change historical totals.
type BookingService struct {
	ID            string  `db:"id"`
	BookingID     string  `db:"booking_id"`
	PaidServiceID string  `db:"paid_service_id"`
	Quantity      int     `db:"quantity"`
	TotalPrice    float64 `db:"total_price"`
	model.Metadata
}

// BookingDetail is the read model for listings and the post-create re-fetch,
// joined with the head guest and the optional coupon.
type BookingDetail struct {
	Booking
	GuestFullName string   `db:"guest_full_name" table:"guests"  column:"full_name"`
	GuestPhone    string   `db:"guest_phone"     table:"guests"  column:"phone"`
	CouponCode    *string  `db:"coupon_code"     table:"coupons" column:"coupon_code"`
	CouponType    *string  `db:"coupon_type"     table:"coupons" column:"coupon_type"`
	CouponValue   *float64 `db:"coupon_value"    table:"coupons" column:"coupon_value"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id " +
		"LEFT JOIN coupons ON coupons.id = bookings.coupon_id"
}

// Aggregate bundles every row written for one booking so the repository can
// persist them inside a single transaction.
type Aggregate struct {
	Booking    Booking
	Guests     []BookingGuest
	BookedRoom *BookedRoom
	BookedHall *BookedHall
	Services   []BookingService
}
