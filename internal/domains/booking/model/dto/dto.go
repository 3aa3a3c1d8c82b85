package dto

import (
	"time"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

// RoomSelection and HallSelection discriminate the unit choice by booking
// type. Exactly one of the two is set on a valid request.
type RoomSelection struct {
	RoomTypeID string `json:"room_type_id"`
	RoomID     string `json:"room_id"`
}

type HallSelection struct {
	HallTypeID string `json:"hall_type_id"`
	HallID     string `json:"hall_id"`
}

type CreateBookingRequest struct {
	GuestID          string         `json:"guest_id"`
	AdditionalGuests []string       `json:"additional_guest_ids"`
	BookingType      string         `json:"booking_type" validate:"required,oneof=room hall"`
	Adults           int            `json:"adults"       validate:"omitempty,gte=0"`
	Kids             int            `json:"kids"         validate:"omitempty,gte=0"`
	CheckIn          time.Time      `json:"check_in"`
	CheckOut         time.Time      `json:"check_out"`
	Room             *RoomSelection `json:"room"`
	Hall             *HallSelection `json:"hall"`
	ServiceIDs       []string       `json:"service_ids"`
	CouponID         *string        `json:"coupon_id"`
	PaidAmount       float64        `json:"paid_amount"  validate:"omitempty,gte=0"`
}

// PaymentStatusFor derives the payment status from the amount already paid
// against the computed total.
func PaymentStatusFor(paid, total float64) string {
	switch {
	case paid <= 0:
		return model.PaymentStatusPending
	case paid < total:
		return model.PaymentStatusPartial
	default:
		return model.PaymentStatusPaid
	}
}

func (c *CreateBookingRequest) ToModel(accountID, user string, total float64) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		GuestID:       c.GuestID,
		BookingType:   c.BookingType,
		Adults:        c.Adults,
		Kids:          c.Kids,
		CheckIn:       c.CheckIn,
		CheckOut:      c.CheckOut,
		CouponID:      c.CouponID,
		TotalAmount:   total,
		PaidAmount:    c.PaidAmount,
		PaymentStatus: PaymentStatusFor(c.PaidAmount, total),
		BookingStatus: model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	PaidAmount float64 `json:"paid_amount" validate:"required,gte=0"`
}

type BookingGuestResponse struct {
	GuestID     string `json:"guest_id"`
	IsHeadGuest bool   `json:"is_head_guest"`
}

type BookedRoomResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func (r *BookedRoomResponse) FromModel(model model.BookedRoom) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.Status = model.Status
}

type BookedHallResponse struct {
	ID       string `json:"id"`
	HallID   string `json:"hall_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func (r *BookedHallResponse) FromModel(model model.BookedHall) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.Status = model.Status
}

type BookingServiceResponse struct {
	PaidServiceID string  `json:"paid_service_id"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}

type BookingResponse struct {
	ID            string                   `json:"id"`
	GuestID       string                   `json:"guest_id"`
	GuestFullName string                   `json:"guest_full_name"`
	GuestPhone    string                   `json:"guest_phone"`
	BookingType   string                   `json:"booking_type"`
	Adults        int                      `json:"adults"`
	Kids          int                      `json:"kids"`
	CheckIn       string                   `json:"check_in"`
	CheckOut      string                   `json:"check_out"`
	CouponID      *string                  `json:"coupon_id,omitempty"`
	CouponCode    *string                  `json:"coupon_code,omitempty"`
	TotalAmount   float64                  `json:"total_amount"`
	PaidAmount    float64                  `json:"paid_amount"`
	PaymentStatus string                   `json:"payment_status"`
	BookingStatus string                   `json:"booking_status"`
	Guests        []BookingGuestResponse   `json:"guests,omitempty"`
	BookedRoom    *BookedRoomResponse      `json:"booked_room,omitempty"`
	BookedHall    *BookedHallResponse      `json:"booked_hall,omitempty"`
	Services      []BookingServiceResponse `json:"services,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.BookingDetail) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestFullName = model.GuestFullName
	r.GuestPhone = model.GuestPhone
	r.BookingType = model.BookingType
	r.Adults = model.Adults
	r.Kids = model.Kids
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.CouponID = model.CouponID
	r.CouponCode = model.CouponCode
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.PaymentStatus = model.PaymentStatus
	r.BookingStatus = model.BookingStatus
	r.Metadata.FromModel(model.Metadata)
}

// FromAggregateRows attaches the join rows fetched after a successful create.
func (r *BookingResponse) FromAggregateRows(guests []model.BookingGuest, room *model.BookedRoom, hall *model.BookedHall, services []model.BookingService) {
	r.Guests = make([]BookingGuestResponse, len(guests))
	for i, g := range guests {
		r.Guests[i] = BookingGuestResponse{GuestID: g.GuestID, IsHeadGuest: g.IsHeadGuest}
	}

	if room != nil {
		r.BookedRoom = &BookedRoomResponse{}
		r.BookedRoom.FromModel(*room)
	}

	if hall != nil {
		r.BookedHall = &BookedHallResponse{}
		r.BookedHall.FromModel(*hall)
	}

	r.Services = make([]BookingServiceResponse, len(services))
	for i, svc := range services {
		r.Services[i] = BookingServiceResponse{
			PaidServiceID: svc.PaidServiceID,
			Quantity:      svc.Quantity,
			TotalPrice:    svc.TotalPrice,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
