package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/booking/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gRepo "inn/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, agg model.Aggregate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingDetail, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetGuests(ctx context.Context, bookingID string) ([]model.BookingGuest, error)
	GetBookedRooms(ctx context.Context, bookingID string) ([]model.BookedRoom, error)
	GetBookedHalls(ctx context.Context, bookingID string) ([]model.BookedHall, error)
	GetServices(ctx context.Context, bookingID string) ([]model.BookingService, error)
	UpdateBookedRooms(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateBookedHalls(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type bookingImpl struct {
	gRepo.Repository[model.BookingDetail]
	writeRepo      gRepo.Repository[model.Booking]
	guestRepo      gRepo.Repository[model.BookingGuest]
	bookedRoomRepo gRepo.Repository[model.BookedRoom]
	bookedHallRepo gRepo.Repository[model.BookedHall]
	serviceRepo    gRepo.Repository[model.BookingService]
	db             *postgres.Connection
	otel           otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository:     gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		writeRepo:      gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		guestRepo:      gRepo.NewRepository[model.BookingGuest](model.GuestEntityName, model.GuestTableName, model.GuestFieldID, db, otel),
		bookedRoomRepo: gRepo.NewRepository[model.BookedRoom](model.BookedRoomEntityName, model.BookedRoomTableName, model.BookedRoomFieldID, db, otel),
		bookedHallRepo: gRepo.NewRepository[model.BookedHall](model.BookedHallEntityName, model.BookedHallTableName, model.BookedHallFieldID, db, otel),
		serviceRepo:    gRepo.NewRepository[model.BookingService](model.ServiceEntityName, model.ServiceTableName, model.ServiceFieldID, db, otel),
		db:             db,
		otel:           otel,
	}
}

// Create persists the booking and all its join rows in one transaction so a
// failing step never leaves an orphaned booking behind.
func (r *bookingImpl) Create(ctx context.Context, agg model.Aggregate) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = r.writeRepo.InsertTx(ctx, tx, agg.Booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = r.guestRepo.InsertBulkTx(ctx, tx, agg.Guests); err != nil {
		return fmt.Errorf("failed to insert booking guests: %w", err)
	}

	if agg.BookedRoom != nil {
		if err = r.bookedRoomRepo.InsertTx(ctx, tx, *agg.BookedRoom); err != nil {
			return fmt.Errorf("failed to insert booked room: %w", err)
		}
	}

	if agg.BookedHall != nil {
		if err = r.bookedHallRepo.InsertTx(ctx, tx, *agg.BookedHall); err != nil {
			return fmt.Errorf("failed to insert booked hall: %w", err)
		}
	}

	if len(agg.Services) > 0 {
		if err = r.serviceRepo.InsertBulkTx(ctx, tx, agg.Services); err != nil {
			return fmt.Errorf("failed to insert booking services: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingImpl) joinRowParams() gDto.QueryParams {
	return gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.BookingJoinRowLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}
}

func byBooking(bookingID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.GuestFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    table,
			},
		},
	}
}

func (r *bookingImpl) GetGuests(ctx context.Context, bookingID string) ([]model.BookingGuest, error) {
	return r.guestRepo.GetAll(ctx, r.joinRowParams(), byBooking(bookingID, model.GuestTableName)) //nolint:wrapcheck
}

func (r *bookingImpl) GetBookedRooms(ctx context.Context, bookingID string) ([]model.BookedRoom, error) {
	return r.bookedRoomRepo.GetAll(ctx, r.joinRowParams(), byBooking(bookingID, model.BookedRoomTableName)) //nolint:wrapcheck
}

func (r *bookingImpl) GetBookedHalls(ctx context.Context, bookingID string) ([]model.BookedHall, error) {
	return r.bookedHallRepo.GetAll(ctx, r.joinRowParams(), byBooking(bookingID, model.BookedHallTableName)) //nolint:wrapcheck
}

func (r *bookingImpl) GetServices(ctx context.Context, bookingID string) ([]model.BookingService, error) {
	return r.serviceRepo.GetAll(ctx, r.joinRowParams(), byBooking(bookingID, model.ServiceTableName)) //nolint:wrapcheck
}

func (r *bookingImpl) UpdateBookedRooms(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.bookedRoomRepo.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *bookingImpl) UpdateBookedHalls(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.bookedHallRepo.Update(ctx, req, filter) //nolint:wrapcheck
}

// Update writes through the plain booking repository so join columns stay out
// of the update statement.
func (r *bookingImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return r.writeRepo.Update(ctx, req, filter) //nolint:wrapcheck
}

func (r *bookingImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return r.writeRepo.Delete(ctx, filter) //nolint:wrapcheck
}
