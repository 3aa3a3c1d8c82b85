package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/pricing"
	"inn/internal/domains/booking/repository"
	couponModel "inn/internal/domains/coupon/model"
	couponRepo "inn/internal/domains/coupon/repository"
	guestModel "inn/internal/domains/guest/model"
	guestRepo "inn/internal/domains/guest/repository"
	hallModel "inn/internal/domains/hall/model"
	hallRepo "inn/internal/domains/hall/repository"
	paidServiceModel "inn/internal/domains/paidservice/model"
	paidServiceRepo "inn/internal/domains/paidservice/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, accountID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, accountID, id string) (dto.BookingResponse, error)
	UpdatePayment(ctx context.Context, accountID string, req dto.UpdatePaymentRequest, id string) error
	Cancel(ctx context.Context, accountID, id string) error
	Delete(ctx context.Context, accountID, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	guests      guestRepo.Guest
	roomTypes   roomRepo.RoomType
	rooms       roomRepo.Room
	hallTypes   hallRepo.HallType
	halls       hallRepo.Hall
	services    paidServiceRepo.PaidService
	coupons     couponRepo.Coupon
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafkaClient kafka.Client
}

func New(
	repo repository.Booking,
	guests guestRepo.Guest,
	roomTypes roomRepo.RoomType,
	rooms roomRepo.Room,
	hallTypes hallRepo.HallType,
	halls hallRepo.Hall,
	services paidServiceRepo.PaidService,
	coupons couponRepo.Coupon,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:        repo,
		guests:      guests,
		roomTypes:   roomTypes,
		rooms:       rooms,
		hallTypes:   hallTypes,
		halls:       halls,
		services:    services,
		coupons:     coupons,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafkaClient: kafkaClient,
	}
}

// validateDraft applies the form-level checks in the order the booking form
// presents them, so the first missing selection is the one reported.
func validateDraft(req dto.CreateBookingRequest) error {
	if req.GuestID == constant.Empty {
		return failure.BadRequestFromString("Please select a guest") // nolint:wrapcheck
	}

	if req.CheckIn.IsZero() {
		return failure.BadRequestFromString("Please select a check-in date") // nolint:wrapcheck
	}

	if req.CheckOut.IsZero() {
		return failure.BadRequestFromString("Please select a check-out date") // nolint:wrapcheck
	}

	switch req.BookingType {
	case model.TypeRoom:
		if req.Room == nil || req.Room.RoomTypeID == constant.Empty {
			return failure.BadRequestFromString("Please select a room type") // nolint:wrapcheck
		}

		if req.Room.RoomID == constant.Empty {
			return failure.BadRequestFromString("Please select a room") // nolint:wrapcheck
		}
	case model.TypeHall:
		if req.Hall == nil || req.Hall.HallTypeID == constant.Empty {
			return failure.BadRequestFromString("Please select a hall type") // nolint:wrapcheck
		}

		if req.Hall.HallID == constant.Empty {
			return failure.BadRequestFromString("Please select a hall") // nolint:wrapcheck
		}
	}

	return nil
}

// Create validates the draft, prices it, and persists the booking with all of
// its join rows in one transaction. No availability check runs against
// existing bookings before the insert.
func (s *serviceImpl) Create(ctx context.Context, accountID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = validateDraft(req); err != nil {
		return res, err
	}

	if err = s.checkGuests(ctx, accountID, req); err != nil {
		return res, err
	}

	unitPrice, err := s.resolveUnitPrice(ctx, accountID, req)
	if err != nil {
		return res, err
	}

	priced, bookingServices, err := s.loadServices(ctx, accountID, req.ServiceIDs, user)
	if err != nil {
		return res, err
	}

	coupon, err := s.loadCoupon(ctx, accountID, req.CouponID)
	if err != nil {
		return res, err
	}

	total := pricing.Total(pricing.Draft{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		UnitPrice: unitPrice,
		Services:  priced,
		Coupon:    coupon,
	})

	booking := req.ToModel(accountID, user, total)

	agg := model.Aggregate{
		Booking:  booking,
		Guests:   buildBookingGuests(booking.ID, req, user),
		Services: attachBooking(booking.ID, bookingServices),
	}

	if req.BookingType == model.TypeRoom {
		agg.BookedRoom = &model.BookedRoom{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			RoomID:    req.Room.RoomID,
			CheckIn:   req.CheckIn,
			CheckOut:  req.CheckOut,
			Status:    model.UnitStatusBooked,
			Metadata:  newMetadata(user),
		}
	} else {
		agg.BookedHall = &model.BookedHall{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			HallID:    req.Hall.HallID,
			CheckIn:   req.CheckIn,
			CheckOut:  req.CheckOut,
			Status:    model.UnitStatusBooked,
			Metadata:  newMetadata(user),
		}
	}

	if err = s.repo.Create(ctx, agg); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res, err = s.assembleBooking(ctx, accountID, booking.ID)
	if err != nil {
		return res, err
	}

	go s.publishCreated(context.WithoutCancel(ctx), res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) checkGuests(ctx context.Context, accountID string, req dto.CreateBookingRequest) error {
	guestIDs := append([]string{req.GuestID}, req.AdditionalGuests...)

	for _, guestID := range guestIDs {
		exist, err := s.guests.Exist(ctx, shared.FilterByIDAndAccount(guestID, guestModel.FieldID, accountID, guestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guest exists")

			return fmt.Errorf("failed to check if guest exists: %w", err)
		}

		if !exist {
			return failure.NotFound("guest not found") // nolint:wrapcheck
		}
	}

	return nil
}

// resolveUnitPrice loads the selected unit and its type, verifying both belong
// to the operator account and to each other, and returns the type's rate.
func (s *serviceImpl) resolveUnitPrice(ctx context.Context, accountID string, req dto.CreateBookingRequest) (float64, error) {
	if req.BookingType == model.TypeRoom {
		roomType, err := s.roomTypes.Get(ctx, shared.FilterByIDAndAccount(req.Room.RoomTypeID, roomModel.TypeFieldID, accountID, roomModel.TypeTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room type")

			return 0, fmt.Errorf("failed to get room type: %w", err)
		}

		if roomType.ID == constant.Empty {
			return 0, failure.NotFound("room type not found") // nolint:wrapcheck
		}

		room, err := s.rooms.Get(ctx, shared.FilterByIDAndAccount(req.Room.RoomID, roomModel.FieldID, accountID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return 0, fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty || room.RoomTypeID != roomType.ID {
			return 0, failure.NotFound("room not found") // nolint:wrapcheck
		}

		return roomType.BasePrice, nil
	}

	hallType, err := s.hallTypes.Get(ctx, shared.FilterByIDAndAccount(req.Hall.HallTypeID, hallModel.TypeFieldID, accountID, hallModel.TypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall type")

		return 0, fmt.Errorf("failed to get hall type: %w", err)
	}

	if hallType.ID == constant.Empty {
		return 0, failure.NotFound("hall type not found") // nolint:wrapcheck
	}

	hall, err := s.halls.Get(ctx, shared.FilterByIDAndAccount(req.Hall.HallID, hallModel.FieldID, accountID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return 0, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty || hall.HallTypeID != hallType.ID {
		return 0, failure.NotFound("hall not found") // nolint:wrapcheck
	}

	return hallType.BestPrice, nil
}

// loadServices resolves each selected paid service, snapshotting its current
// price into the booking_services rows.
func (s *serviceImpl) loadServices(ctx context.Context, accountID string, serviceIDs []string, user string) ([]pricing.Service, []model.BookingService, error) {
	priced := make([]pricing.Service, 0, len(serviceIDs))
	rows := make([]model.BookingService, 0, len(serviceIDs))

	for _, serviceID := range serviceIDs {
		svc, err := s.services.Get(ctx, shared.FilterByIDAndAccount(serviceID, paidServiceModel.FieldID, accountID, paidServiceModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get paid service")

			return nil, nil, fmt.Errorf("failed to get paid service: %w", err)
		}

		if svc.ID == constant.Empty {
			return nil, nil, failure.NotFound("paid service not found") // nolint:wrapcheck
		}

		priced = append(priced, pricing.Service{ID: svc.ID, Price: svc.Price})
		rows = append(rows, model.BookingService{
			ID:            uuid.NewString(),
			PaidServiceID: svc.ID,
			Quantity:      1,
			TotalPrice:    svc.Price,
			Metadata:      newMetadata(user),
		})
	}

	return priced, rows, nil
}

func (s *serviceImpl) loadCoupon(ctx context.Context, accountID string, couponID *string) (*pricing.Coupon, error) {
	if couponID == nil || *couponID == constant.Empty {
		return nil, nil
	}

	coupon, err := s.coupons.Get(ctx, shared.FilterByIDAndAccount(*couponID, couponModel.FieldID, accountID, couponModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupon")

		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}

	if coupon.ID == constant.Empty {
		return nil, failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	return &pricing.Coupon{Type: coupon.CouponType, Value: coupon.CouponValue}, nil
}

func buildBookingGuests(bookingID string, req dto.CreateBookingRequest, user string) []model.BookingGuest {
	guests := make([]model.BookingGuest, 0, len(req.AdditionalGuests)+1)

	guests = append(guests, model.BookingGuest{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		GuestID:     req.GuestID,
		IsHeadGuest: true,
		Metadata:    newMetadata(user),
	})

	for _, guestID := range req.AdditionalGuests {
		guests = append(guests, model.BookingGuest{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			GuestID:   guestID,
			Metadata:  newMetadata(user),
		})
	}

	return guests
}

func attachBooking(bookingID string, services []model.BookingService) []model.BookingService {
	for i := range services {
		services[i].BookingID = bookingID
	}

	return services
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// assembleBooking re-fetches the booking joined with its guest and coupon plus
// every join row, so the caller gets the complete record that was just written.
func (s *serviceImpl) assembleBooking(ctx context.Context, accountID, id string) (res dto.BookingResponse, err error) {
	detail, err := s.repo.Get(ctx, shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	guests, err := s.repo.GetGuests(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking guests")

		return res, fmt.Errorf("failed to get booking guests: %w", err)
	}

	var bookedRoom *model.BookedRoom

	var bookedHall *model.BookedHall

	if detail.BookingType == model.TypeRoom {
		rooms, err := s.repo.GetBookedRooms(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booked rooms")

			return res, fmt.Errorf("failed to get booked rooms: %w", err)
		}

		if len(rooms) > 0 {
			bookedRoom = &rooms[0]
		}
	} else {
		halls, err := s.repo.GetBookedHalls(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booked halls")

			return res, fmt.Errorf("failed to get booked halls: %w", err)
		}

		if len(halls) > 0 {
			bookedHall = &halls[0]
		}
	}

	services, err := s.repo.GetServices(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(detail)
	res.FromAggregateRows(guests, bookedRoom, bookedHall, services)

	return res, nil
}

// publishCreated emits the created booking for downstream consumers. Delivery
// is best effort and never fails the request.
func (s *serviceImpl) publishCreated(ctx context.Context, res dto.BookingResponse) {
	message := kafka.Message{Key: res.ID, Value: res}

	if err := s.kafkaClient.SendMessages(ctx, s.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("bookingID", res.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, shared.FilterByAccount(accountID, model.TableName))

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, accountID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, accountID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	res, err = s.assembleBooking(ctx, accountID, id)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdatePayment records a payment against the booking and re-derives the
// payment status from the stored total.
func (s *serviceImpl) UpdatePayment(ctx context.Context, accountID string, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldPaidAmount:    req.PaidAmount,
		model.FieldPaymentStatus: dto.PaymentStatusFor(req.PaidAmount, booking.TotalAmount),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment")

		return fmt.Errorf("failed to update booking payment: %w", err)
	}

	s.dropBookingCaches(ctx, accountID, id)

	return nil
}

// Cancel marks the booking cancelled and releases its unit assignment.
func (s *serviceImpl) Cancel(ctx context.Context, accountID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.BookingStatus == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldBookingStatus: model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	unitFields := map[string]any{
		model.BookedRoomFieldStatus: model.UnitStatusCancelled,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if booking.BookingType == model.TypeRoom {
		unitFilter := shared.FilterByID(id, model.BookedRoomFieldBookingID, model.BookedRoomTableName)
		if err := s.repo.UpdateBookedRooms(ctx, unitFields, unitFilter); err != nil {
			log.Error().Err(err).Msg("failed to cancel booked room")

			return fmt.Errorf("failed to cancel booked room: %w", err)
		}
	} else {
		unitFilter := shared.FilterByID(id, model.BookedHallFieldBookingID, model.BookedHallTableName)
		if err := s.repo.UpdateBookedHalls(ctx, unitFields, unitFilter); err != nil {
			log.Error().Err(err).Msg("failed to cancel booked hall")

			return fmt.Errorf("failed to cancel booked hall: %w", err)
		}
	}

	s.dropBookingCaches(ctx, accountID, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, accountID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.dropBookingCaches(ctx, accountID, id)

	return nil
}

func (s *serviceImpl) dropBookingCaches(ctx context.Context, accountID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
