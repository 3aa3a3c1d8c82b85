package coupon

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/coupon/model"
	"inn/internal/domains/coupon/model/dto"
	"inn/internal/domains/coupon/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coupon
	otel    otel.Otel
}

func New(service service.Coupon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/coupons", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCoupon)
		routerGroup.Get("/", handler.GetCoupons)
		routerGroup.Get("/{id}", handler.GetCouponByID)
		routerGroup.Patch("/{id}", handler.UpdateCoupon)
		routerGroup.Delete("/{id}", handler.DeleteCoupon)
	})
}

// CreateCoupon handles the creation of a new coupon.
// @Summary Create a new coupon
// @Description Create a new discount coupon with the provided details.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param request body dto.CreateCouponRequest true "Create Coupon Request"
// @Success 201 {object} response.Message "Coupon created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coupons [post]
// @Security BearerAuth
func (handler *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCoupon")
	defer scope.End()

	req := dto.CreateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Create(ctx, accountID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create coupon")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupon created successfully by user " + accountID)

	response.WithMessage(w, http.StatusCreated, "Coupon created successfully")
}

// GetCoupons retrieves all coupons based on query parameters.
// @Summary Get all coupons
// @Description Retrieve all coupons with optional filtering and pagination.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param coupon_code query string false "Filter by coupon code"
// @Param coupon_type query string false "Filter by coupon type"
// @Success 200 {object} response.Data[dto.GetCouponsResponse] "List of coupons"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coupons [get]
// @Security BearerAuth
func (handler *Handler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoupons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCouponCode,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCouponCode),
				Table:    model.TableName,
			},
		},
	}

	if couponType := r.URL.Query().Get(model.FieldCouponType); couponType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCouponType,
			Operator: gDto.FilterOperatorEq,
			Value:    couponType,
			Table:    model.TableName,
		})
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	coupons, err := handler.service.GetAll(ctx, accountID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupons")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupons retrieved successfully")

	response.WithJSON(w, http.StatusOK, coupons)
}

// GetCouponByID retrieves a coupon by its ID.
// @Summary Get a coupon by ID
// @Description Retrieve a coupon by its unique identifier.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.Data[dto.CouponResponse] "Coupon details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coupons/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCouponByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCouponByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	coupon, err := handler.service.Get(ctx, accountID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coupon by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupon retrieved successfully")

	response.WithJSON(w, http.StatusOK, coupon)
}

// UpdateCoupon updates an existing coupon by its ID.
// @Summary Update a coupon by ID
// @Description Update the details of an existing coupon.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body dto.UpdateCouponRequest true "Update Coupon Request"
// @Success 200 {object} response.Message "Coupon updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coupons/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCoupon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCouponRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, accountID, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update coupon")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupon updated successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Coupon updated successfully")
}

// DeleteCoupon deletes a coupon by its ID.
// @Summary Delete a coupon by ID
// @Description Delete a coupon using its unique identifier.
// @Tags Coupon
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.Message "Coupon deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coupons/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCoupon")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Delete(ctx, accountID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete coupon")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coupon deleted successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Coupon deleted successfully")
}
