package paidservice

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/paidservice/model"
	"inn/internal/domains/paidservice/model/dto"
	"inn/internal/domains/paidservice/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PaidService
	otel    otel.Otel
}

func New(service service.PaidService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/paid-services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePaidService)
		routerGroup.Get("/", handler.GetPaidServices)
		routerGroup.Get("/{id}", handler.GetPaidServiceByID)
		routerGroup.Patch("/{id}", handler.UpdatePaidService)
		routerGroup.Delete("/{id}", handler.DeletePaidService)
	})
}

// CreatePaidService handles the creation of a new paid service.
// @Summary Create a new paid service
// @Description Create a new paid service with the provided details.
// @Tags PaidService
// @Accept json
// @Produce json
// @Param request body dto.CreatePaidServiceRequest true "Create Paid Service Request"
// @Success 201 {object} response.Message "Paid service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/paid-services [post]
// @Security BearerAuth
func (handler *Handler) CreatePaidService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaidService")
	defer scope.End()

	req := dto.CreatePaidServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Create(ctx, accountID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create paid service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paid service created successfully by user " + accountID)

	response.WithMessage(w, http.StatusCreated, "Paid service created successfully")
}

// GetPaidServices retrieves all paid services based on query parameters.
// @Summary Get all paid services
// @Description Retrieve all paid services with optional filtering and pagination.
// @Tags PaidService
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetPaidServicesResponse] "List of paid services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/paid-services [get]
// @Security BearerAuth
func (handler *Handler) GetPaidServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaidServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldTitle),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	services, err := handler.service.GetAll(ctx, accountID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get paid services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paid services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// GetPaidServiceByID retrieves a paid service by its ID.
// @Summary Get a paid service by ID
// @Description Retrieve a paid service by its unique identifier.
// @Tags PaidService
// @Accept json
// @Produce json
// @Param id path string true "Paid Service ID"
// @Success 200 {object} response.Data[dto.PaidServiceResponse] "Paid service details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/paid-services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaidServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaidServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	paidService, err := handler.service.Get(ctx, accountID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get paid service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paid service retrieved successfully")

	response.WithJSON(w, http.StatusOK, paidService)
}

// UpdatePaidService updates an existing paid service by its ID.
// @Summary Update a paid service by ID
// @Description Update the details of an existing paid service.
// @Tags PaidService
// @Accept json
// @Produce json
// @Param id path string true "Paid Service ID"
// @Param request body dto.UpdatePaidServiceRequest true "Update Paid Service Request"
// @Success 200 {object} response.Message "Paid service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/paid-services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaidService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaidService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaidServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, accountID, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update paid service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paid service updated successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Paid service updated successfully")
}

// DeletePaidService deletes a paid service by its ID.
// @Summary Delete a paid service by ID
// @Description Delete a paid service using its unique identifier.
// @Tags PaidService
// @Accept json
// @Produce json
// @Param id path string true "Paid Service ID"
// @Success 200 {object} response.Message "Paid service deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/paid-services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePaidService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePaidService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Delete(ctx, accountID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete paid service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paid service deleted successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Paid service deleted successfully")
}
