package hall

import (
	"net/http"

	"inn/infras/otel"
	"inn/internal/domains/hall/model"
	"inn/internal/domains/hall/model/dto"
	"inn/internal/domains/hall/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/validator"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Hall
	typeService service.HallType
	otel        otel.Otel
}

func New(service service.Hall, typeService service.HallType, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		typeService: typeService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hall-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHallType)
		routerGroup.Get("/", handler.GetHallTypes)
		routerGroup.Get("/{id}", handler.GetHallTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateHallType)
		routerGroup.Delete("/{id}", handler.DeleteHallType)
	})

	router.Route("/halls", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHall)
		routerGroup.Get("/", handler.GetHalls)
		routerGroup.Get("/{id}", handler.GetHallByID)
		routerGroup.Patch("/{id}", handler.UpdateHall)
		routerGroup.Delete("/{id}", handler.DeleteHall)
	})
}

// CreateHallType handles the creation of a new hall type.
// @Summary Create a new hall type
// @Description Create a new hall type with the provided details.
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallTypeRequest true "Create Hall Type Request"
// @Success 201 {object} response.Message "Hall type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall-types [post]
// @Security BearerAuth
func (handler *Handler) CreateHallType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHallType")
	defer scope.End()

	req := dto.CreateHallTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.typeService.Create(ctx, accountID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall type created successfully by user " + accountID)

	response.WithMessage(w, http.StatusCreated, "Hall type created successfully")
}

// GetHallTypes retrieves all hall types based on query parameters.
// @Summary Get all hall types
// @Description Retrieve all hall types with optional filtering and pagination.
// @Tags Hall
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Success 200 {object} response.Data[dto.GetHallTypesResponse] "List of hall types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall-types [get]
// @Security BearerAuth
func (handler *Handler) GetHallTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.TypeFieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.TypeFieldTitle),
				Table:    model.TypeTableName,
			},
		},
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hallTypes, err := handler.typeService.GetAll(ctx, accountID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall types retrieved successfully")

	response.WithJSON(w, http.StatusOK, hallTypes)
}

// GetHallTypeByID retrieves a hall type by its ID.
// @Summary Get a hall type by ID
// @Description Retrieve a hall type by its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Type ID"
// @Success 200 {object} response.Data[dto.HallTypeResponse] "Hall type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHallTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hallType, err := handler.typeService.Get(ctx, accountID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall type retrieved successfully")

	response.WithJSON(w, http.StatusOK, hallType)
}

// UpdateHallType updates an existing hall type by its ID.
// @Summary Update a hall type by ID
// @Description Update the details of an existing hall type.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Type ID"
// @Param request body dto.UpdateHallTypeRequest true "Update Hall Type Request"
// @Success 200 {object} response.Message "Hall type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHallType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHallType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHallTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.typeService.Update(ctx, accountID, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall type updated successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Hall type updated successfully")
}

// DeleteHallType deletes a hall type by its ID.
// @Summary Delete a hall type by ID
// @Description Delete a hall type using its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Type ID"
// @Success 200 {object} response.Message "Hall type deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHallType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHallType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.typeService.Delete(ctx, accountID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall type deleted successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Hall type deleted successfully")
}

// CreateHall handles the creation of a new hall.
// @Summary Create a new hall
// @Description Create a new hall with the provided details.
// @Tags Hall
// @Accept multipart/form-data
// @Produce json
// @Param hall_type_id formData string true "Hall type ID"
// @Param hall_number formData string true "Hall number"
// @Param active formData boolean false "Hall active status"
// @Param image formData file false "Hall image"
// @Success 201 {object} response.Message "Hall created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls [post]
// @Security BearerAuth
func (handler *Handler) CreateHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateHallRequest{
		HallTypeID: r.FormValue(model.FieldHallTypeID),
		HallNumber: r.FormValue(model.FieldHallNumber),
	}

	if activeStr := r.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Create(ctx, accountID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall created successfully by user " + accountID)

	response.WithMessage(w, http.StatusCreated, "Hall created successfully")
}

// GetHalls retrieves all halls based on query parameters.
// @Summary Get all halls
// @Description Retrieve all halls with optional filtering and pagination.
// @Tags Hall
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hall_number query string false "Filter by hall number"
// @Param hall_type_id query string false "Filter by hall type"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetHallsResponse] "List of halls"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) GetHalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHallNumber,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldHallNumber),
				Table:    model.TableName,
			},
		},
	}

	if hallTypeID := r.URL.Query().Get(model.FieldHallTypeID); hallTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHallTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    hallTypeID,
			Table:    model.TableName,
		})
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

	halls, err := handler.service.GetAll(ctx, accountID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get halls")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Halls retrieved successfully")

	response.WithJSON(w, http.StatusOK, halls)
}

// GetHallByID retrieves a hall by its ID.
// @Summary Get a hall by ID
// @Description Retrieve a hall by its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} response.Data[dto.HallResponse] "Hall details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hall, err := handler.service.Get(ctx, accountID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall retrieved successfully")

	response.WithJSON(w, http.StatusOK, hall)
}

// UpdateHall updates an existing hall by its ID.
// @Summary Update a hall by ID
// @Description Update the details of an existing hall.
// @Tags Hall
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hall ID"
// @Param hall_type_id formData string false "Hall type ID"
// @Param hall_number formData string false "Hall number"
// @Param active formData boolean false "Hall active status"
// @Param image formData file false "Hall image"
// @Success 200 {object} response.Message "Hall updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateHallRequest{
		HallTypeID: r.FormValue(model.FieldHallTypeID),
		HallNumber: r.FormValue(model.FieldHallNumber),
	}

	if activeStr := r.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, accountID, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall updated successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Hall updated successfully")
}

// DeleteHall deletes a hall by its ID.
// @Summary Delete a hall by ID
// @Description Delete a hall using its unique identifier.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} response.Message "Hall deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Delete(ctx, accountID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall deleted successfully by user " + accountID)

	response.WithMessage(w, http.StatusOK, "Hall deleted successfully")
}
