package field

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/field/model"
	"arena/internal/domains/field/model/dto"
	"arena/internal/domains/field/service"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Field
	otel    otel.Otel
}

func New(service service.Field, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fields", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateField)
		routerGroup.Get("/", handler.GetFields)
		routerGroup.Get("/{id}", handler.GetFieldByID)
		routerGroup.Patch("/{id}", handler.UpdateField)
		routerGroup.Delete("/{id}", handler.DeleteField)
		routerGroup.Post("/{id}/images", handler.UploadFieldImage)
	})
}

// CreateField handles the creation of a new field.
// @Summary Create a new field
// @Description Create a field with its price schedule.
// @Tags Field
// @Accept json
// @Produce json
// @Param request body dto.CreateFieldRequest true "Create Field Request"
// @Success 201 {object} response.Message "Field created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields [post]
// @Security BearerAuth
func (handler *Handler) CreateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateField")
	defer scope.End()

	req := dto.CreateFieldRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Field created successfully")
}

// GetFields retrieves all fields.
// @Summary Get all fields
// @Description Retrieve all fields with their price schedules.
// @Tags Field
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by active status (true/false)"
// @Success 200 {object} response.Data[dto.GetFieldsResponse] "List of fields"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields [get]
// @Security BearerAuth
func (handler *Handler) GetFields(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFields")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := r.URL.Query().Get(constant.RequestParamStatus); active != "" {
		if activeBool := shared.ConvertStringToBool(active); activeBool != nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    *activeBool,
				Table:    model.TableName,
			})
		}
	}

	fields, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fields")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Fields retrieved successfully")

	response.WithJSON(w, http.StatusOK, fields)
}

// GetFieldByID retrieves a field by its ID.
// @Summary Get a field by ID
// @Description Retrieve a field and its price schedule by its unique identifier.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[dto.FieldResponse] "Field details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFieldByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFieldByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	field, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get field by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Field retrieved successfully")

	response.WithJSON(w, http.StatusOK, field)
}

// UpdateField updates an existing field by its ID.
// @Summary Update a field by ID
// @Description Update a field and replace its price schedule.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param request body dto.UpdateFieldRequest true "Update Field Request"
// @Success 200 {object} response.Message "Field updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFieldRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field updated successfully")
}

// DeleteField deletes a field by its ID.
// @Summary Delete a field by ID
// @Description Remove a field and its price schedule.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Message "Field deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field deleted successfully")
}

// UploadFieldImage uploads a base64 image for a field and returns its URL.
// @Summary Upload a field image
// @Description Upload a base64 data URI image to object storage and return the public URL.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param request body dto.UploadImageRequest true "Upload Image Request"
// @Success 201 {object} response.Data[dto.UploadImageResponse] "Uploaded image URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fields/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadFieldImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFieldImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UploadImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload field image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}
