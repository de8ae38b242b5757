package account

import (
	"marketplace/infras/otel"
	"marketplace/internal/domains/account/model"
	"marketplace/internal/domains/account/model/dto"
	"marketplace/internal/domains/account/service"
	"marketplace/shared/constant"
	gDto "marketplace/shared/dto"
	"marketplace/shared/validator"
	"marketplace/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortable = gDto.Sortable{
	constant.FieldCreatedAt: model.TableName + "." + constant.FieldCreatedAt,
	model.FieldName:         model.TableName + "." + model.FieldName,
	model.FieldLastLoginAt:  model.TableName + "." + model.FieldLastLoginAt,
}

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accounts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAccounts)
		routerGroup.Get("/me", handler.GetMe)
		routerGroup.Put("/me/push-token", handler.RegisterPushToken)
		routerGroup.Delete("/me", handler.DeleteMe)
		routerGroup.Get("/{id}", handler.GetAccountByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Delete("/{id}", handler.DeleteAccount)
	})
}

// GetAccounts lists accounts.
// @Summary Get all accounts
// @Description Retrieve accounts with optional filtering and pagination.
// @Tags Account
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by account type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetAccountsResponse] "List of accounts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accounts [get]
// @Security BearerAuth
func (handler *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccounts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, sortable)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldType, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	accounts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accounts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accounts)
}

// GetMe returns the signed in account.
// @Summary Get the current account
// @Tags Account
// @Produce json
// @Success 200 {object} response.Data[dto.AccountResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/accounts/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)

	account, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current account")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, account)
}

// GetAccountByID retrieves an account by its ID.
// @Summary Get an account by ID
// @Tags Account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.Data[dto.AccountResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accounts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccountByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	account, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get account by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, account)
}

// UpdateStatus moves an account through review.
// @Summary Update account status
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.AccountResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/accounts/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	account, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update account status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account status updated")

	response.WithJSON(w, http.StatusOK, account)
}

// RegisterPushToken stores or clears the device token of the signed in account.
// @Summary Register a push token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.RegisterPushTokenRequest true "Push Token Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/accounts/me/push-token [put]
// @Security BearerAuth
func (handler *Handler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterPushToken")
	defer scope.End()

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := dto.RegisterPushTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RegisterPushToken(ctx, id, req.Token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register push token")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Push token updated successfully")
}

// DeleteMe removes the signed in account when it has nothing in progress.
// @Summary Delete the current account
// @Tags Account
// @Produce json
// @Success 200 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/accounts/me [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(constant.ContextKeyUserID).(string)

	handler.delete(w, r, id, ".DeleteMe")
}

// DeleteAccount removes an account by its ID.
// @Summary Delete an account by ID
// @Tags Account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/accounts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	handler.delete(w, r, chi.URLParam(r, constant.RequestParamID), ".DeleteAccount")
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request, id, span string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+span)
	defer scope.End()

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete account")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account deleted successfully")

	response.WithMessage(w, http.StatusOK, "Account deleted successfully")
}
