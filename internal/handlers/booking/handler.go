package booking

import (
	"context"
	"marketplace/infras/otel"
	"marketplace/internal/domains/booking/model"
	"marketplace/internal/domains/booking/model/dto"
	"marketplace/internal/domains/booking/service"
	notificationService "marketplace/internal/domains/notification/service"
	"marketplace/shared/constant"
	gDto "marketplace/shared/dto"
	"marketplace/shared/failure"
	"marketplace/shared/validator"
	"marketplace/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortable = gDto.Sortable{
	model.FieldCreatedAt:      model.TableName + "." + model.FieldCreatedAt,
	model.FieldScheduledStart: model.TableName + "." + model.FieldScheduledStart,
	model.FieldNumber:         model.TableName + "." + model.FieldNumber,
}

type Handler struct {
	service       service.Booking
	notifications notificationService.Notification
	otel          otel.Otel
}

func New(service service.Booking, notifications notificationService.Notification, otel otel.Otel) Handler {
	return Handler{
		service:       service,
		notifications: notifications,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/notifications", handler.GetNotifications)
		routerGroup.Post("/{id}/accept", handler.AcceptBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/payment/paid", handler.MarkPaid)
		routerGroup.Post("/{id}/payment/failed", handler.MarkPaymentFailed)
	})
}

func actorFrom(ctx context.Context) dto.Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if id == constant.Empty {
		return dto.Actor{Role: constant.RoleSystem}
	}

	return dto.Actor{ID: id, Role: role}
}

func canSee(actor dto.Actor, booking dto.BookingResponse) bool {
	switch actor.Role {
	case constant.RoleAdmin, constant.RoleSystem:
		return true
	default:
		return actor.ID == booking.ClientID || actor.ID == booking.ProviderID
	}
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a booking
// @Description Clients book for themselves, admins may book on behalf of a client.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, actorFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists the bookings visible to the caller.
// @Summary Get bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, sortable)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldStatus, model.FieldPaymentStatus} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	actor := actorFrom(ctx)

	switch actor.Role {
	case constant.RoleClient:
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field: model.FieldClientID, Operator: gDto.FilterOperatorEq, Value: actor.ID, Table: model.TableName,
		})
	case constant.RoleProvider:
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field: model.FieldProviderID, Operator: gDto.FilterOperatorEq, Value: actor.ID, Table: model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, ok := handler.visible(ctx, w, chi.URLParam(r, constant.RequestParamID))
	if !ok {
		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetNotifications lists the notification log of a booking.
// @Summary Get booking notifications
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[any] "Notification log"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	booking, ok := handler.visible(ctx, w, chi.URLParam(r, constant.RequestParamID))
	if !ok {
		return
	}

	notifications, err := handler.notifications.ListForBooking(ctx, booking.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking notifications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, notifications)
}

func (handler *Handler) visible(ctx context.Context, w http.ResponseWriter, id string) (dto.BookingResponse, bool) {
	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return booking, false
	}

	if !canSee(actorFrom(ctx), booking) {
		response.WithError(w, failure.ResourceRestrictedError)

		return booking, false
	}

	return booking, true
}

// AcceptBooking confirms a pending booking.
// @Summary Accept a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/accept [post]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptBooking")
	defer scope.End()

	actor := actorFrom(ctx)

	booking, err := handler.service.Accept(ctx, chi.URLParam(r, constant.RequestParamID), actor.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking accepted")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels an open booking.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelRequest false "Cancel Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	booking, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID), actorFrom(ctx), req.Reason)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled")

	response.WithJSON(w, http.StatusOK, booking)
}

// MarkPaid records a successful payment.
// @Summary Mark a booking paid
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/payment/paid [post]
// @Security ApiKeyAuth
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaid")
	defer scope.End()

	booking, err := handler.service.MarkPaid(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking paid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// MarkPaymentFailed records a failed payment attempt.
// @Summary Mark a booking payment failed
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/payment/failed [post]
// @Security ApiKeyAuth
func (handler *Handler) MarkPaymentFailed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaymentFailed")
	defer scope.End()

	booking, err := handler.service.MarkPaymentFailed(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking payment failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
