package auth

import (
	"marketplace/infras/otel"
	"marketplace/internal/domains/auth/model/dto"
	"marketplace/internal/domains/auth/service"
	otpDto "marketplace/internal/domains/otp/model/dto"
	otpService "marketplace/internal/domains/otp/service"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"marketplace/shared/validator"
	"marketplace/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamPhone   = "phone"
	queryParamPurpose = "purpose"
)

type Handler struct {
	service service.Auth
	otp     otpService.OTP
	otel    otel.Otel
}

func New(service service.Auth, otp otpService.OTP, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otp:     otp,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/check-phone", handler.CheckPhone)
		r.Post("/otp/request", handler.RequestCode)
		r.Post("/otp/verify", handler.VerifyCode)
		r.Post("/otp/resend", handler.ResendCode)
		r.Get("/otp/resend-status", handler.ResendStatus)
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
	})
}

// CheckPhone reports whether a phone number already belongs to an account.
// @Summary Check a phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CheckPhoneRequest true "Check Phone Request"
// @Success 200 {object} response.Data[dto.CheckPhoneResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/check-phone [post]
func (handler *Handler) CheckPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckPhone")
	defer scope.End()

	req := dto.CheckPhoneRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckPhone(ctx, req.Phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check phone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RequestCode sends a one-time code for registration or login.
// @Summary Request a one-time code
// @Description Login requests are rejected before any SMS is sent when the account cannot use the given app.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CodeRequest true "Code Request"
// @Success 200 {object} response.Data[otpDto.RequestResult]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/otp/request [post]
func (handler *Handler) RequestCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestCode")
	defer scope.End()

	req := dto.CodeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestCode(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Code sent")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyCode exchanges a correct code for a short-lived verification token.
// @Summary Verify a one-time code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body otpDto.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} response.Data[otpDto.VerificationToken]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/auth/otp/verify [post]
func (handler *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyCode")
	defer scope.End()

	req := otpDto.VerifyOTPRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.otp.Verify(ctx, req.Phone, req.Code, req.Purpose)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to verify code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ResendCode replaces the pending code once the cooldown has passed.
// @Summary Resend a one-time code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CodeRequest true "Code Request"
// @Success 200 {object} response.Data[otpDto.RequestResult]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/auth/otp/resend [post]
func (handler *Handler) ResendCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendCode")
	defer scope.End()

	req := dto.CodeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ResendCode(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resend code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ResendStatus tells the app how long to wait before offering a resend.
// @Summary Resend availability
// @Tags Auth
// @Produce json
// @Param phone query string true "Phone number"
// @Param purpose query string true "registration or login"
// @Success 200 {object} response.Data[otpDto.ResendStatus]
// @Failure 400 {object} response.Error
// @Router /v1/auth/otp/resend-status [get]
func (handler *Handler) ResendStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendStatus")
	defer scope.End()

	phone := r.URL.Query().Get(queryParamPhone)
	if phone == "" {
		response.WithError(w, failure.BadRequestField(queryParamPhone, "phone is required"))

		return
	}

	res, err := handler.otp.CanResend(ctx, phone, r.URL.Query().Get(queryParamPurpose))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check resend status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Register creates an account from a verified phone number.
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register account")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login signs an account in with a one-time code.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Login successful")

	response.WithJSON(w, http.StatusOK, res)
}
