package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marketplace/infras/jwt"
	"marketplace/infras/otel"
	accountModel "marketplace/internal/domains/account/model"
	accountDto "marketplace/internal/domains/account/model/dto"
	accountRepo "marketplace/internal/domains/account/repository"
	"marketplace/internal/domains/auth/model/dto"
	otpModel "marketplace/internal/domains/otp/model"
	otpDto "marketplace/internal/domains/otp/model/dto"
	otpService "marketplace/internal/domains/otp/service"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"marketplace/shared/phone"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

var appNames = map[string]string{
	accountModel.TypeClient:   "Client",
	accountModel.TypeProvider: "Provider",
	accountModel.TypeAdmin:    "Admin",
}

type Auth interface {
	CheckPhone(ctx context.Context, phone string) (dto.CheckPhoneResponse, error)
	RequestCode(ctx context.Context, req dto.CodeRequest) (otpDto.RequestResult, error)
	ResendCode(ctx context.Context, req dto.CodeRequest) (otpDto.RequestResult, error)
	RequestRegistrationCode(ctx context.Context, phone string) (otpDto.RequestResult, error)
	RequestLoginCode(ctx context.Context, phone, appType string) (otpDto.RequestResult, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.SessionResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
}

type serviceImpl struct {
	otp         otpService.OTP
	accountRepo accountRepo.Account
	jwtService  jwt.JWT
	clock       clock.Clock
	otel        otel.Otel
}

func New(otp otpService.OTP, accountRepo accountRepo.Account, jwt jwt.JWT, clk clock.Clock, otel otel.Otel) Auth {
	return &serviceImpl{
		otp:         otp,
		accountRepo: accountRepo,
		jwtService:  jwt,
		clock:       clk,
		otel:        otel,
	}
}

func (s *serviceImpl) CheckPhone(ctx context.Context, rawPhone string) (res dto.CheckPhoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.CheckPhone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accountByPhone(ctx, rawPhone)
	if err != nil {
		return res, err
	}

	res.FromModel(account)

	return res, nil
}

// RequestCode routes a code request to the registration or login flow.
func (s *serviceImpl) RequestCode(ctx context.Context, req dto.CodeRequest) (otpDto.RequestResult, error) {
	if req.Purpose == otpModel.PurposeLogin {
		return s.RequestLoginCode(ctx, req.Phone, req.AppType)
	}

	return s.RequestRegistrationCode(ctx, req.Phone)
}

// ResendCode repeats the pre-send checks of the flow before asking for a new code.
func (s *serviceImpl) ResendCode(ctx context.Context, req dto.CodeRequest) (res otpDto.RequestResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ResendCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accountByPhone(ctx, req.Phone)
	if err != nil {
		return res, err
	}

	if req.Purpose == otpModel.PurposeLogin {
		err = checkSignIn(account, req.AppType)
	} else {
		err = checkUnregistered(account)
	}

	if err != nil {
		return res, err
	}

	return s.otp.Resend(ctx, account.Phone, req.Purpose) //nolint:wrapcheck
}

func (s *serviceImpl) RequestRegistrationCode(ctx context.Context, rawPhone string) (res otpDto.RequestResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RequestRegistrationCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accountByPhone(ctx, rawPhone)
	if err != nil {
		return res, err
	}

	if err = checkUnregistered(account); err != nil {
		return res, err
	}

	return s.otp.Request(ctx, account.Phone, otpModel.PurposeRegistration) //nolint:wrapcheck
}

func (s *serviceImpl) RequestLoginCode(ctx context.Context, rawPhone, appType string) (res otpDto.RequestResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RequestLoginCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accountByPhone(ctx, rawPhone)
	if err != nil {
		return res, err
	}

	if err = checkSignIn(account, appType); err != nil {
		return res, err
	}

	return s.otp.Request(ctx, account.Phone, otpModel.PurposeLogin) //nolint:wrapcheck
}

// Register turns a verified registration challenge into an account. The unique
// phone index decides between concurrent registrations of the same number.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(constant.AppTypes, req.Type) {
		return res, failure.BadRequestField("type", "type must be one of client provider") // nolint:wrapcheck
	}

	challenge, err := s.otp.Consume(ctx, req.VerificationToken, otpModel.PurposeRegistration)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.clock.Now()

	account := accountDto.NewAccount(challenge.Phone, strings.TrimSpace(req.Name), req.Type, now)
	account.LastLoginAt = &now

	if req.PushToken != constant.Empty {
		account.PushToken = &req.PushToken
	}

	if err = s.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, accountRepo.ErrPhoneTaken) {
			return res, failure.New(http.StatusConflict, constant.Empty, "phone", "phone number is already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create account")

		return res, fmt.Errorf("failed to create account: %w", err)
	}

	if err = s.otp.Delete(ctx, challenge.ID); err != nil {
		log.Warn().Err(err).Str("challenge_id", challenge.ID).Msg("failed to remove consumed challenge")
	}

	return s.issueSession(account)
}

// Login checks the account before and after the code so a change made while
// the code was in flight still blocks the session.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.accountByPhone(ctx, req.Phone)
	if err != nil {
		return res, err
	}

	if err = checkSignIn(account, req.AppType); err != nil {
		log.Info().Str("phone", phone.Mask(account.Phone)).Str("reason", failure.GetReason(err)).Msg("login refused before code check")

		return res, err
	}

	if _, err = s.otp.Verify(ctx, account.Phone, req.Code, otpModel.PurposeLogin); err != nil {
		return res, err //nolint:wrapcheck
	}

	account, err = s.accountRepo.Get(ctx, account.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload account")

		return res, fmt.Errorf("failed to reload account: %w", err)
	}

	if err = checkSignIn(account, req.AppType); err != nil {
		log.Warn().Str("account_id", account.ID).Msg("account changed while login code was pending")

		return res, err
	}

	now := s.clock.Now()

	if err = s.accountRepo.TouchLastLogin(ctx, account.ID, now); err != nil {
		log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to update last login")
	} else {
		account.LastLoginAt = &now
	}

	return s.issueSession(account)
}

func (s *serviceImpl) issueSession(account accountModel.Account) (res dto.SessionResponse, err error) {
	token, err := s.jwtService.GenerateSession(jwt.SessionSubject{
		AccountID:   account.ID,
		Phone:       account.Phone,
		Role:        account.Role,
		AccountType: account.Type,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return res, fmt.Errorf("failed to issue session: %w", err)
	}

	res.FromModel(token, account)

	return res, nil
}

// accountByPhone normalizes rawPhone and loads its account. A missing account
// comes back as the zero value carrying the normalized phone.
func (s *serviceImpl) accountByPhone(ctx context.Context, rawPhone string) (accountModel.Account, error) {
	number, err := s.otp.Normalize(rawPhone)
	if err != nil {
		return accountModel.Account{}, err //nolint:wrapcheck
	}

	account, err := s.accountRepo.GetByPhone(ctx, number)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account by phone")

		return accountModel.Account{}, fmt.Errorf("failed to get account by phone: %w", err)
	}

	account.Phone = number

	return account, nil
}

func checkUnregistered(account accountModel.Account) error {
	if account.ID != constant.Empty {
		return failure.New(http.StatusConflict, constant.Empty, "phone", "phone number is already registered") // nolint:wrapcheck
	}

	return nil
}

func checkSignIn(account accountModel.Account, appType string) error {
	if appType == constant.Empty {
		return failure.BadRequestField("app_type", "app_type is required to sign in") // nolint:wrapcheck
	}

	if account.ID == constant.Empty {
		return failure.New(http.StatusNotFound, constant.Empty, "phone", "no account is registered with this phone number") // nolint:wrapcheck
	}

	if account.Type != appType {
		msg := fmt.Sprintf("this number is registered as a %s account, please sign in through the %s app instead of the %s app",
			account.Type, appName(account.Type), appName(appType))

		return failure.New(http.StatusForbidden, failure.ReasonAppTypeMismatch, "app_type", msg) // nolint:wrapcheck
	}

	if !account.CanSignIn() {
		return failure.New(http.StatusForbidden, failure.ReasonAccountInactive, "phone", inactiveMessage(account)) // nolint:wrapcheck
	}

	return nil
}

func appName(accountType string) string {
	if name, ok := appNames[accountType]; ok {
		return name
	}

	return accountType
}

func inactiveMessage(account accountModel.Account) string {
	switch account.Status {
	case accountModel.StatusPending:
		return "your account is still waiting for approval"
	case accountModel.StatusSuspended:
		return "your account has been suspended, please contact support"
	case accountModel.StatusRejected:
		return "your account registration was rejected"
	}

	if !account.Active {
		return "your account has been deactivated"
	}

	return "your account is not active"
}
