package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/infras/jwt"
	"marketplace/infras/otel"
	"marketplace/infras/sms"
	"marketplace/internal/domains/otp/model"
	"marketplace/internal/domains/otp/model/dto"
	"marketplace/internal/domains/otp/repository"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"marketplace/shared/phone"
	"marketplace/shared/secret"
	"math"
	"net/http"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

var purposes = []string{model.PurposeRegistration, model.PurposeLogin}

type OTP interface {
	Normalize(phone string) (string, error)
	Request(ctx context.Context, phone, purpose string) (dto.RequestResult, error)
	Verify(ctx context.Context, phone, code, purpose string) (dto.VerificationToken, error)
	CanResend(ctx context.Context, phone, purpose string) (dto.ResendStatus, error)
	Resend(ctx context.Context, phone, purpose string) (dto.RequestResult, error)
	Consume(ctx context.Context, token, purpose string) (model.Challenge, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Challenge
	sms    sms.Sender
	jwt    jwt.JWT
	clock  clock.Clock
	otel   otel.Otel
	limits limits
}

func New(repo repository.Challenge, sender sms.Sender, jwtService jwt.JWT, clk clock.Clock, cfg *config.Config, otel otel.Otel) OTP {
	return &serviceImpl{
		repo:   repo,
		sms:    sender,
		jwt:    jwtService,
		clock:  clk,
		otel:   otel,
		limits: limitsFrom(cfg),
	}
}

func (s *serviceImpl) Normalize(raw string) (string, error) {
	normalized, err := phone.Normalize(raw, s.limits.countryCode)
	if err != nil {
		return "", failure.BadRequestField("phone", "phone must be a valid phone number") // nolint:wrapcheck
	}

	return normalized, nil
}

func validatePurpose(purpose string) error {
	if !slices.Contains(purposes, purpose) {
		return failure.BadRequestField("purpose", "purpose must be one of registration login") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Request(ctx context.Context, rawPhone, purpose string) (res dto.RequestResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Request")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err := s.Normalize(rawPhone)
	if err != nil {
		return res, err
	}

	if err = validatePurpose(purpose); err != nil {
		return res, err
	}

	now := s.clock.Now()

	created, err := s.repo.CountCreatedSince(ctx, number, now.Add(-s.limits.rateWindow))
	if err != nil {
		log.Error().Err(err).Msg("failed to count recent challenges")

		return res, fmt.Errorf("failed to count recent challenges: %w", err)
	}

	if created >= s.limits.rateMax {
		log.Warn().Str("phone", phone.Mask(number)).Int("created", created).Msg("otp request rate limited")

		return res, failure.New(http.StatusTooManyRequests, failure.ReasonRateLimited, "phone", "too many verification codes requested, please try again later") // nolint:wrapcheck
	}

	if _, err = s.repo.InvalidateLive(ctx, number, purpose, now); err != nil {
		log.Error().Err(err).Msg("failed to invalidate previous challenges")

		return res, fmt.Errorf("failed to invalidate previous challenges: %w", err)
	}

	code, err := generateCode(s.limits.length)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate code")

		return res, fmt.Errorf("failed to generate code: %w", err)
	}

	codeHash, err := secret.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash code")

		return res, fmt.Errorf("failed to hash code: %w", err)
	}

	challenge := dto.NewChallenge(number, purpose, codeHash, now, s.limits.ttl)

	if err = s.repo.Insert(ctx, challenge); err != nil {
		log.Error().Err(err).Msg("failed to create challenge")

		return res, fmt.Errorf("failed to create challenge: %w", err)
	}

	if err = s.sms.Send(ctx, number, s.message(code)); err != nil {
		log.Error().Err(err).Str("phone", phone.Mask(number)).Msg("failed to deliver code, rolling back challenge")

		if _, delErr := s.repo.Delete(context.WithoutCancel(ctx), challenge.ID); delErr != nil {
			log.Error().Err(delErr).Str("challenge_id", challenge.ID).Msg("failed to roll back undelivered challenge")
		}

		return res, failure.New(http.StatusBadGateway, failure.ReasonDeliveryFailed, "phone", "failed to deliver verification code") // nolint:wrapcheck
	}

	res.FromModel(challenge, int(s.limits.cooldown.Seconds()))

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, rawPhone, code, purpose string) (res dto.VerificationToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err := s.Normalize(rawPhone)
	if err != nil {
		return res, err
	}

	if err = validatePurpose(purpose); err != nil {
		return res, err
	}

	now := s.clock.Now()

	live, err := s.repo.ListLive(ctx, number, purpose, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list live challenges")

		return res, fmt.Errorf("failed to list live challenges: %w", err)
	}

	matched, ok := matchCode(live, code)
	if !ok {
		if _, err = s.repo.IncrementAttempts(ctx, number, purpose, now); err != nil {
			log.Error().Err(err).Msg("failed to record failed attempt")

			return res, fmt.Errorf("failed to record failed attempt: %w", err)
		}

		return res, errInvalidOrExpired()
	}

	if matched.Attempts >= s.limits.maxAttempts {
		if _, _, err = s.repo.MarkVerified(ctx, matched.ID, now); err != nil {
			log.Error().Err(err).Msg("failed to burn challenge")

			return res, fmt.Errorf("failed to burn challenge: %w", err)
		}

		return res, failure.New(http.StatusTooManyRequests, failure.ReasonTooManyAttempts, "code", "too many failed attempts, please request a new code") // nolint:wrapcheck
	}

	verified, ok, err := s.repo.MarkVerified(ctx, matched.ID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark challenge verified")

		return res, fmt.Errorf("failed to mark challenge verified: %w", err)
	}

	if !ok {
		log.Debug().Str("challenge_id", matched.ID).Msg("challenge verified concurrently")

		return res, errInvalidOrExpired()
	}

	token, err := s.jwt.GenerateVerification(jwt.VerificationSubject{
		ChallengeID: verified.ID,
		Phone:       verified.Phone,
		Purpose:     verified.Purpose,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to issue verification token")

		return res, fmt.Errorf("failed to issue verification token: %w", err)
	}

	res.Token = token.Value
	res.ExpiresAt = token.ExpiresAt

	return res, nil
}

func (s *serviceImpl) CanResend(ctx context.Context, rawPhone, purpose string) (res dto.ResendStatus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.CanResend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err := s.Normalize(rawPhone)
	if err != nil {
		return res, err
	}

	if err = validatePurpose(purpose); err != nil {
		return res, err
	}

	latest, err := s.repo.Latest(ctx, number, purpose)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest challenge")

		return res, fmt.Errorf("failed to get latest challenge: %w", err)
	}

	if latest.ID == constant.Empty {
		res.CanResend = true

		return res, nil
	}

	wait := s.limits.cooldown - s.clock.Now().Sub(latest.CreatedAt)
	if wait <= 0 {
		res.CanResend = true

		return res, nil
	}

	res.RemainingSeconds = int(math.Ceil(wait.Seconds()))

	return res, nil
}

func (s *serviceImpl) Resend(ctx context.Context, rawPhone, purpose string) (res dto.RequestResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Resend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status, err := s.CanResend(ctx, rawPhone, purpose)
	if err != nil {
		return res, err
	}

	if !status.CanResend {
		msg := fmt.Sprintf("please wait %d seconds before requesting a new code", status.RemainingSeconds)

		return res, failure.New(http.StatusTooManyRequests, failure.ReasonResendTooSoon, "phone", msg) // nolint:wrapcheck
	}

	return s.Request(ctx, rawPhone, purpose)
}

// Consume resolves a verification token back to its challenge. The challenge
// must still exist and have been verified within the verification window.
func (s *serviceImpl) Consume(ctx context.Context, token, purpose string) (res model.Challenge, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Consume")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(token, jwt.VerificationToken)
	if err != nil {
		log.Debug().Err(err).Msg("verification token rejected")

		return res, errInvalidVerification()
	}

	if claims.Purpose != purpose {
		return res, errInvalidVerification()
	}

	challenge, err := s.repo.Get(ctx, claims.ChallengeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get challenge")

		return res, fmt.Errorf("failed to get challenge: %w", err)
	}

	if challenge.ID == constant.Empty || !challenge.Verified || challenge.VerifiedAt == nil || challenge.Phone != claims.Phone {
		return res, errInvalidVerification()
	}

	if s.clock.Now().Sub(*challenge.VerifiedAt) > s.limits.verificationWindow {
		return res, errInvalidVerification()
	}

	return challenge, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".otp.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete challenge")

		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	return nil
}

func (s *serviceImpl) message(code string) string {
	return fmt.Sprintf("Your %s verification code is %s. It expires in %d minutes. Do not share this code.",
		s.limits.appName, code, int(s.limits.ttl.Minutes()))
}

func matchCode(challenges []model.Challenge, code string) (model.Challenge, bool) {
	for _, challenge := range challenges {
		err := secret.Verify(code, challenge.CodeHash)
		if err == nil {
			return challenge, true
		}

		if !errors.Is(err, secret.ErrMismatch) {
			log.Error().Err(err).Str("challenge_id", challenge.ID).Msg("failed to compare code")
		}
	}

	return model.Challenge{}, false
}

func errInvalidOrExpired() error {
	return failure.New(http.StatusBadRequest, failure.ReasonInvalidOrExpired, "code", "invalid or expired verification code") // nolint:wrapcheck
}

func errInvalidVerification() error {
	return failure.New(http.StatusUnauthorized, failure.ReasonInvalidVerification, "verification_token", "phone verification is invalid or expired") // nolint:wrapcheck
}

type limits struct {
	appName            string
	countryCode        string
	length             int
	maxAttempts        int
	rateMax            int
	ttl                time.Duration
	rateWindow         time.Duration
	cooldown           time.Duration
	verificationWindow time.Duration
}

func limitsFrom(cfg *config.Config) limits {
	or := func(value, fallback int) int {
		if value <= 0 {
			return fallback
		}

		return value
	}

	appName := cfg.App.Name
	if appName == "" {
		appName = "Marketplace"
	}

	countryCode := cfg.OTP.DefaultCountryCode
	if countryCode == "" {
		countryCode = "62"
	}

	return limits{
		appName:            appName,
		countryCode:        countryCode,
		length:             or(cfg.OTP.Length, 6),
		maxAttempts:        or(cfg.OTP.MaxAttempts, 3),
		rateMax:            or(cfg.OTP.RateLimitMax, 3),
		ttl:                time.Duration(or(cfg.OTP.ExpireMin, 10)) * time.Minute,
		rateWindow:         time.Duration(or(cfg.OTP.RateLimitWindowMin, 15)) * time.Minute,
		cooldown:           time.Duration(or(cfg.OTP.ResendCooldownSeconds, 60)) * time.Second,
		verificationWindow: time.Duration(or(cfg.OTP.VerificationWindowMin, 30)) * time.Minute,
	}
}
