package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	"marketplace/shared/constant"
	"marketplace/shared/phone"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNotConfigured = errors.New("sms sender is not configured")

// Sender delivers a text message synchronously.
type Sender interface {
	Send(ctx context.Context, to, message string) error
}

type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type twilioSender struct {
	api  messageAPI
	from string
	otel otel.Otel
}

// New returns a Twilio backed sender. Without credentials a development build
// logs messages instead and any other environment refuses to send.
func New(cfg *config.Config, otl otel.Otel) Sender {
	creds := cfg.SMS.Twilio

	if creds.AccountSID == "" || creds.AuthToken == "" || creds.From == "" {
		if cfg.Server.Env == constant.ServerEnvDevelopment {
			log.Warn().Msg("Twilio credentials missing, SMS will only be logged")

			return &logSender{}
		}

		log.Error().Msg("Twilio credentials missing, SMS delivery disabled")

		return &disabledSender{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: creds.AccountSID,
		Password: creds.AuthToken,
	})

	log.Info().Str("from", creds.From).Msg("Twilio SMS sender initialized")

	return newTwilioSender(client.Api, creds.From, otl)
}

func newTwilioSender(api messageAPI, from string, otl otel.Otel) *twilioSender {
	return &twilioSender{
		api:  api,
		from: from,
		otel: otl,
	}
}

func (s *twilioSender) Send(ctx context.Context, to, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sms.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("sms send cancelled: %w", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(to)
	params.SetBody(message)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", phone.Mask(to)).Msg("failed to send sms")

		return fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}

	scope.SetAttribute("sms.sid", sid)
	log.Info().Str("to", phone.Mask(to)).Str("sid", sid).Msg("sms sent")

	return nil
}

type logSender struct{}

func (*logSender) Send(_ context.Context, to, message string) error {
	log.Info().Str("to", phone.Mask(to)).Str("message", message).Msg("sms (development)")

	return nil
}

type disabledSender struct{}

func (*disabledSender) Send(context.Context, string, string) error {
	return ErrNotConfigured
}
