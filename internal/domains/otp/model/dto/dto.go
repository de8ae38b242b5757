package dto

import (
	"marketplace/internal/domains/otp/model"
	"time"

	"github.com/google/uuid"
)

type RequestOTPRequest struct {
	Phone   string `json:"phone"   validate:"required,phone"`
	Purpose string `json:"purpose" validate:"required,oneof=registration login"`
}

type VerifyOTPRequest struct {
	Phone   string `json:"phone"   validate:"required,phone"`
	Code    string `json:"code"    validate:"required,numeric,min=4,max=10"`
	Purpose string `json:"purpose" validate:"required,oneof=registration login"`
}

type RequestResult struct {
	ChallengeID        string    `json:"challenge_id"`
	Phone              string    `json:"phone"`
	ExpiresAt          time.Time `json:"expires_at"`
	ResendAfterSeconds int       `json:"resend_after_seconds"`
}

func (r *RequestResult) FromModel(challenge model.Challenge, cooldownSeconds int) {
	r.ChallengeID = challenge.ID
	r.Phone = challenge.Phone
	r.ExpiresAt = challenge.ExpiresAt
	r.ResendAfterSeconds = cooldownSeconds
}

type VerificationToken struct {
	Token     string    `json:"verification_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ResendStatus struct {
	CanResend        bool `json:"can_resend"`
	RemainingSeconds int  `json:"remaining_seconds"`
}

// NewChallenge builds a fresh challenge with zero attempts.
func NewChallenge(phone, purpose, codeHash string, now time.Time, ttl time.Duration) model.Challenge {
	return model.Challenge{
		ID:        uuid.NewString(),
		Phone:     phone,
		Purpose:   purpose,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}
