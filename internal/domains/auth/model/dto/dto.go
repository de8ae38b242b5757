package dto

import (
	"marketplace/infras/jwt"
	accountModel "marketplace/internal/domains/account/model"
	accountDto "marketplace/internal/domains/account/model/dto"
	"time"
)

type CheckPhoneRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type CheckPhoneResponse struct {
	Exists      bool   `json:"exists"`
	AccountType string `json:"account_type,omitempty"`
	Active      bool   `json:"active"`
}

func (r *CheckPhoneResponse) FromModel(account accountModel.Account) {
	r.Exists = account.ID != ""
	r.AccountType = account.Type
	r.Active = account.CanSignIn()
}

// CodeRequest asks for a code for registration or for signing in to one of
// the apps.
type CodeRequest struct {
	Phone   string `json:"phone"    validate:"required,phone"`
	Purpose string `json:"purpose"  validate:"required,oneof=registration login"`
	AppType string `json:"app_type" validate:"omitempty,apptype"`
}

type RegisterRequest struct {
	VerificationToken string `json:"verification_token" validate:"required"`
	Name              string `json:"name"               validate:"required,max=120"`
	Type              string `json:"type"               validate:"required,apptype"`
	PushToken         string `json:"push_token"         validate:"omitempty,max=4096"`
}

type LoginRequest struct {
	Phone   string `json:"phone"    validate:"required,phone"`
	Code    string `json:"code"     validate:"required,numeric,min=4,max=10"`
	AppType string `json:"app_type" validate:"required,apptype"`
}

type SessionResponse struct {
	Token     string                     `json:"token"`
	ExpiresAt time.Time                  `json:"expires_at"`
	Account   accountDto.AccountResponse `json:"account"`
}

func (r *SessionResponse) FromModel(token jwt.Token, account accountModel.Account) {
	r.Token = token.Value
	r.ExpiresAt = token.ExpiresAt
	r.Account.FromModel(account)
}
