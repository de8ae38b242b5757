package dto

import (
	"marketplace/internal/domains/account/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	gModel "marketplace/shared/model"
	"time"

	"github.com/google/uuid"
)

// NewAccount builds an active account whose role follows its type.
func NewAccount(phone, name, accountType string, now time.Time) model.Account {
	return model.Account{
		ID:     uuid.NewString(),
		Phone:  phone,
		Name:   name,
		Type:   accountType,
		Role:   accountType,
		Active: true,
		Status: model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  phone,
			ModifiedBy: phone,
		},
	}
}

type AccountResponse struct {
	ID          string     `json:"id"`
	Phone       string     `json:"phone"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	Status      string     `json:"status"`
	PushEnabled bool       `json:"push_enabled"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	gDto.Metadata
}

func (r *AccountResponse) FromModel(model model.Account) {
	r.ID = model.ID
	r.Phone = model.Phone
	r.Name = model.Name
	r.Type = model.Type
	r.Role = model.Role
	r.Active = model.Active
	r.Status = model.Status
	r.PushEnabled = model.Reachable()
	r.LastLoginAt = model.LastLoginAt
	r.Metadata.FromModel(model.Metadata)
}

type GetAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAccountsResponse) FromModels(models []model.Account, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accounts = make([]AccountResponse, len(models))
	for i, mod := range models {
		r.Accounts[i].FromModel(mod)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending suspended rejected"`
	Active *bool  `json:"active"`
}

type RegisterPushTokenRequest struct {
	Token string `json:"token" validate:"max=4096"`
}

// Recipient is the push registration state of one account.
type Recipient struct {
	AccountID string
	Name      string
	PushToken string
}

func (r *Recipient) FromModel(model model.Account) {
	r.AccountID = model.ID
	r.Name = model.Name

	if model.PushToken != nil {
		r.PushToken = *model.PushToken
	}
}

func RecipientsFromModels(models []model.Account) []Recipient {
	res := make([]Recipient, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
