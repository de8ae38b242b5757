package model

import (
	"marketplace/shared/model"
	"time"
)

const (
	TableName  = "accounts"
	EntityName = "account"

	// CacheKeyGet prefixes the cached account read model, suffixed with the id.
	CacheKeyGet = "account:get"

	FieldID          = "id"
	FieldPhone       = "phone"
	FieldName        = "name"
	FieldType        = "type"
	FieldRole        = "role"
	FieldActive      = "active"
	FieldStatus      = "status"
	FieldPushToken   = "push_token"
	FieldNotifyAdmin = "notify_admin"
	FieldLastLoginAt = "last_login_at"
)

const (
	TypeClient   = "client"
	TypeProvider = "provider"
	TypeAdmin    = "admin"
)

const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
	StatusRejected  = "rejected"
)

// Account is a person on the marketplace. Type never changes after creation.
type Account struct {
	ID          string     `db:"id"`
	Phone       string     `db:"phone"`
	Name        string     `db:"name"`
	Type        string     `db:"type"`
	Role        string     `db:"role"`
	Active      bool       `db:"active"`
	Status      string     `db:"status"`
	PushToken   *string    `db:"push_token"`
	NotifyAdmin bool       `db:"notify_admin"`
	LastLoginAt *time.Time `db:"last_login_at"`
	model.Metadata
}

// CanSignIn reports whether the account may be issued a session.
func (a Account) CanSignIn() bool {
	return a.Active && a.Status == StatusActive
}

// Reachable reports whether the account has a push registration.
func (a Account) Reachable() bool {
	return a.PushToken != nil && *a.PushToken != ""
}
