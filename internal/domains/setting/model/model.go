package model

import "time"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey       = "key"
	FieldValue     = "value"
	FieldUpdatedAt = "updated_at"
	FieldUpdatedBy = "updated_by"

	CacheKeyGet = "setting:get"
)

// Runtime overrides read by the booking lifecycle.
const (
	KeyAcceptanceTimeoutMinutes = "booking.acceptance_timeout_minutes"
	KeyPaymentTimeoutMinutes    = "booking.payment_timeout_minutes"
)

var Known = []string{KeyAcceptanceTimeoutMinutes, KeyPaymentTimeoutMinutes}

type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
	UpdatedBy string    `db:"updated_by"`
}
