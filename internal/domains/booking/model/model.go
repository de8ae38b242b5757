package model

import (
	"marketplace/shared/constant"
	"marketplace/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldNumber             = "number"
	FieldClientID           = "client_id"
	FieldProviderID         = "provider_id"
	FieldScheduledStart     = "scheduled_start"
	FieldScheduledEnd       = "scheduled_end"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldCancelledBy        = "cancelled_by"
	FieldCancellationReason = "cancellation_reason"
	FieldTotalAmount        = "total_amount"
	FieldCurrency           = "currency"
	FieldConfirmedAt        = "confirmed_at"
	FieldCompletedAt        = "completed_at"
	FieldCancelledAt        = "cancelled_at"
	FieldCreatedAt          = "created_at"

	CacheKeyGet = "booking:get"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	CancelledByClient   = "client"
	CancelledByProvider = "provider"
	CancelledByAdmin    = "admin"
	CancelledBySystem   = "system"
)

// OpenStatuses are the statuses a booking can still leave.
var OpenStatuses = []string{StatusPending, StatusConfirmed}

type Booking struct {
	ID                 string     `db:"id"`
	Number             string     `db:"number"`
	ClientID           string     `db:"client_id"`
	ProviderID         string     `db:"provider_id"`
	ScheduledStart     time.Time  `db:"scheduled_start"`
	ScheduledEnd       time.Time  `db:"scheduled_end"`
	Status             string     `db:"status"`
	PaymentStatus      string     `db:"payment_status"`
	CancelledBy        *string    `db:"cancelled_by"`
	CancellationReason *string    `db:"cancellation_reason"`
	TotalAmount        int64      `db:"total_amount"`
	Currency           string     `db:"currency"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	CompletedAt        *time.Time `db:"completed_at"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	model.Metadata
}

func (b Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// Guard is the compare-and-set condition of a transition. Zero fields are not
// checked. The same guard selects sweep candidates when ID is empty.
type Guard struct {
	ID              string
	Status          string
	PaymentStatus   string
	ProviderID      string
	CreatedBefore   time.Time
	ConfirmedBefore time.Time
	EndedBefore     time.Time
}

// Matches evaluates the guard against an in-memory booking.
func (g Guard) Matches(b Booking) bool {
	switch {
	case g.ID != "" && b.ID != g.ID:
		return false
	case g.Status != "" && b.Status != g.Status:
		return false
	case g.PaymentStatus != "" && b.PaymentStatus != g.PaymentStatus:
		return false
	case g.ProviderID != "" && b.ProviderID != g.ProviderID:
		return false
	case !g.CreatedBefore.IsZero() && b.CreatedAt.After(g.CreatedBefore):
		return false
	case !g.ConfirmedBefore.IsZero() && (b.ConfirmedAt == nil || b.ConfirmedAt.After(g.ConfirmedBefore)):
		return false
	case !g.EndedBefore.IsZero() && b.ScheduledEnd.After(g.EndedBefore):
		return false
	}

	return true
}

// Change lists what a transition writes. Empty fields are left untouched.
type Change struct {
	Status        string
	PaymentStatus string
	ConfirmedAt   *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	CancelledBy   string
	Reason        string
	At            time.Time
	Actor         string
}

// Columns renders the change as an update set.
func (c Change) Columns() map[string]any {
	mod := map[string]any{
		constant.FieldModifiedAt: c.At,
		constant.FieldModifiedBy: c.Actor,
	}

	if c.Status != "" {
		mod[FieldStatus] = c.Status
	}

	if c.PaymentStatus != "" {
		mod[FieldPaymentStatus] = c.PaymentStatus
	}

	if c.ConfirmedAt != nil {
		mod[FieldConfirmedAt] = *c.ConfirmedAt
	}

	if c.CompletedAt != nil {
		mod[FieldCompletedAt] = *c.CompletedAt
	}

	if c.CancelledAt != nil {
		mod[FieldCancelledAt] = *c.CancelledAt
	}

	if c.CancelledBy != "" {
		mod[FieldCancelledBy] = c.CancelledBy
	}

	if c.Reason != "" {
		mod[FieldCancellationReason] = c.Reason
	}

	return mod
}

// Apply writes the change onto b.
func (c Change) Apply(b *Booking) {
	b.ModifiedAt = c.At
	b.ModifiedBy = c.Actor

	if c.Status != "" {
		b.Status = c.Status
	}

	if c.PaymentStatus != "" {
		b.PaymentStatus = c.PaymentStatus
	}

	if c.ConfirmedAt != nil {
		at := *c.ConfirmedAt
		b.ConfirmedAt = &at
	}

	if c.CompletedAt != nil {
		at := *c.CompletedAt
		b.CompletedAt = &at
	}

	if c.CancelledAt != nil {
		at := *c.CancelledAt
		b.CancelledAt = &at
	}

	if c.CancelledBy != "" {
		by := c.CancelledBy
		b.CancelledBy = &by
	}

	if c.Reason != "" {
		reason := c.Reason
		b.CancellationReason = &reason
	}
}
