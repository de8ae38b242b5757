package model

import "time"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldRecipientID = "recipient_id"
	FieldChannel     = "channel"
	FieldEvent       = "event"
	FieldTitle       = "title"
	FieldBody        = "body"
	FieldStatus      = "status"
	FieldJobID       = "job_id"
	FieldError       = "error"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

const (
	ChannelUser  = "push_user"
	ChannelTopic = "push_topic"
)

const (
	StatusQueued    = "queued"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusDelivered = "delivered"
)

// Events raised by booking transitions.
const (
	EventBookingCreated      = "booking.created"
	EventBookingAccepted     = "booking.accepted"
	EventAcceptanceTimeout   = "booking.acceptance_timeout"
	EventPaymentTimeout      = "booking.payment_timeout"
	EventBookingCompleted    = "booking.completed"
	EventCancelledByClient   = "booking.cancelled_by_client"
	EventCancelledByProvider = "booking.cancelled_by_provider"
	EventCancelledByAdmin    = "booking.cancelled_by_admin"
	EventPaymentReceived     = "booking.payment_received"
	EventPaymentFailed       = "booking.payment_failed"
)

// Audience selects which booking parties receive a notification.
type Audience int

const (
	AudienceClient Audience = 1 << iota
	AudienceProvider

	AudienceBoth = AudienceClient | AudienceProvider
)

func (a Audience) Includes(other Audience) bool {
	return a&other != 0
}

// Notification records one delivery attempt to one recipient or topic.
type Notification struct {
	ID          string    `db:"id"`
	BookingID   *string   `db:"booking_id"`
	RecipientID string    `db:"recipient_id"`
	Channel     string    `db:"channel"`
	Event       string    `db:"event"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	Status      string    `db:"status"`
	JobID       *string   `db:"job_id"`
	Error       *string   `db:"error"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
