package dto

import (
	"marketplace/internal/domains/booking/model"
	notificationDto "marketplace/internal/domains/notification/model/dto"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	gModel "marketplace/shared/model"
	"marketplace/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a booking operation.
type Actor struct {
	ID   string
	Role string
}

type CreateBookingRequest struct {
	ClientID       string    `json:"client_id"       validate:"omitempty,uuid"`
	ProviderID     string    `json:"provider_id"     validate:"required,uuid"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time `json:"scheduled_end"   validate:"required,gtfield=ScheduledStart"`
	TotalAmount    int64     `json:"total_amount"    validate:"gte=0"`
	Currency       string    `json:"currency"        validate:"omitempty,len=3,uppercase"`
}

func (c *CreateBookingRequest) ToModel(number, currency string, actor Actor, now time.Time) model.Booking {
	if c.Currency != "" {
		currency = c.Currency
	}

	return model.Booking{
		ID:             uuid.NewString(),
		Number:         number,
		ClientID:       c.ClientID,
		ProviderID:     c.ProviderID,
		ScheduledStart: c.ScheduledStart,
		ScheduledEnd:   c.ScheduledEnd,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentPending,
		TotalAmount:    c.TotalAmount,
		Currency:       currency,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor.ID,
			ModifiedBy: actor.ID,
		},
	}
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	Number             string  `json:"number"`
	ClientID           string  `json:"client_id"`
	ProviderID         string  `json:"provider_id"`
	ScheduledStart     string  `json:"scheduled_start"`
	ScheduledEnd       string  `json:"scheduled_end"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	CancelledBy        string  `json:"cancelled_by,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
	TotalAmount        int64   `json:"total_amount"`
	Currency           string  `json:"currency"`
	ConfirmedAt        *string `json:"confirmed_at,omitempty"`
	CompletedAt        *string `json:"completed_at,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Number = model.Number
	r.ClientID = model.ClientID
	r.ProviderID = model.ProviderID
	r.ScheduledStart = timezone.Format(model.ScheduledStart, time.RFC3339)
	r.ScheduledEnd = timezone.Format(model.ScheduledEnd, time.RFC3339)
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.TotalAmount = model.TotalAmount
	r.Currency = model.Currency
	r.ConfirmedAt = timezone.FormatOptional(model.ConfirmedAt, time.RFC3339)
	r.CompletedAt = timezone.FormatOptional(model.CompletedAt, time.RFC3339)
	r.CancelledAt = timezone.FormatOptional(model.CancelledAt, time.RFC3339)
	r.Metadata.FromModel(model.Metadata)

	if model.CancelledBy != nil {
		r.CancelledBy = *model.CancelledBy
	}

	if model.CancellationReason != nil {
		r.CancellationReason = *model.CancellationReason
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Subject is the view of a booking the notification templates work from.
func Subject(booking model.Booking) notificationDto.Subject {
	subject := notificationDto.Subject{
		BookingID:      booking.ID,
		Number:         booking.Number,
		ClientID:       booking.ClientID,
		ProviderID:     booking.ProviderID,
		ScheduledStart: booking.ScheduledStart,
	}

	if booking.CancellationReason != nil {
		subject.Reason = *booking.CancellationReason
	}

	return subject
}
