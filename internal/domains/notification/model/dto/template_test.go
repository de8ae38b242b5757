package dto_test

import (
	"marketplace/internal/domains/notification/model"
	"marketplace/internal/domains/notification/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var subject = dto.Subject{
	BookingID:      "b-1",
	Number:         "BK-20260501-ABC123",
	ClientID:       "c-1",
	ProviderID:     "p-1",
	ScheduledStart: time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC),
}

func TestPartyMessage(t *testing.T) {
	tests := []struct {
		name      string
		event     string
		role      string
		reason    string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "accepted to client",
			event:     model.EventBookingAccepted,
			role:      dto.RoleClient,
			wantTitle: "Booking accepted",
			wantBody:  "Your booking BK-20260501-ABC123 for 02 May 2026 14:30 was accepted. Please complete the payment.",
		},
		{
			name:      "client cancellation to provider carries the reason",
			event:     model.EventCancelledByClient,
			role:      dto.RoleProvider,
			reason:    "plans changed",
			wantTitle: "Booking cancelled",
			wantBody:  "The client cancelled booking BK-20260501-ABC123 for 02 May 2026 14:30. Reason: plans changed",
		},
		{
			name:      "unknown event falls back",
			event:     "booking.rescheduled",
			role:      dto.RoleProvider,
			wantTitle: "Booking updated",
			wantBody:  "Booking BK-20260501-ABC123 for 02 May 2026 14:30 was updated.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := subject
			s.Reason = tt.reason

			title, body := dto.PartyMessage(tt.event, tt.role, s)

			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestNewAdminNotice(t *testing.T) {
	notice := dto.NewAdminNotice(model.EventPaymentTimeout, subject)

	assert.Equal(t, model.EventPaymentTimeout, notice.Event)
	assert.Equal(t, "Booking cancelled", notice.Title)
	assert.Equal(t, "Booking BK-20260501-ABC123 for 02 May 2026 14:30 was cancelled because payment was not received in time.", notice.Body)
	assert.Equal(t, "b-1", notice.BookingID)
	assert.Equal(t, map[string]string{
		"event":          model.EventPaymentTimeout,
		"booking_id":     "b-1",
		"booking_number": "BK-20260501-ABC123",
	}, notice.Data)
}

func TestAudience_Includes(t *testing.T) {
	assert.True(t, model.AudienceBoth.Includes(model.AudienceClient))
	assert.True(t, model.AudienceBoth.Includes(model.AudienceProvider))
	assert.False(t, model.AudienceClient.Includes(model.AudienceProvider))
}
