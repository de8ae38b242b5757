package model_test

import (
	"marketplace/internal/domains/booking/model"
	"marketplace/shared/constant"
	gModel "marketplace/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func confirmed(at time.Time) model.Booking {
	return model.Booking{
		ID:            "b-1",
		ProviderID:    "p-1",
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentPending,
		ScheduledEnd:  now.Add(2 * time.Hour),
		ConfirmedAt:   &at,
		Metadata:      gModel.Metadata{CreatedAt: at.Add(-10 * time.Minute)},
	}
}

func TestGuard_Matches(t *testing.T) {
	booking := confirmed(now.Add(-6 * time.Minute))
	pending := model.Booking{ID: "b-2", Status: model.StatusPending, Metadata: gModel.Metadata{CreatedAt: now}}

	tests := []struct {
		name    string
		guard   model.Guard
		booking model.Booking
		want    bool
	}{
		{name: "empty guard", guard: model.Guard{}, booking: booking, want: true},
		{name: "id and status", guard: model.Guard{ID: "b-1", Status: model.StatusConfirmed}, booking: booking, want: true},
		{name: "other id", guard: model.Guard{ID: "b-9"}, booking: booking, want: false},
		{name: "status moved", guard: model.Guard{Status: model.StatusPending}, booking: booking, want: false},
		{name: "payment settled", guard: model.Guard{PaymentStatus: model.PaymentPaid}, booking: booking, want: false},
		{name: "other provider", guard: model.Guard{ProviderID: "p-2"}, booking: booking, want: false},
		{name: "confirmed long enough ago", guard: model.Guard{ConfirmedBefore: now.Add(-5 * time.Minute)}, booking: booking, want: true},
		{name: "confirmed too recently", guard: model.Guard{ConfirmedBefore: now.Add(-10 * time.Minute)}, booking: booking, want: false},
		{name: "never confirmed", guard: model.Guard{ConfirmedBefore: now}, booking: pending, want: false},
		{name: "created at the cutoff", guard: model.Guard{CreatedBefore: now}, booking: pending, want: true},
		{name: "created after the cutoff", guard: model.Guard{CreatedBefore: now.Add(-time.Second)}, booking: pending, want: false},
		{name: "not ended yet", guard: model.Guard{EndedBefore: now}, booking: booking, want: false},
		{name: "ended", guard: model.Guard{EndedBefore: now.Add(3 * time.Hour)}, booking: booking, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard.Matches(tt.booking))
		})
	}
}

func TestChange_Columns(t *testing.T) {
	change := model.Change{
		Status:      model.StatusCancelled,
		CancelledAt: &now,
		CancelledBy: model.CancelledBySystem,
		Reason:      "payment timeout",
		At:          now,
		Actor:       constant.RoleSystem,
	}

	assert.Equal(t, map[string]any{
		constant.FieldModifiedAt:      now,
		constant.FieldModifiedBy:      constant.RoleSystem,
		model.FieldStatus:             model.StatusCancelled,
		model.FieldCancelledAt:        now,
		model.FieldCancelledBy:        model.CancelledBySystem,
		model.FieldCancellationReason: "payment timeout",
	}, change.Columns())
}

func TestChange_ColumnsPaymentOnly(t *testing.T) {
	columns := model.Change{PaymentStatus: model.PaymentPaid, At: now, Actor: "admin-1"}.Columns()

	assert.Len(t, columns, 3)
	assert.Equal(t, model.PaymentPaid, columns[model.FieldPaymentStatus])
	assert.NotContains(t, columns, model.FieldStatus)
}

func TestChange_Apply(t *testing.T) {
	booking := confirmed(now.Add(-time.Hour))
	completedAt := now

	model.Change{Status: model.StatusCompleted, CompletedAt: &completedAt, At: now, Actor: constant.RoleSystem}.Apply(&booking)

	completedAt = completedAt.Add(time.Hour)

	assert.Equal(t, model.StatusCompleted, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, now, *booking.CompletedAt)
	assert.Nil(t, booking.CancelledAt)
	assert.Equal(t, constant.RoleSystem, booking.ModifiedBy)
	assert.True(t, booking.IsTerminal())
}

func TestBooking_IsTerminal(t *testing.T) {
	for status, want := range map[string]bool{
		model.StatusPending:   false,
		model.StatusConfirmed: false,
		model.StatusCompleted: true,
		model.StatusCancelled: true,
	} {
		assert.Equal(t, want, model.Booking{Status: status}.IsTerminal(), status)
	}
}
