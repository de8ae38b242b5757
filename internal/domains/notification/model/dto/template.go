package dto

import (
	"fmt"
	"marketplace/internal/domains/notification/model"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"

	scheduleLayout = "02 Jan 2006 15:04"
)

type template struct {
	title    string
	client   string
	provider string
	admin    string
}

// Bodies take the booking number and the scheduled start, in that order.
var templates = map[string]template{
	model.EventBookingCreated: {
		title:    "New booking request",
		client:   "Your booking %s for %s has been sent to the provider.",
		provider: "You have a new booking request %s for %s. Please accept it soon.",
		admin:    "Booking %s for %s was created.",
	},
	model.EventBookingAccepted: {
		title:    "Booking accepted",
		client:   "Your booking %s for %s was accepted. Please complete the payment.",
		provider: "You accepted booking %s for %s.",
		admin:    "Booking %s for %s was accepted by the provider.",
	},
	model.EventAcceptanceTimeout: {
		title:    "Booking expired",
		client:   "Your booking %s for %s was not accepted in time and has been cancelled.",
		provider: "Booking %s for %s expired before it was accepted.",
		admin:    "Booking %s for %s was cancelled because the provider did not accept it in time.",
	},
	model.EventPaymentTimeout: {
		title:    "Booking cancelled",
		client:   "Your booking %s for %s was cancelled because payment was not received in time.",
		provider: "Booking %s for %s was cancelled because the client did not pay in time.",
		admin:    "Booking %s for %s was cancelled because payment was not received in time.",
	},
	model.EventBookingCompleted: {
		title:    "Booking completed",
		client:   "Your booking %s for %s is complete. Thank you!",
		provider: "Booking %s for %s is complete.",
		admin:    "Booking %s for %s was completed.",
	},
	model.EventCancelledByClient: {
		title:    "Booking cancelled",
		client:   "You cancelled booking %s for %s.",
		provider: "The client cancelled booking %s for %s.",
		admin:    "Booking %s for %s was cancelled by the client.",
	},
	model.EventCancelledByProvider: {
		title:    "Booking cancelled",
		client:   "The provider cancelled your booking %s for %s.",
		provider: "You cancelled booking %s for %s.",
		admin:    "Booking %s for %s was cancelled by the provider.",
	},
	model.EventCancelledByAdmin: {
		title:    "Booking cancelled",
		client:   "Your booking %s for %s was cancelled by our support team.",
		provider: "Booking %s for %s was cancelled by our support team.",
		admin:    "Booking %s for %s was cancelled by an admin.",
	},
	model.EventPaymentReceived: {
		title:    "Payment received",
		client:   "We received your payment for booking %s on %s.",
		provider: "The client paid for booking %s on %s.",
		admin:    "Payment received for booking %s on %s.",
	},
	model.EventPaymentFailed: {
		title:    "Payment failed",
		client:   "Your payment for booking %s on %s failed. Please try again.",
		provider: "The payment for booking %s on %s failed.",
		admin:    "Payment failed for booking %s on %s.",
	},
}

func lookup(event string) template {
	if tpl, ok := templates[event]; ok {
		return tpl
	}

	return template{
		title:    "Booking updated",
		client:   "Your booking %s for %s was updated.",
		provider: "Booking %s for %s was updated.",
		admin:    "Booking %s for %s was updated.",
	}
}

// PartyMessage renders the title and body one booking party sees for event.
func PartyMessage(event, role string, subject Subject) (title, body string) {
	tpl := lookup(event)

	format := tpl.client
	if role == RoleProvider {
		format = tpl.provider
	}

	body = fmt.Sprintf(format, subject.Number, subject.ScheduledStart.Format(scheduleLayout))
	if subject.Reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, subject.Reason)
	}

	return tpl.title, body
}

// NewAdminNotice renders the admin broadcast for a booking event.
func NewAdminNotice(event string, subject Subject) AdminNotice {
	tpl := lookup(event)

	body := fmt.Sprintf(tpl.admin, subject.Number, subject.ScheduledStart.Format(scheduleLayout))
	if subject.Reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, subject.Reason)
	}

	return AdminNotice{
		Event:     event,
		Title:     tpl.title,
		Body:      body,
		BookingID: subject.BookingID,
		Data:      subject.Data(event),
	}
}
