package dto

import (
	"marketplace/internal/domains/notification/model"
	"time"

	"github.com/google/uuid"
)

// Subject is the booking a party notification is about.
type Subject struct {
	BookingID      string
	Number         string
	ClientID       string
	ProviderID     string
	ScheduledStart time.Time
	Reason         string
}

// Data is attached to every push so the apps can deep link into the booking.
func (s Subject) Data(event string) map[string]string {
	return map[string]string{
		"event":          event,
		"booking_id":     s.BookingID,
		"booking_number": s.Number,
	}
}

// AdminNotice is broadcast to every admin holding the notification capability.
type AdminNotice struct {
	Event     string
	Title     string
	Body      string
	BookingID string
	Data      map[string]string
}

type Entry struct {
	BookingID   string
	RecipientID string
	Channel     string
	Event       string
	Title       string
	Body        string
}

func (e Entry) ToModel(status, jobID, errMsg string, now time.Time) model.Notification {
	notification := model.Notification{
		ID:          uuid.NewString(),
		RecipientID: e.RecipientID,
		Channel:     e.Channel,
		Event:       e.Event,
		Title:       e.Title,
		Body:        e.Body,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if e.BookingID != "" {
		notification.BookingID = &e.BookingID
	}

	if jobID != "" {
		notification.JobID = &jobID
	}

	if errMsg != "" {
		notification.Error = &errMsg
	}

	return notification
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Channel     string    `json:"channel"`
	Event       string    `json:"event"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.RecipientID = model.RecipientID
	r.Channel = model.Channel
	r.Event = model.Event
	r.Title = model.Title
	r.Status = model.Status
	r.CreatedAt = model.CreatedAt
	r.UpdatedAt = model.UpdatedAt

	if model.Error != nil {
		r.Error = *model.Error
	}
}

func FromModels(models []model.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
