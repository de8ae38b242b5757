package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/internal/domains/notification/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	gRepo "marketplace/shared/repository"
	"time"
)

type Notification interface {
	InsertBulk(ctx context.Context, notifications []model.Notification) error
	ListByBooking(ctx context.Context, bookingID string) ([]model.Notification, error)
	SettleJob(ctx context.Context, jobID, status, errMsg string, at time.Time) (int64, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Notification]
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) InsertBulk(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	return r.repo.InsertBulk(ctx, notifications) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]model.Notification, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.repo.GetAll(ctx, params, shared.And(shared.Eq(model.TableName, model.FieldBookingID, bookingID))) //nolint:wrapcheck
}

// SettleJob records the outcome reported by the push worker. Only queued rows
// move, so a replayed report is harmless.
func (r *repositoryImpl) SettleJob(ctx context.Context, jobID, status, errMsg string, at time.Time) (int64, error) {
	mod := map[string]any{
		model.FieldStatus:    status,
		model.FieldUpdatedAt: at,
	}

	if errMsg != "" {
		mod[model.FieldError] = errMsg
	}

	filter := shared.And(
		shared.Eq(model.TableName, model.FieldJobID, jobID),
		shared.Eq(model.TableName, model.FieldStatus, model.StatusQueued),
	)

	return r.repo.UpdateCount(ctx, mod, filter) //nolint:wrapcheck
}
