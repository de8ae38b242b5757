package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/internal/domains/booking/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	"marketplace/shared/event"
	gRepo "marketplace/shared/repository"
)

// ErrNumberTaken is returned by Insert when the booking number collides.
var ErrNumberTaken = errors.New("booking number already used")

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// Transition applies change only when guard still holds and returns the
	// stored row. The boolean is false when another writer got there first.
	Transition(ctx context.Context, guard model.Guard, change model.Change) (model.Booking, bool, error)
	ListMatching(ctx context.Context, guard model.Guard, limit int) ([]model.Booking, error)
	CountOpen(ctx context.Context, accountID string) (int, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, bus event.Bus, otel otel.Otel) Booking {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel).WithPublisher(bus),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := r.repo.Insert(ctx, booking)
	if gRepo.IsUniqueViolation(err) {
		return ErrNumberTaken
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
	return r.repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.repo.Count(ctx, filter) //nolint:wrapcheck
}

// Transition is a single conditional UPDATE ... RETURNING, so no lock is held
// across the notification calls that follow it.
func (r *repositoryImpl) Transition(ctx context.Context, guard model.Guard, change model.Change) (model.Booking, bool, error) {
	return r.repo.UpdateReturning(ctx, change.Columns(), guardFilter(guard)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListMatching(ctx context.Context, guard model.Guard, limit int) ([]model.Booking, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return r.repo.GetAll(ctx, params, guardFilter(guard)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountOpen(ctx context.Context, accountID string) (int, error) {
	filter := shared.And(
		gDto.Filter{Field: model.FieldStatus, Value: model.OpenStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				shared.Eq(model.TableName, model.FieldClientID, accountID),
				shared.Eq(model.TableName, model.FieldProviderID, accountID),
			},
		},
	)

	return r.repo.Count(ctx, filter) //nolint:wrapcheck
}

func guardFilter(guard model.Guard) gDto.FilterGroup {
	filters := []any{}

	if guard.ID != "" {
		filters = append(filters, shared.Eq(model.TableName, model.FieldID, guard.ID))
	}

	if guard.Status != "" {
		filters = append(filters, shared.Eq(model.TableName, model.FieldStatus, guard.Status))
	}

	if guard.PaymentStatus != "" {
		filters = append(filters, shared.Eq(model.TableName, model.FieldPaymentStatus, guard.PaymentStatus))
	}

	if guard.ProviderID != "" {
		filters = append(filters, shared.Eq(model.TableName, model.FieldProviderID, guard.ProviderID))
	}

	if !guard.CreatedBefore.IsZero() {
		filters = append(filters, gDto.Filter{
			Field: model.FieldCreatedAt, Value: guard.CreatedBefore, Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	if !guard.ConfirmedBefore.IsZero() {
		filters = append(filters, gDto.Filter{
			Field: model.FieldConfirmedAt, Value: guard.ConfirmedBefore, Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	if !guard.EndedBefore.IsZero() {
		filters = append(filters, gDto.Filter{
			Field: model.FieldScheduledEnd, Value: guard.EndedBefore, Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	return shared.And(filters...)
}
