package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/internal/domains/account/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	"marketplace/shared/event"
	gRepo "marketplace/shared/repository"
	"time"
)

// ErrPhoneTaken is returned by Insert when the phone already has an account.
var ErrPhoneTaken = errors.New("phone already registered")

type Account interface {
	Insert(ctx context.Context, account model.Account) error
	Get(ctx context.Context, id string) (model.Account, error)
	GetByPhone(ctx context.Context, phone string) (model.Account, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Account, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Account, error)
	ListAdminRecipients(ctx context.Context) ([]model.Account, error)
	Update(ctx context.Context, id string, mod map[string]any) (model.Account, bool, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) (int64, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Account]
}

func New(db *postgres.Connection, bus event.Bus, otel otel.Otel) Account {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel).WithPublisher(bus),
	}
}

// Insert relies on the unique phone index so two concurrent registrations
// cannot both succeed.
func (r *repositoryImpl) Insert(ctx context.Context, account model.Account) error {
	err := r.repo.Insert(ctx, account)
	if gRepo.IsUniqueViolation(err) {
		return ErrPhoneTaken
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Account, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByPhone(ctx context.Context, phone string) (model.Account, error) {
	return r.repo.Get(ctx, shared.And(shared.Eq(model.TableName, model.FieldPhone, phone))) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Account, error) {
	return r.repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.repo.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]model.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	filter := shared.And(gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName})

	return r.repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// ListAdminRecipients returns the active accounts holding the admin
// notification capability.
func (r *repositoryImpl) ListAdminRecipients(ctx context.Context) ([]model.Account, error) {
	filter := shared.And(
		shared.Eq(model.TableName, model.FieldNotifyAdmin, true),
		shared.Eq(model.TableName, model.FieldActive, true),
		shared.Eq(model.TableName, model.FieldStatus, model.StatusActive),
	)

	return r.repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id string, mod map[string]any) (model.Account, bool, error) {
	return r.repo.UpdateReturning(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	mod := map[string]any{model.FieldLastLoginAt: at}

	return r.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	return r.repo.DeleteCount(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
