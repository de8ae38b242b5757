package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/internal/domains/setting/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	"marketplace/shared/event"
	gRepo "marketplace/shared/repository"
)

type Setting interface {
	Get(ctx context.Context, key string) (model.Setting, error)
	GetAll(ctx context.Context) ([]model.Setting, error)
	Upsert(ctx context.Context, setting model.Setting) (model.Setting, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Setting]
}

func New(db *postgres.Connection, bus event.Bus, otel otel.Otel) Setting {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel).WithPublisher(bus),
	}
}

func (r *repositoryImpl) Get(ctx context.Context, key string) (model.Setting, error) {
	return r.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Setting, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldKey, SortDir: gDto.SortDirAsc}

	return r.repo.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

// Upsert updates the row for the key and inserts it when missing. A racing
// insert of the same key falls back to one more update.
func (r *repositoryImpl) Upsert(ctx context.Context, setting model.Setting) (model.Setting, error) {
	mod := map[string]any{
		model.FieldValue:     setting.Value,
		model.FieldUpdatedAt: setting.UpdatedAt,
		model.FieldUpdatedBy: setting.UpdatedBy,
	}
	filter := shared.FilterByID(setting.Key, model.FieldKey, model.TableName)

	updated, ok, err := r.repo.UpdateReturning(ctx, mod, filter)
	if err != nil || ok {
		return updated, err //nolint:wrapcheck
	}

	err = r.repo.Insert(ctx, setting)
	if gRepo.IsUniqueViolation(err) {
		updated, _, err = r.repo.UpdateReturning(ctx, mod, filter)

		return updated, err //nolint:wrapcheck
	}

	if err != nil {
		return model.Setting{}, err //nolint:wrapcheck
	}

	return setting, nil
}
