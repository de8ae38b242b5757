package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/internal/domains/otp/model"
	"marketplace/shared"
	gDto "marketplace/shared/dto"
	gRepo "marketplace/shared/repository"
	"time"
)

const argNow = "now"

type Challenge interface {
	Insert(ctx context.Context, challenge model.Challenge) error
	Get(ctx context.Context, id string) (model.Challenge, error)
	Latest(ctx context.Context, phone, purpose string) (model.Challenge, error)
	ListLive(ctx context.Context, phone, purpose string, now time.Time) ([]model.Challenge, error)
	CountCreatedSince(ctx context.Context, phone string, since time.Time) (int, error)
	InvalidateLive(ctx context.Context, phone, purpose string, now time.Time) (int64, error)
	IncrementAttempts(ctx context.Context, phone, purpose string, now time.Time) (int64, error)
	MarkVerified(ctx context.Context, id string, now time.Time) (model.Challenge, bool, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Challenge]
}

func New(db *postgres.Connection, otel otel.Otel) Challenge {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Challenge](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func phonePurpose(phone, purpose string) []any {
	return []any{
		shared.Eq(model.TableName, model.FieldPhone, phone),
		shared.Eq(model.TableName, model.FieldPurpose, purpose),
	}
}

// liveFilter matches unverified challenges that have not expired at now.
func liveFilter(phone, purpose string, now time.Time) gDto.FilterGroup {
	filters := phonePurpose(phone, purpose)
	filters = append(filters,
		shared.Eq(model.TableName, model.FieldVerified, false),
		gDto.Filter{ArgName: argNow, Field: model.FieldExpiresAt, Value: now, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	)

	return shared.And(filters...)
}

func (r *repositoryImpl) Insert(ctx context.Context, challenge model.Challenge) error {
	return r.repo.Insert(ctx, challenge) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Challenge, error) {
	return r.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) Latest(ctx context.Context, phone, purpose string) (model.Challenge, error) {
	params := gDto.QueryParams{Limit: 1, SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	challenges, err := r.repo.GetAll(ctx, params, shared.And(phonePurpose(phone, purpose)...))
	if err != nil {
		return model.Challenge{}, err //nolint:wrapcheck
	}

	if len(challenges) == 0 {
		return model.Challenge{}, nil
	}

	return challenges[0], nil
}

func (r *repositoryImpl) ListLive(ctx context.Context, phone, purpose string, now time.Time) ([]model.Challenge, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	return r.repo.GetAll(ctx, params, liveFilter(phone, purpose, now)) //nolint:wrapcheck
}

// CountCreatedSince counts challenges of every purpose, invalidated ones included.
func (r *repositoryImpl) CountCreatedSince(ctx context.Context, phone string, since time.Time) (int, error) {
	filter := shared.And(
		shared.Eq(model.TableName, model.FieldPhone, phone),
		gDto.Filter{Field: model.FieldCreatedAt, Value: since, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
	)

	return r.repo.Count(ctx, filter) //nolint:wrapcheck
}

// InvalidateLive pulls the expiry of live challenges to now. The rows stay so
// they keep counting towards the request rate limit.
func (r *repositoryImpl) InvalidateLive(ctx context.Context, phone, purpose string, now time.Time) (int64, error) {
	return r.repo.UpdateCount(ctx, map[string]any{model.FieldExpiresAt: now}, liveFilter(phone, purpose, now)) //nolint:wrapcheck
}

func (r *repositoryImpl) IncrementAttempts(ctx context.Context, phone, purpose string, now time.Time) (int64, error) {
	mod := map[string]any{model.FieldAttempts: gRepo.Expr(model.FieldAttempts + " + 1")}

	return r.repo.UpdateCount(ctx, mod, liveFilter(phone, purpose, now)) //nolint:wrapcheck
}

// MarkVerified flips verified only while it is still false, so a code can be
// used once even under concurrent verification.
func (r *repositoryImpl) MarkVerified(ctx context.Context, id string, now time.Time) (model.Challenge, bool, error) {
	filter := shared.And(
		shared.Eq(model.TableName, model.FieldID, id),
		shared.Eq(model.TableName, model.FieldVerified, false),
	)

	mod := map[string]any{
		model.FieldVerified:   true,
		model.FieldVerifiedAt: now,
	}

	challenge, ok, err := r.repo.UpdateReturning(ctx, mod, filter)
	if err != nil {
		return challenge, false, fmt.Errorf("failed to mark challenge verified: %w", err)
	}

	return challenge, ok, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	return r.repo.DeleteCount(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
