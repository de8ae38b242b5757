package memtest_test

import (
	"context"
	"marketplace/internal/domains/booking/model"
	"marketplace/internal/domains/booking/repository"
	"marketplace/internal/domains/booking/repository/memtest"
	gModel "marketplace/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func pending(id string, createdAt time.Time) model.Booking {
	return model.Booking{
		ID:       id,
		Number:   "BK-" + id,
		Status:   model.StatusPending,
		Metadata: gModel.Metadata{CreatedAt: createdAt},
	}
}

func TestStore_TransitionIsCompareAndSet(t *testing.T) {
	store := memtest.New(pending("a", start))
	guard := model.Guard{ID: "a", Status: model.StatusPending}
	change := model.Change{Status: model.StatusConfirmed, At: start}

	updated, ok, err := store.Transition(context.Background(), guard, change)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.StatusConfirmed, updated.Status)

	_, ok, err = store.Transition(context.Background(), guard, change)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Transition(context.Background(), model.Guard{ID: "missing"}, change)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ListMatchingOldestFirstWithLimit(t *testing.T) {
	store := memtest.New(
		pending("c", start.Add(2*time.Minute)),
		pending("a", start),
		pending("b", start.Add(time.Minute)),
	)

	res, err := store.ListMatching(context.Background(), model.Guard{Status: model.StatusPending}, 2)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "a", res[0].ID)
	assert.Equal(t, "b", res[1].ID)
}

func TestStore_InsertRejectsDuplicateNumber(t *testing.T) {
	store := memtest.New(pending("a", start))

	err := store.Insert(context.Background(), model.Booking{ID: "b", Number: "BK-a"})

	assert.ErrorIs(t, err, repository.ErrNumberTaken)
}

func TestStore_CountOpen(t *testing.T) {
	done := pending("done", start)
	done.Status = model.StatusCompleted
	done.ClientID = "client-1"

	open := pending("open", start)
	open.ClientID = "client-1"

	store := memtest.New(done, open)

	count, err := store.CountOpen(context.Background(), "client-1")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
