// Package memtest holds an in-process booking store for tests.
package memtest

import (
	"context"
	"marketplace/internal/domains/booking/model"
	"marketplace/internal/domains/booking/repository"
	gDto "marketplace/shared/dto"
	"slices"
	"sort"
	"sync"
)

var _ repository.Booking = (*Store)(nil)

// Store keeps bookings in a map. Transitions are serialized by a mutex, which
// gives them the same compare-and-set behaviour as the SQL store. Filters
// passed to GetAll and Count are ignored.
type Store struct {
	mu       sync.Mutex
	bookings map[string]model.Booking
}

func New(bookings ...model.Booking) *Store {
	m := &Store{bookings: make(map[string]model.Booking, len(bookings))}
	for _, booking := range bookings {
		m.bookings[booking.ID] = booking
	}

	return m
}

func (m *Store) Insert(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bookings {
		if existing.Number == booking.Number {
			return repository.ErrNumberTaken
		}
	}

	m.bookings[booking.ID] = booking

	return nil
}

func (m *Store) Get(_ context.Context, id string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bookings[id], nil
}

func (m *Store) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup) ([]model.Booking, error) {
	return m.ListMatching(context.Background(), model.Guard{}, 0)
}

func (m *Store) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.bookings), nil
}

func (m *Store) Transition(_ context.Context, guard model.Guard, change model.Change) (model.Booking, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[guard.ID]
	if !ok || !guard.Matches(booking) {
		return model.Booking{}, false, nil
	}

	change.Apply(&booking)
	m.bookings[booking.ID] = booking

	return booking, true, nil
}

func (m *Store) ListMatching(_ context.Context, guard model.Guard, limit int) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make([]model.Booking, 0, len(m.bookings))
	for _, booking := range m.bookings {
		if guard.Matches(booking) {
			res = append(res, booking)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res, nil
}

func (m *Store) CountOpen(_ context.Context, accountID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0

	for _, booking := range m.bookings {
		if slices.Contains(model.OpenStatuses, booking.Status) && (booking.ClientID == accountID || booking.ProviderID == accountID) {
			count++
		}
	}

	return count, nil
}
