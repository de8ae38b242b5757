package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Change describes a committed write on a stored entity.
type Change struct {
	Entity string
	ID     string
	Op     string
	Fields []string
}

// Handler reacts to a committed change. Handlers must not block for long.
type Handler func(ctx context.Context, change Change)

type Publisher interface {
	Publish(ctx context.Context, change Change)
}

type Bus interface {
	Publisher
	Subscribe(entity string, handler Handler)
}

type busImpl struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
}

func NewBus() Bus {
	return &busImpl{
		handlers: make(map[string][]Handler),
	}
}

func (b *busImpl) Subscribe(entity string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[entity] = append(b.handlers[entity], handler)
}

// Publish fans the change out to the entity's subscribers in the background,
// detached from the caller's cancellation.
func (b *busImpl) Publish(ctx context.Context, change Change) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[change.Entity]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	b.wg.Add(1)

	go func() {
		defer b.wg.Done()

		c := context.WithoutCancel(ctx)

		for _, handler := range handlers {
			b.dispatch(c, handler, change)
		}
	}()
}

func (b *busImpl) dispatch(ctx context.Context, handler Handler, change Change) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("entity", change.Entity).Str("id", change.ID).Msg("change handler panicked")
		}
	}()

	handler(ctx, change)
}

// Wait blocks until every in-flight dispatch has finished.
func Wait(bus Bus) {
	if impl, ok := bus.(*busImpl); ok {
		impl.wg.Wait()
	}
}

// Nop discards every change.
type Nop struct{}

func (Nop) Publish(context.Context, Change) {}

func (Nop) Subscribe(string, Handler) {}
