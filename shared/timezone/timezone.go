package timezone

import (
	"fmt"
	"marketplace/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultName = "UTC"

var (
	mu       sync.RWMutex
	location *time.Location
)

// Use switches the application location. An empty name selects UTC.
func Use(name string) error {
	if name == "" {
		name = defaultName
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	mu.Lock()
	location = loc
	mu.Unlock()

	return nil
}

// Location returns the application location, loading APP_TIMEZONE on first use.
func Location() *time.Location {
	mu.RLock()
	loc := location
	mu.RUnlock()

	if loc != nil {
		return loc
	}

	name := config.Get().App.Timezone
	if err := Use(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("falling back to UTC")

		mu.Lock()
		location = time.UTC
		mu.Unlock()

		return time.UTC
	}

	return Location()
}

func Now() time.Time {
	return time.Now().In(Location())
}

func In(t time.Time) time.Time {
	return t.In(Location())
}

func Format(t time.Time, layout string) string {
	return In(t).Format(layout)
}

// FormatOptional formats t when set and returns nil otherwise.
func FormatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}

	formatted := Format(*t, layout)

	return &formatted
}
