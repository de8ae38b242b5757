package timezone_test

import (
	"marketplace/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		wantName string
		wantErr  bool
	}{
		{name: "empty selects utc", zone: "", wantName: "UTC"},
		{name: "iana name", zone: "Asia/Jakarta", wantName: "Asia/Jakarta"},
		{name: "unknown name", zone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, timezone.Use("UTC"))

			err := timezone.Use(tt.zone)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "UTC", timezone.Location().String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, timezone.Location().String())
		})
	}
}

func TestFormat(t *testing.T) {
	require.NoError(t, timezone.Use("Asia/Jakarta"))
	t.Cleanup(func() { _ = timezone.Use("UTC") })

	at := time.Date(2026, 5, 1, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-05-02 03:30", timezone.Format(at, "2006-01-02 15:04"))
	assert.Equal(t, "Asia/Jakarta", timezone.In(at).Location().String())
	assert.WithinDuration(t, time.Now(), timezone.Now(), time.Second)
}

func TestFormatOptional(t *testing.T) {
	require.NoError(t, timezone.Use("UTC"))

	assert.Nil(t, timezone.FormatOptional(nil, time.RFC3339))

	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	formatted := timezone.FormatOptional(&at, time.RFC3339)

	require.NotNil(t, formatted)
	assert.Equal(t, "2026-05-01T08:00:00Z", *formatted)
}
