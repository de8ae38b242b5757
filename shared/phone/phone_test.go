package phone_test

import (
	"marketplace/shared/phone"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "local with leading zero", raw: "0812-3456-7890", want: "+6281234567890"},
		{name: "already international", raw: "+62 812 3456 7890", want: "+6281234567890"},
		{name: "double zero prefix", raw: "006281234567890", want: "+6281234567890"},
		{name: "country code without plus", raw: "6281234567890", want: "+6281234567890"},
		{name: "bare subscriber number", raw: "81234567890", want: "+6281234567890"},
		{name: "parentheses and dots", raw: "(0812) 3456.7890", want: "+6281234567890"},
		{name: "other country", raw: "+1 (415) 555-0100", want: "+14155550100"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "letters", raw: "0812abc", wantErr: true},
		{name: "too short", raw: "+62123", wantErr: true},
		{name: "too long", raw: "+6281234567890123", wantErr: true},
		{name: "plus in the middle", raw: "0812+345678", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.Normalize(tt.raw, "62")

			if tt.wantErr {
				assert.ErrorIs(t, err, phone.ErrInvalidPhone)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, phone.Valid("081234567890", "62"))
	assert.False(t, phone.Valid("abc", "62"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "**********7890", phone.Mask("+6281234567890"))
	assert.Equal(t, "123", phone.Mask("123"))
}
