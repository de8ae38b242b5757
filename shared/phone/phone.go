package phone

import (
	"errors"
	"strings"
)

const (
	minDigits = 8
	maxDigits = 15
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Normalize converts a user supplied phone number into E.164 form ("+<digits>").
// Local numbers with a leading zero take countryCode, "00" prefixes are
// treated as an international prefix.
func Normalize(raw, countryCode string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}

	international := strings.HasPrefix(raw, "+")

	var digits strings.Builder

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		case r == '+' && digits.Len() == 0:
		default:
			return "", ErrInvalidPhone
		}
	}

	number := digits.String()

	switch {
	case international:
	case strings.HasPrefix(number, "00"):
		number = number[2:]
	case strings.HasPrefix(number, "0"):
		number = countryCode + strings.TrimLeft(number, "0")
	case countryCode != "" && strings.HasPrefix(number, countryCode):
	default:
		number = countryCode + number
	}

	if len(number) < minDigits || len(number) > maxDigits || number[0] == '0' {
		return "", ErrInvalidPhone
	}

	return "+" + number, nil
}

// Valid reports whether raw can be normalized.
func Valid(raw, countryCode string) bool {
	_, err := Normalize(raw, countryCode)

	return err == nil
}

// Mask hides all but the last four digits, for logs.
func Mask(phone string) string {
	const visible = 4

	if len(phone) <= visible {
		return phone
	}

	return strings.Repeat("*", len(phone)-visible) + phone[len(phone)-visible:]
}
