package service

import (
	"crypto/rand"
	"fmt"
	"marketplace/shared/timezone"
	"math/big"
	"time"
)

const (
	numberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	numberSuffix   = 6
)

// newNumber returns a human readable booking number of the form
// BK-YYYYMMDD-XXXXXX.
func newNumber(now time.Time) (string, error) {
	suffix := make([]byte, numberSuffix)
	limit := big.NewInt(int64(len(numberAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}

		suffix[i] = numberAlphabet[n.Int64()]
	}

	return fmt.Sprintf("BK-%s-%s", timezone.Format(now, "20060102"), suffix), nil
}
