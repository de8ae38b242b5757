package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCode returns a uniformly random numeric code of the given length,
// leading zeros included.
func generateCode(length int) (string, error) {
	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
