// Package secret hashes short-lived secrets such as one-time codes so they are
// never stored in clear text.
package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const Cost = bcrypt.DefaultCost

var (
	ErrEmpty    = errors.New("secret cannot be empty")
	ErrMismatch = errors.New("secret does not match")
	ErrTooLong  = errors.New("secret is longer than 72 bytes")
)

const maxLength = 72

func Hash(value string) (string, error) {
	switch {
	case value == "":
		return "", ErrEmpty
	case len(value) > maxLength:
		return "", ErrTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(value), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(bytes), nil
}

// Verify returns ErrMismatch when value does not match hash, and a wrapped
// error when hash itself is malformed.
func Verify(value, hash string) error {
	if value == "" || hash == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}

	return fmt.Errorf("failed to verify secret: %w", err)
}
