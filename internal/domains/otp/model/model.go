package model

import "time"

const (
	TableName  = "otp_challenges"
	EntityName = "otp"

	FieldID         = "id"
	FieldPhone      = "phone"
	FieldPurpose    = "purpose"
	FieldCodeHash   = "code_hash"
	FieldExpiresAt  = "expires_at"
	FieldVerified   = "verified"
	FieldVerifiedAt = "verified_at"
	FieldAttempts   = "attempts"
	FieldCreatedAt  = "created_at"
)

const (
	PurposeRegistration = "registration"
	PurposeLogin        = "login"
)

// Challenge is a one-time code issued to a phone for a purpose. The code is
// stored as a bcrypt hash.
type Challenge struct {
	ID         string     `db:"id"`
	Phone      string     `db:"phone"`
	Purpose    string     `db:"purpose"`
	CodeHash   string     `db:"code_hash"`
	ExpiresAt  time.Time  `db:"expires_at"`
	Verified   bool       `db:"verified"`
	VerifiedAt *time.Time `db:"verified_at"`
	Attempts   int        `db:"attempts"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Live reports whether the challenge can still be verified at now.
func (c Challenge) Live(now time.Time) bool {
	return !c.Verified && now.Before(c.ExpiresAt)
}
