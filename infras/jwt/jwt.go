package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/shared/clock"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	defaultSessionDays       = 30
	defaultVerificationMin   = 30
	hoursPerDay              = 24
	bearerPrefix             = "Bearer "
	verificationTokenSubject = "otp"
)

// TokenType represents the type of JWT token
type TokenType string

const (
	SessionToken      TokenType = "session"
	VerificationToken TokenType = "verification"
)

// Claims represents the JWT claims structure. Session tokens carry the account
// fields, verification tokens carry the OTP challenge fields.
type Claims struct {
	AccountID   string    `json:"account_id,omitempty"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role,omitempty"`
	AccountType string    `json:"account_type,omitempty"`
	ChallengeID string    `json:"challenge_id,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	TokenID     string    `json:"token_id"`
	Type        TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Token is a signed token and the moment it stops being valid.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

type SessionSubject struct {
	AccountID   string
	Phone       string
	Role        string
	AccountType string
}

type VerificationSubject struct {
	ChallengeID string
	Phone       string
	Purpose     string
}

// JWT handles JWT operations
type JWT interface {
	GenerateSession(subject SessionSubject) (Token, error)
	GenerateVerification(subject VerificationSubject) (Token, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
	clock  clock.Clock
}

// New creates a new JWT service
func New(cfg *config.Config, clk clock.Clock) JWT {
	return &Service{
		config: cfg,
		clock:  clk,
	}
}

// GenerateSession issues a bearer session with a fixed lifetime.
func (s *Service) GenerateSession(subject SessionSubject) (Token, error) {
	days := s.config.Session.ExpireDays
	if days <= 0 {
		days = defaultSessionDays
	}

	claims := Claims{
		AccountID:   subject.AccountID,
		Phone:       subject.Phone,
		Role:        subject.Role,
		AccountType: subject.AccountType,
	}

	token, err := s.generateToken(claims, SessionToken, subject.AccountID, time.Duration(days)*hoursPerDay*time.Hour)
	if err != nil {
		return Token{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, nil
}

// GenerateVerification issues a short lived proof that a phone passed an OTP check.
func (s *Service) GenerateVerification(subject VerificationSubject) (Token, error) {
	minutes := s.config.OTP.VerificationWindowMin
	if minutes <= 0 {
		minutes = defaultVerificationMin
	}

	claims := Claims{
		Phone:       subject.Phone,
		ChallengeID: subject.ChallengeID,
		Purpose:     subject.Purpose,
	}

	token, err := s.generateToken(claims, VerificationToken, verificationTokenSubject, time.Duration(minutes)*time.Minute)
	if err != nil {
		return Token{}, fmt.Errorf("failed to generate verification token: %w", err)
	}

	return token, nil
}

// generateToken signs claims with the secret of tokenType
func (s *Service) generateToken(claims Claims, tokenType TokenType, subject string, lifetime time.Duration) (Token, error) {
	issuedAt := s.clock.Now()
	expiresAt := issuedAt.Add(lifetime)
	tokenID := uuid.New().String()

	claims.TokenID = tokenID
	claims.Type = tokenType
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		Issuer:    s.config.App.Name,
		Subject:   subject,
		ID:        tokenID,
	}

	secret, err := s.secret(tokenType)
	if err != nil {
		return Token{}, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{Value: signedToken, ExpiresAt: expiresAt}, nil
}

func (s *Service) secret(tokenType TokenType) ([]byte, error) {
	switch tokenType {
	case SessionToken:
		return []byte(s.config.Session.Secret), nil
	case VerificationToken:
		return []byte(s.config.Session.VerificationSecret), nil
	default:
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	secret, err := s.secret(tokenType)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(bearerPrefix):], nil
}
