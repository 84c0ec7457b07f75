// Package auth provides JWT issuance and validation plus bcrypt password
// hashing. The signing secret and token lifetime are injected by the
// composition root; nothing here reads the environment.
package auth

import (
	"time"

	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims holds the typed JWT payload. UserID is the subject's UUID string;
// the role is never embedded in the token and is resolved from the store on
// every request, so a membership change takes effect immediately.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed tokens.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a token service with the given HMAC secret and
// token lifetime.
func NewTokenService(secret string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if lifetime <= 0 {
		return nil, errs.NewValueIsRequiredError("lifetime")
	}

	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Generate creates a signed JWT for the given user.
func (s *TokenService) Generate(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate parses and validates a JWT string.
func (s *TokenService) Validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct{}

// NewBcryptHasher creates a bcrypt password hasher with the default cost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash returns a bcrypt hash of the plain-text password.
func (BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a bcrypt hash against the plain-text candidate.
func (BcryptHasher) Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
