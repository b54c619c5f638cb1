package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Tokens are stateless: there is no revocation list, an issued token stays
// valid until natural expiry. That is accepted risk, not an oversight.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService fails when the signing secret is empty so a misconfigured
// process dies at startup instead of issuing unverifiable tokens.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed HS256 token embedding the subject and role.
func (s *TokenService) Issue(subjectID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the embedded identity.
// Expired tokens yield domain.ErrExpiredToken; anything else wrong with the
// token yields domain.ErrInvalidToken. Verification has no side effects.
func (s *TokenService) Verify(raw string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if sub == "" || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{SubjectID: sub, Role: role}, nil
}
