package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token with subject, issued-at, and expiry claims. Extra
// claims are merged in but cannot override the registered ones.
func (s *TokenService) Issue(subject string, extraClaims map[string]any) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, failing closed. Expired tokens are
// reported as domain.ErrTokenExpired; everything else (malformed input, bad
// signature, wrong algorithm, subject mismatch) as domain.ErrTokenInvalid.
func (s *TokenService) Verify(token, expectedSubject string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	if expectedSubject != "" && subject != expectedSubject {
		return nil, domain.ErrTokenInvalid
	}

	out := &ports.TokenClaims{Subject: subject}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// ExpirationSeconds is the configured token lifetime in seconds.
func (s *TokenService) ExpirationSeconds() int64 {
	return int64(s.ttl.Seconds())
}
