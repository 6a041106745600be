package ports

import "time"

// TokenClaims is the identity extracted from a verified bearer token.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-limited bearer tokens.
// Validity is purely a function of signature and expiry window; there is no
// revocation list.
type TokenService interface {
	// Issue mints a token carrying subject, issued-at, and expiry claims
	// plus any extra claims.
	Issue(subject string, extraClaims map[string]any) (string, error)
	// Verify fails closed: expired, malformed, or signature-mismatched
	// tokens are rejected with domain.ErrTokenExpired or
	// domain.ErrTokenInvalid. When expectedSubject is non-empty the token's
	// subject must match it.
	Verify(token, expectedSubject string) (*TokenClaims, error)
	// ExpirationSeconds is the configured token lifetime in seconds.
	ExpirationSeconds() int64
}
