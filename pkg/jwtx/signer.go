package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and gives you back the claims if it's
// legit. The HTTP middleware only needs this, so handlers can be tested with
// a stub instead of a real signing secret.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Issuer mints a session token for a user id. Services depend on this rather
// than the concrete Signer so signing failures can be exercised in tests.
type Issuer interface {
	Issue(userID string) (string, error)
}

// Signer mints and verifies HS256 session tokens with a single process-wide
// secret. The secret is read-only after construction; rotation is a restart.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner builds a Signer. The secret must be non-empty; a service that
// signs tokens with an empty key is misconfigured and should fail at startup
// rather than at the first login.
func NewSigner(secret []byte, issuer string, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// Issue signs a session token for the given user id. Signing failures are
// returned as errors, never as a token-shaped string.
func (s *Signer) Issue(userID string) (string, error) {
	return s.IssueAt(userID, time.Now().UTC())
}

// IssueAt is like Issue but with an explicit issue time, useful for tests.
func (s *Signer) IssueAt(userID string, now time.Time) (string, error) {
	if userID == "" {
		return "", ErrNoSubject
	}

	claims := NewSessionClaims(userID, s.issuer, s.ttl, now)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a session token: signature, algorithm, issuer
// and time bounds. It returns the claims on success.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrAlgMismatch
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return Claims{}, ErrIssuer
	}
	if claims.Subject == "" {
		return Claims{}, ErrNoSubject
	}

	return claims, nil
}

// TTL reports the configured token lifetime.
func (s *Signer) TTL() time.Duration { return s.ttl }

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return err
	}
}
