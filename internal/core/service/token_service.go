package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// SessionTTL is how long an issued session token stays valid. Rotating
// the signing secret invalidates every outstanding token; that is
// acceptable for a stateless design.
const SessionTTL = 7 * 24 * time.Hour

// SessionClaims is the signed payload of a session token.
type SessionClaims struct {
	Role  domain.Role `json:"role"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens (HS256).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject.
func (s *TokenService) Issue(userID string, role domain.Role, email string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token. Malformed, tampered, or expired
// tokens all map to domain.ErrInvalidSession.
func (s *TokenService) Verify(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, domain.ErrInvalidSession
	}
	return claims, nil
}
