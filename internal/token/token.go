// Package token issues and verifies the signed bearer tokens used for authentication.
package token

import (
	"fmt"
	"strconv"
	"time"

	"soapbox/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "soapbox-api"
	audience = "soapbox-client"
)

// Service signs and verifies HS256 bearer tokens carrying a user identity
// claim. Validity is purely signature plus expiry; there is no revocation.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the given shared secret and token
// lifetime in minutes.
func NewService(secret string, expireMinutes int) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}
}

// Issue creates a signed token for the given user ID.
func (s *Service) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// Verify parses raw, checks signature, expiry, issuer and audience, and
// returns the user ID carried in the subject claim. Any failure returns an
// UNAUTHORIZED taxonomy error.
func (s *Service) Verify(raw string) (uint, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token claims")
	}

	if iss, issOk := claims["iss"].(string); !issOk || iss != issuer {
		return 0, models.NewUnauthorizedError("Invalid token issuer")
	}
	if aud, audOk := claims["aud"].(string); !audOk || aud != audience {
		return 0, models.NewUnauthorizedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token structure - missing subject")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid user ID in token")
	}

	return uint(userID), nil
}
