// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const fingerprintLength = 16

// jwtInspector is a concrete implementation of the CredentialInspector interface.
// The signing key belongs to the authentication provider, so tokens are decoded
// without verification; only the expiry is enforced. The remote cart service
// remains the authority and answers 401 for anything it does not accept.
type jwtInspector struct {
	parser    *jwt.Parser
	clockSkew time.Duration // Tolerance applied to exp.
	now       func() time.Time
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector(cfg *config.Config) service.CredentialInspector {
	var skew time.Duration
	if cfg != nil && cfg.Auth != nil {
		skew = cfg.Auth.ClockSkew
	}

	return &jwtInspector{
		parser:    jwt.NewParser(),
		clockSkew: skew,
		now:       time.Now,
	}
}

// Inspect decodes the token. Tokens that are not JWTs are accepted as opaque.
func (s *jwtInspector) Inspect(token string) (*service.CredentialInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, service.ErrCredentialEmpty
	}

	if strings.Count(token, ".") != 2 {
		return &service.CredentialInfo{Opaque: true}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(service.ErrCredentialMalformed, err.Error())
	}

	info := &service.CredentialInfo{}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(service.ErrCredentialMalformed, err.Error())
	}
	if exp != nil {
		expiresAt := exp.Time
		if s.now().After(expiresAt.Add(s.clockSkew)) {
			return nil, errors.Wrapf(service.ErrCredentialExpired, "expired at %s", expiresAt.UTC().Format(time.RFC3339))
		}
		info.ExpiresAt = &expiresAt
	}

	// Some providers put a numeric user id in sub or user_id instead of a string subject.
	info.Subject = formatClaim(claims["sub"])
	if info.Subject == "" {
		info.Subject = formatClaim(claims["user_id"])
	}

	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}

	if roles, ok := claims["roles"].([]any); ok {
		for _, role := range roles {
			if r, ok := role.(string); ok {
				info.Roles = append(info.Roles, r)
			}
		}
	}

	return info, nil
}

func formatClaim(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Fingerprint returns a hex prefix of the token's SHA-256 digest.
func (s *jwtInspector) Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])[:fingerprintLength]
}
