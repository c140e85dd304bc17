package service

import (
	"time"

	"github.com/pkg/errors"
)

// Credential inspection failures
var (
	ErrCredentialEmpty     = errors.New("credential is empty")
	ErrCredentialMalformed = errors.New("credential is malformed")
	ErrCredentialExpired   = errors.New("credential has expired")
)

// CredentialInfo is what can be learned from an access token without owning its signing key.
type CredentialInfo struct {
	Subject   string     // Token subject, when the token declares one.
	Email     string     // Email claim, when present.
	Roles     []string   // Roles claim, when present.
	ExpiresAt *time.Time // Expiry, when the token declares one.
	Opaque    bool       // The token is not a JWT; validity is decided by presence only.
}

// CredentialInspector decides whether a stored access token can still be used.
type CredentialInspector interface {
	// Inspect returns the token details, or an error when the token is empty or expired.
	Inspect(token string) (*CredentialInfo, error)

	// Fingerprint returns a short, non-reversible identifier of the token.
	Fingerprint(token string) string
}
