// Package entity contains the core business objects of the project.
package entity

import "time"

// UserProfile is the profile record handed over by the authentication provider
// together with the access token.
type UserProfile struct {
	ID    ID       `json:"id"`
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Credential is what the authentication provider leaves in local storage after a login.
type Credential struct {
	AccessToken string       // Bearer token sent to the remote cart service.
	Profile     *UserProfile // Optional profile record stored next to the token.
}

// AuthSession is the observed authentication state.
type AuthSession struct {
	Authenticated bool         `json:"authenticated"`        // A valid access credential is present.
	Fingerprint   string       `json:"-"`                    // Short hash of the token; distinguishes one login from the next.
	Profile       *UserProfile `json:"profile,omitempty"`    // Profile stored with the credential, if any.
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"` // Credential expiry when the token declares one.
}

// SameLogin reports whether two observations describe the same login.
func (s AuthSession) SameLogin(other AuthSession) bool {
	if s.Authenticated != other.Authenticated {
		return false
	}

	return !s.Authenticated || s.Fingerprint == other.Fingerprint
}
