package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CredentialRepository reads and writes the access credential left by the
// authentication provider. The cart never issues or refreshes credentials.
type CredentialRepository interface {
	// Load returns the stored credential, or nil when none is stored.
	Load(ctx context.Context) (*entity.Credential, error)

	// Save stores the credential, replacing any previous one.
	Save(ctx context.Context, credential *entity.Credential) error

	// Remove deletes the stored credential and profile.
	Remove(ctx context.Context) error
}
