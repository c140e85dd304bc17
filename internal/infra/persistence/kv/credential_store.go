package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// credentialStore keeps the raw access token and the JSON profile under two keys,
// the layout the authentication provider writes.
type credentialStore struct {
	store      repository.KeyValueStore
	tokenKey   string
	profileKey string
	logger     *slog.Logger
}

// NewCredentialStore returns the credential repository.
func NewCredentialStore(store repository.KeyValueStore, cfg *config.Config, logger *slog.Logger) repository.CredentialRepository {
	return &credentialStore{
		store:      store,
		tokenKey:   namespacedKey(cfg, constants.KeyAccessToken),
		profileKey: namespacedKey(cfg, constants.KeyUserProfile),
		logger:     logger,
	}
}

func (s *credentialStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Load returns nil when no token is stored. A corrupt profile is dropped, not fatal.
func (s *credentialStore) Load(ctx context.Context) (*entity.Credential, error) {
	token, err := s.store.Get(ctx, s.tokenKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load access token")
	}
	if len(token) == 0 {
		return nil, nil
	}

	credential := &entity.Credential{AccessToken: string(token)}

	data, err := s.store.Get(ctx, s.profileKey)
	switch {
	case errors.Is(err, repository.ErrKeyNotFound):
	case err != nil:
		s.log(ctx).Warn("Failed to read user profile", slog.Any("error", err))
	default:
		var profile entity.UserProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			s.log(ctx).Warn("Stored user profile is corrupt, ignoring it", slog.Any("error", err))
		} else {
			credential.Profile = &profile
		}
	}

	return credential, nil
}

// Save stores the token and replaces the profile record.
func (s *credentialStore) Save(ctx context.Context, credential *entity.Credential) error {
	if credential == nil || credential.AccessToken == "" {
		return errors.New("credential without access token")
	}

	if credential.Profile == nil {
		if err := s.store.Delete(ctx, s.profileKey); err != nil {
			return errors.Wrap(err, "remove user profile")
		}
	} else {
		data, err := json.Marshal(credential.Profile)
		if err != nil {
			return errors.Wrap(err, "marshal user profile")
		}
		if err := s.store.Set(ctx, s.profileKey, data); err != nil {
			return errors.Wrap(err, "save user profile")
		}
	}

	// Token last: observers treat its presence as the login.
	return errors.Wrap(s.store.Set(ctx, s.tokenKey, []byte(credential.AccessToken)), "save access token")
}

// Remove deletes the token first so the session ends even if the profile delete fails.
func (s *credentialStore) Remove(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.tokenKey); err != nil {
		return errors.Wrap(err, "remove access token")
	}

	return errors.Wrap(s.store.Delete(ctx, s.profileKey), "remove user profile")
}
