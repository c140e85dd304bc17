// Package constants holds configuration values shared across layers.
package constants

// Storage providers
const (
	StorageProviderFile   = "file"
	StorageProviderMemory = "memory"
	StorageProviderBlob   = "blob"
	StorageProviderSQLite = "sqlite"
	StorageProviderRedis  = "redis"
)

// Cart event sinks
const (
	EventsProviderNone   = "none"
	EventsProviderLocal  = "local"
	EventsProviderGoogle = "google"
)

// Storage keys, relative to the configured key prefix
const (
	DefaultKeyPrefix = "storefront"

	KeyGuestCart   = "guest_cart"
	KeyAccessToken = "access_token"
	KeyUserProfile = "user_profile"
)
