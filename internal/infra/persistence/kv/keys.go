// Package kv implements the local repositories on top of a repository.KeyValueStore.
package kv

import (
	"storefront/config"
	"storefront/internal/domain/constants"
)

// namespacedKey prefixes name with the configured key prefix.
func namespacedKey(cfg *config.Config, name string) string {
	prefix := constants.DefaultKeyPrefix
	if cfg != nil && cfg.Storage != nil && cfg.Storage.KeyPrefix != "" {
		prefix = cfg.Storage.KeyPrefix
	}

	return prefix + ":" + name
}
