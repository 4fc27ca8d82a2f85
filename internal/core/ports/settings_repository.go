package ports

import (
	"context"

	"foodbank/internal/core/domain/model/settings"
)

// SettingsRepository reads the singleton settings document. The ordering
// core never writes settings; the admin surface owning them lives outside
// this module.
type SettingsRepository interface {
	// Get retrieves the current settings snapshot.
	// Returns an ObjectNotFoundError if the singleton has not been seeded.
	Get(ctx context.Context) (settings.Settings, error)
}
