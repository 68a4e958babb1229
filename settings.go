package invoicefmt

import "context"

// Well-known settings keys.
const (
	// SettingProjectDir remembers the last project directory used for
	// conversion so subsequent runs can omit it.
	SettingProjectDir = "project_dir"
)

// SettingsService is a small local key/value store for user settings
// that persist between runs.
type SettingsService interface {
	// Get retrieves a setting value. Returns ENOTFOUND if the key has
	// not been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a setting value, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a setting. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
