// Package settings loads tool preferences: where the mapping file lives
// and which product id to validate against by default.
//
// Preferences come from an optional padstorm.toml in the user config
// directory, overridden by PADSTORM_* environment variables, overridden in
// turn by command-line flags (handled by the caller). A missing settings
// file is not an error; everything has a default.
package settings
