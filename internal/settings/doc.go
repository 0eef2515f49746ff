// Package settings manages non-secret user preferences for sex-cli.
//
// Preferences are stored in TOML format at
// <user config dir>/sex-cli/settings.toml:
//
//	default_organization = "acme"
//	base_url = "https://sentry.example.com/api/0"
//	refresh_seconds = 10
//
// A missing file loads as defaults. This file intentionally cannot hold
// secrets; tokens and key material live in the OS keychain and the
// encrypted project cache (see the store package).
package settings
