// Package keychain abstracts the operating system's secret store behind a
// small capability interface.
//
// Two implementations exist:
//
//   - System: the real OS secret service (macOS Keychain, freedesktop
//     Secret Service, Windows Credential Manager) via zalando/go-keyring
//   - Memory: an in-process map for tests
//
// Entries are addressed by a (service, account) pair. Get returns
// ErrNotFound when an entry is absent; callers treat absence as a normal
// state ("not logged in", "no device key yet"), never as a failure.
//
// The store and crypto layers depend only on the Store interface, so an
// alternative backend (environment variables, an encrypted file vault) can
// be substituted without touching token or key logic.
package keychain
