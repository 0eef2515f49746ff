package keychain

import "errors"

// ErrNotFound indicates no secret is stored under the given entry.
// Absence is a normal condition for callers (not logged in yet, no
// device key generated yet) and is never wrapped with extra context.
var ErrNotFound = errors.New("secret not found in keychain")

// Store is the capability interface over the OS secret store. An entry is
// addressed by a (service, account) pair, matching how the platform secret
// services (macOS Keychain, Secret Service, Windows Credential Manager)
// address credentials.
//
// Implementations must return ErrNotFound from Get when the entry does not
// exist, so callers can distinguish absence from keyring failure.
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
	Delete(service, account string) error
}
