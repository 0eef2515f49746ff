package store

import (
	"errors"

	"github.com/amkisko/sex-cli/internal/keychain"
)

const tokenAccount = "auth-token"

// tokenService derives the secret-store service name for this
// organization's token. It depends only on the local name, so the same
// organization maps to the same entry across process runs.
func (o *Organization) tokenService() string {
	return appName + "-" + o.Name
}

// AuthToken reads the organization's bearer token from the secret store.
// An absent entry means "not logged in" and is reported through the bool,
// not as an error.
func (o *Organization) AuthToken() (string, bool, error) {
	token, err := o.keys.Get(o.tokenService(), tokenAccount)
	if errors.Is(err, keychain.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

// SetAuthToken writes the bearer token to the organization's secret-store
// entry. The token never touches the config file.
func (o *Organization) SetAuthToken(token string) error {
	return o.keys.Set(o.tokenService(), tokenAccount, token)
}

// ClearAuthToken removes the stored token. Clearing an organization that
// was never logged in is not an error.
func (o *Organization) ClearAuthToken() error {
	err := o.keys.Delete(o.tokenService(), tokenAccount)
	if errors.Is(err, keychain.ErrNotFound) {
		return nil
	}
	return err
}
