package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	serrors "github.com/amkisko/sex-cli/internal/errors"
)

// System is the production Store backed by the operating system's secret
// service via zalando/go-keyring. Calls may block on the platform daemon;
// there is no timeout at this layer.
type System struct{}

func (System) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %s/%s: %v", serrors.ErrKeyringEntryFailed, service, account, err)
	}
	return secret, nil
}

func (System) Set(service, account, secret string) error {
	if err := keyring.Set(service, account, secret); err != nil {
		return fmt.Errorf("%w: writing %s/%s: %v", serrors.ErrKeyringEntryFailed, service, account, err)
	}
	return nil
}

func (System) Delete(service, account string) error {
	err := keyring.Delete(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", serrors.ErrKeyringEntryFailed, service, account, err)
	}
	return nil
}
