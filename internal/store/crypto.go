package store

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/nacl/secretbox"

	serrors "github.com/amkisko/sex-cli/internal/errors"
	"github.com/amkisko/sex-cli/internal/keychain"
)

const (
	keyringService = appName
	keyringAccount = "project-encryption-key"

	keyLength   = 32
	nonceLength = 24
)

// deviceKey obtains the device-local symmetric key from the secret store,
// generating and persisting a fresh one on first use. The key is re-read on
// every call rather than cached in memory; see the package documentation for
// the trade-off. Callers must zero the returned key when done.
func deviceKey(keys keychain.Store) (*[keyLength]byte, error) {
	encoded, err := keys.Get(keyringService, keyringAccount)
	if errors.Is(err, keychain.ErrNotFound) {
		return generateDeviceKey(keys)
	}
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: stored device key is not valid base64: %v", serrors.ErrInvalidKeyLength, err)
	}
	if len(raw) != keyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", serrors.ErrInvalidKeyLength, keyLength, len(raw))
	}

	var key [keyLength]byte
	copy(key[:], raw)
	zeroBytes(raw)
	return &key, nil
}

// generateDeviceKey creates 32 random bytes and persists them before
// returning. If two processes race here before any key exists, the last
// write wins and data encrypted under the losing key becomes
// undecryptable; this is an accepted limitation of a single-user CLI.
func generateDeviceKey(keys keychain.Store) (*[keyLength]byte, error) {
	var key [keyLength]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate device key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key[:])
	if err := keys.Set(keyringService, keyringAccount, encoded); err != nil {
		zeroKey(&key)
		return nil, err
	}
	return &key, nil
}

// encryptName encrypts a project display name under the device key and
// returns a self-contained blob of nonce followed by the authenticated
// ciphertext.
func encryptName(keys keychain.Store, name string) ([]byte, error) {
	key, err := deviceKey(keys)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	var nonce [nonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], []byte(name), &nonce, key), nil
}

// decryptName reverses encryptName. It fails closed: a structurally short
// blob, an authentication failure, or non-UTF-8 plaintext each return an
// error and never partial output.
func decryptName(keys keychain.Store, blob []byte) (string, error) {
	if len(blob) < nonceLength {
		return "", fmt.Errorf("%w: %d bytes is shorter than the %d-byte nonce", serrors.ErrMalformedCiphertext, len(blob), nonceLength)
	}

	key, err := deviceKey(keys)
	if err != nil {
		return "", err
	}
	defer zeroKey(key)

	var nonce [nonceLength]byte
	copy(nonce[:], blob[:nonceLength])

	plaintext, ok := secretbox.Open(nil, blob[nonceLength:], &nonce, key)
	if !ok {
		return "", serrors.ErrDecryptFailed
	}
	if !utf8.Valid(plaintext) {
		return "", serrors.ErrInvalidEncoding
	}
	return string(plaintext), nil
}

func zeroKey(key *[keyLength]byte) {
	for i := range key {
		key[i] = 0
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
