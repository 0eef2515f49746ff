package errors

import "errors"

// Keyring errors indicate failures talking to the OS secret store.
var (
	// ErrKeyringEntryFailed indicates a secret-store entry operation failed
	// (secret service unavailable, access denied, or backend error).
	ErrKeyringEntryFailed = errors.New("keyring entry operation failed")
)

// Cryptographic errors indicate failures during encryption or decryption of
// cached project names.
var (
	// ErrInvalidKeyLength indicates the stored device key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid device key length")

	// ErrMalformedCiphertext indicates an encrypted blob is shorter than the nonce.
	ErrMalformedCiphertext = errors.New("encrypted data is malformed")

	// ErrDecryptFailed indicates authenticated decryption failed (tampering or wrong key).
	ErrDecryptFailed = errors.New("failed to decrypt project name")

	// ErrInvalidEncoding indicates decrypted bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("decrypted project name is not valid UTF-8")
)

// Store errors indicate issues with the local configuration document.
var (
	// ErrConfigParse indicates the config file contains malformed JSON.
	ErrConfigParse = errors.New("failed to parse config file")

	// ErrOrganizationNotFound indicates the named organization is not configured.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrNotLoggedIn indicates no auth token is stored for the organization.
	ErrNotLoggedIn = errors.New("not logged in")
)

// API errors indicate failures talking to the remote bug tracker.
var (
	// ErrNotAuthenticated indicates the client has no auth token set.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginTimeout indicates the browser login flow did not complete in time.
	ErrLoginTimeout = errors.New("authentication timed out")
)
