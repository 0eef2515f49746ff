// Package errors provides typed error values for the sex-cli application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Keyring errors: OS secret store failures (ErrKeyringEntryFailed)
//   - Crypto errors: Project-name encryption failures (ErrDecryptFailed)
//   - Store errors: Local configuration issues (ErrOrganizationNotFound)
//   - API errors: Remote bug-tracker failures (ErrNotAuthenticated)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(blob) < nonceLength {
//	    return "", errors.ErrMalformedCiphertext
//	}
//
// Handle errors in the CLI layer:
//
//	name, err := cfg.Project("acme", "web")
//	if errors.Is(err, serrors.ErrDecryptFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading config file %s: %w", path, err)
package errors
