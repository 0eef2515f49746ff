// Package store implements the secure local credential and project-cache
// store for sex-cli.
//
// The store owns two on-disk surfaces:
//
//   - A JSON configuration document at <user config dir>/sex-cli/config.json
//     holding organizations and their cached project names
//   - Secret-store entries, one for the device encryption key and one per
//     organization for its bearer token, addressed through the keychain
//     package
//
// # What is (and is not) in the config file
//
// Cached project display names are encrypted with NaCl secretbox under a
// 32-byte device-local key before they are written to the JSON document;
// each entry is a base64 blob of a fresh 24-byte nonce followed by the
// authenticated ciphertext. Auth tokens are never written to the document
// at all: each organization's secret-store entry is derived from its local
// name ("sex-cli-<name>" / "auth-token") and rebuilt at load time, so the
// plaintext file carries references only.
//
// # Key handling
//
// The device key lives in the secret store under "sex-cli" /
// "project-encryption-key" and is generated lazily on first use. It is
// fetched fresh for every encrypt and decrypt call rather than cached in
// memory: the store favors a simple invalidation model over saving a
// keychain round-trip, and the key buffer is zeroed as soon as the
// operation completes. If two processes generate the first key
// concurrently, the last write wins and the loser's ciphertexts are
// unrecoverable; this is an accepted limitation.
//
// # Failure model
//
// Decryption fails closed: tampered or truncated blobs, wrong keys, and
// non-UTF-8 plaintext all return errors and never partial output. A
// missing config file loads as a fresh empty document, and a missing token
// or uncached project is an absent value, not an error. Everything else
// propagates to the caller wrapped with the file path or entry name. Saves
// are atomic (temp file + rename), so an interrupted save never leaves a
// truncated document.
//
// Operations are synchronous and single-threaded; concurrent CLI
// invocations race on a last-writer-wins basis with no file locking.
package store
