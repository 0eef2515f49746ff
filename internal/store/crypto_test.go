package store

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	serrors "github.com/amkisko/sex-cli/internal/errors"
	"github.com/amkisko/sex-cli/internal/keychain"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	keys := keychain.NewMemory()

	names := []string{
		"Web App",
		"",
		"backend-api",
		"Proyecto de facturación",
		"日本語プロジェクト",
		"name with\nnewline and \t tab",
	}

	for _, name := range names {
		blob, err := encryptName(keys, name)
		if err != nil {
			t.Fatalf("encryptName(%q) failed: %v", name, err)
		}

		decrypted, err := decryptName(keys, blob)
		if err != nil {
			t.Fatalf("decryptName failed for %q: %v", name, err)
		}
		if decrypted != name {
			t.Errorf("round trip mismatch: got %q, want %q", decrypted, name)
		}
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	keys := keychain.NewMemory()

	first, err := encryptName(keys, "Web App")
	if err != nil {
		t.Fatalf("encryptName failed: %v", err)
	}
	second, err := encryptName(keys, "Web App")
	if err != nil {
		t.Fatalf("encryptName failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("encrypting the same name twice produced identical blobs")
	}
}

func TestDecryptDetectsTampering(t *testing.T) {
	keys := keychain.NewMemory()

	blob, err := encryptName(keys, "Web App")
	if err != nil {
		t.Fatalf("encryptName failed: %v", err)
	}

	// Flip one bit in every byte position of the ciphertext region in turn.
	for i := nonceLength; i < len(blob); i++ {
		tampered := make([]byte, len(blob))
		copy(tampered, blob)
		tampered[i] ^= 0x01

		_, err := decryptName(keys, tampered)
		if !errors.Is(err, serrors.ErrDecryptFailed) {
			t.Fatalf("flipping byte %d: expected ErrDecryptFailed, got %v", i, err)
		}
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	keys := keychain.NewMemory()

	blob, err := encryptName(keys, "Web App")
	if err != nil {
		t.Fatalf("encryptName failed: %v", err)
	}

	// A different backing store generates a different device key.
	otherKeys := keychain.NewMemory()
	if _, err := decryptName(otherKeys, blob); !errors.Is(err, serrors.ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed with wrong key, got %v", err)
	}
}

func TestDecryptMalformedBlob(t *testing.T) {
	keys := keychain.NewMemory()

	short := [][]byte{
		nil,
		{},
		{0x01},
		make([]byte, nonceLength-1),
	}

	for _, blob := range short {
		_, err := decryptName(keys, blob)
		if !errors.Is(err, serrors.ErrMalformedCiphertext) {
			t.Errorf("blob of %d bytes: expected ErrMalformedCiphertext, got %v", len(blob), err)
		}
	}

	// Exactly nonce-length is structurally valid but has no ciphertext to
	// authenticate, so it fails at decryption rather than the length check.
	_, err := decryptName(keys, make([]byte, nonceLength))
	if !errors.Is(err, serrors.ErrDecryptFailed) {
		t.Errorf("nonce-only blob: expected ErrDecryptFailed, got %v", err)
	}
}

func TestDeviceKeyStability(t *testing.T) {
	keys := keychain.NewMemory()

	first, err := deviceKey(keys)
	if err != nil {
		t.Fatalf("deviceKey failed: %v", err)
	}
	firstCopy := *first

	second, err := deviceKey(keys)
	if err != nil {
		t.Fatalf("deviceKey failed on second call: %v", err)
	}

	if firstCopy != *second {
		t.Error("two consecutive deviceKey calls returned different keys")
	}
}

func TestDeviceKeyPersistsInStore(t *testing.T) {
	keys := keychain.NewMemory()

	key, err := deviceKey(keys)
	if err != nil {
		t.Fatalf("deviceKey failed: %v", err)
	}

	encoded, err := keys.Get(keyringService, keyringAccount)
	if err != nil {
		t.Fatalf("device key entry missing from keychain: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("stored device key is not base64: %v", err)
	}
	if !bytes.Equal(raw, key[:]) {
		t.Error("stored key does not match the returned key")
	}
}

func TestDeviceKeyRejectsWrongLength(t *testing.T) {
	keys := keychain.NewMemory()

	// 16 bytes instead of 32. Must fail, never silently truncate or pad.
	if err := keys.Set(keyringService, keyringAccount, base64.StdEncoding.EncodeToString(make([]byte, 16))); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := deviceKey(keys); !errors.Is(err, serrors.ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}

func TestDeviceKeyRejectsInvalidBase64(t *testing.T) {
	keys := keychain.NewMemory()

	if err := keys.Set(keyringService, keyringAccount, "not-base64!!!"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := deviceKey(keys); !errors.Is(err, serrors.ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}
