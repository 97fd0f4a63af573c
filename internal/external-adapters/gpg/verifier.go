// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier verifies detached GPG signatures using ProtonMail's go-crypto,
// a maintained, modern fork of golang.org/x/crypto/openpgp.
// This is in external-adapters to isolate the external dependency.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a new GPG verifier with an empty keyring.
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyring imports public keys from armored or binary keyring bytes.
func (v *Verifier) ImportKeyring(data []byte) error {
	entities, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		// Try reading as binary
		entities, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to read keyring: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in keyring")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// ImportKeyringFile imports public keys from a keyring file.
func (v *Verifier) ImportKeyringFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	return v.ImportKeyring(data)
}

// VerifyDetached verifies a detached signature over the given message.
// Armored and binary signatures are both accepted.
func (v *Verifier) VerifyDetached(message, signature []byte) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no GPG keys imported, call ImportKeyring first")
	}

	if len(signature) < 10 {
		return fmt.Errorf("signature too small to be a valid GPG signature")
	}

	isArmored := bytes.HasPrefix(signature, []byte("-----BEGIN PGP SIGNATURE---"))

	var err error
	if isArmored {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(message), bytes.NewReader(signature), nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, bytes.NewReader(message), bytes.NewReader(signature), nil)
	}

	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

// VerifyFile verifies a detached signature file over a data file.
func (v *Verifier) VerifyFile(dataPath, sigPath string) error {
	//nolint:gosec // G304: dataPath is user-provided for GPG verification
	message, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	//nolint:gosec // G304: sigPath is user-provided for GPG verification
	signature, err := os.ReadFile(sigPath)
	if err != nil {
		return fmt.Errorf("failed to read signature file: %w", err)
	}

	return v.VerifyDetached(message, signature)
}
