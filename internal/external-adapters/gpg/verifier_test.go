package gpg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Test importing an invalid armored keyring
func TestVerifier_ImportKeyring_InvalidData(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyring([]byte("not a gpg keyring"))

	if err == nil {
		t.Fatal("Expected error for invalid keyring data, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read keyring") {
		t.Errorf("Expected 'failed to read keyring' error, got: %v", err)
	}
}

// Test importing a keyring from a nonexistent file
func TestVerifier_ImportKeyringFile_NonexistentFile(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyringFile("/nonexistent/keyring.asc")

	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read key file") {
		t.Errorf("Expected 'failed to read key file' error, got: %v", err)
	}
}

// Test importing a keyring file with no parseable keys
func TestVerifier_ImportKeyringFile_GarbageContent(t *testing.T) {
	v := NewVerifier()
	tmpDir := t.TempDir()

	keyPath := filepath.Join(tmpDir, "garbage.asc")
	keyContent := `-----BEGIN PGP PUBLIC KEY BLOCK-----

mQENBGPexAMBCAC1kLz...
-----END PGP PUBLIC KEY BLOCK-----`

	if err := os.WriteFile(keyPath, []byte(keyContent), 0600); err != nil {
		t.Fatalf("Failed to create test key file: %v", err)
	}

	if err := v.ImportKeyringFile(keyPath); err == nil {
		t.Fatal("Expected error for unparseable keyring, got nil")
	}
}

// Test VerifyDetached without keys imported
func TestVerifier_VerifyDetached_NoKeysImported(t *testing.T) {
	v := NewVerifier()

	err := v.VerifyDetached([]byte("message"), []byte("fake signature"))

	if err == nil {
		t.Fatal("Expected error when no keys are imported, got nil")
	}
	if !strings.Contains(err.Error(), "no GPG keys imported") {
		t.Errorf("Expected 'no GPG keys imported' error, got: %v", err)
	}
}

// Test VerifyDetached rejecting a truncated signature
func TestVerifier_VerifyDetached_SignatureTooSmall(t *testing.T) {
	v := NewVerifier()
	v.keyring = append(v.keyring, nil) // non-empty keyring to reach the size guard

	err := v.VerifyDetached([]byte("message"), []byte("x"))

	if err == nil {
		t.Fatal("Expected error for truncated signature, got nil")
	}
	if !strings.Contains(err.Error(), "too small") {
		t.Errorf("Expected 'too small' error, got: %v", err)
	}
}

// Test VerifyFile with nonexistent inputs
func TestVerifier_VerifyFile_NonexistentFiles(t *testing.T) {
	v := NewVerifier()
	tmpDir := t.TempDir()

	// Nonexistent data file
	err := v.VerifyFile("/nonexistent/artifact.tgz", "/nonexistent/artifact.sig")
	if err == nil {
		t.Fatal("Expected error for nonexistent data file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}

	// Nonexistent signature file
	dataPath := filepath.Join(tmpDir, "artifact.tgz")
	if err := os.WriteFile(dataPath, []byte("artifact bytes"), 0600); err != nil {
		t.Fatal(err)
	}

	err = v.VerifyFile(dataPath, "/nonexistent/artifact.sig")
	if err == nil {
		t.Fatal("Expected error for nonexistent signature file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read signature file") {
		t.Errorf("Expected 'failed to read signature file' error, got: %v", err)
	}
}
