package gateways

import (
	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
	"github.com/ochairo/depsentry/internal/external-adapters/gpg"
)

// IntegrityChecker fills the supply-chain integrity evidence facet from
// verifiable artifacts. Unverifiable input degrades to the conservative
// false flag instead of failing the scoring run.
type IntegrityChecker struct {
	verifier *gpg.Verifier
	logger   interfaces.Logger
}

// NewIntegrityChecker creates an integrity checker.
func NewIntegrityChecker(logger interfaces.Logger) *IntegrityChecker {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &IntegrityChecker{
		verifier: gpg.NewVerifier(),
		logger:   logger,
	}
}

// AttestSignature verifies a package artifact against a detached
// signature and a public keyring, updating only the SignaturesVerified
// flag of the given evidence.
func (c *IntegrityChecker) AttestSignature(evidence entities.IntegrityEvidence, artifactPath, sigPath, keyringPath string) entities.IntegrityEvidence {
	if err := c.verifier.ImportKeyringFile(keyringPath); err != nil {
		c.logger.Warn("keyring import failed, signature unverified",
			interfaces.F("keyring", keyringPath),
			interfaces.F("error", err))
		evidence.SignaturesVerified = false
		return evidence
	}

	if err := c.verifier.VerifyFile(artifactPath, sigPath); err != nil {
		c.logger.Warn("signature verification failed",
			interfaces.F("artifact", artifactPath),
			interfaces.F("error", err))
		evidence.SignaturesVerified = false
		return evidence
	}

	evidence.SignaturesVerified = true
	return evidence
}
