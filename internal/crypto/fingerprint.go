package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"cryptonoise/internal/domain"
	"cryptonoise/internal/util/memzero"
)

// MinFingerprintLength is the shortest value Fingerprint will describe.
// Below it the value space is small enough to brute-force against the hash.
const MinFingerprintLength = 12

// Fingerprint returns a short hex fingerprint of a noise value, or "" when n
// is shorter than MinFingerprintLength.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars), which is
// enough to tell values apart in logs without revealing them.
func Fingerprint(n domain.Noise) string {
	if len(n) < MinFingerprintLength {
		return ""
	}
	b := []byte(n)
	defer memzero.Zero(b)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
