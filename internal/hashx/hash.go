// Package hashx computes the canonical content digest used as the
// integrity anchor for evidence files, and owns the normalization rules
// for comparing digests.
//
// Digests are produced in several places (upload, verification, Merkle
// leaves) and rendered inconsistently across the system: some call sites
// carry a "0x" prefix for interoperability with the commit-token
// namespace, others do not. Every equality check therefore goes through
// Equal, which normalizes both sides first. Raw string comparison of
// digests anywhere else is a bug.
package hashx

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sum returns the SHA-256 digest of b as lowercase hex without a prefix.
// The digest is computed over the entire byte slice and depends on
// nothing but the content: not the file name, MIME type or upload time.
func Sum(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// Prefixed renders a digest with the "0x" prefix used when a hash is
// displayed next to commit tokens.
func Prefixed(digest string) string {
	return "0x" + Normalize(digest)
}

// Normalize strips an optional "0x"/"0X" prefix and lowercases the
// digest. Idempotent: Normalize(Normalize(h)) == Normalize(h).
func Normalize(digest string) string {
	digest = strings.TrimSpace(digest)
	if len(digest) >= 2 && (digest[0:2] == "0x" || digest[0:2] == "0X") {
		digest = digest[2:]
	}
	return strings.ToLower(digest)
}

// Equal reports whether two digests are equal after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
