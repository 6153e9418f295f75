// Package ledger produces and validates commit tokens: opaque strings
// standing in for distributed-ledger transaction references.
//
// No real chain is involved. Tokens are 32 random bytes rendered in the
// transaction-hash format so downstream consumers can validate their
// shape, and the mock IPFS CID is derived from the content digest the
// way the original storage gateway stubbed it. Swapping in a real ledger
// only requires replacing NewToken with a submission call.
package ledger

import (
	"regexp"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/hashx"
)

// tokenPattern is the wire shape of a commit token: 0x followed by
// 64 lowercase hex characters.
var tokenPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

// NewToken mints a fresh commit token. Every recorded action mints its
// own token; tokens are never reused across actions.
func NewToken() (string, error) {
	s, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}
	return "0x" + s, nil
}

// ValidToken checks the shape of a token, not its existence on any
// ledger.
func ValidToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// ContentCID derives the mock IPFS content identifier for a digest.
func ContentCID(digest string) string {
	d := hashx.Normalize(digest)
	if len(d) > 52 {
		d = d[:52]
	}
	return "bafybei" + d
}
