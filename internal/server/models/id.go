package models

import (
	"fmt"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
)

// Identifier formats are contractual: external systems key off the
// prefixes, so they follow the historical <prefix>_<unix ms>_<suffix>
// grammar rather than plain UUIDs.

func NewFileID() (string, error)  { return newID("file") }
func NewBatchID() (string, error) { return newID("batch") }
func NewAuditID() (string, error) { return newID("audit") }

// NewProofID mints a proof identifier. The "ZKP" prefix is historical;
// see models.Proof.
func NewProofID() (string, error) {
	suffix, err := common.MakeRandBase36String(9)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ZKP-%d-%s", time.Now().UnixMilli(), suffix), nil
}

func newID(prefix string) (string, error) {
	suffix, err := common.MakeRandBase36String(13)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix), nil
}
