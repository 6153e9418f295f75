package services

import (
	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/cryptox"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// Keyring supplies the passphrase a new upload is encrypted under and
// recovers the passphrase of an existing record for decryption.
type Keyring interface {
	MintKey(email, caseNumber string) string
	KeyFor(file *models.EvidenceFile) (string, error)
}

// RecordKeyring keeps each file's passphrase on the file record itself.
// That places key custody inside the metadata store, which is the
// weakest acceptable arrangement; an external vault can replace this
// implementation without touching the services.
type RecordKeyring struct{}

func (RecordKeyring) MintKey(email, caseNumber string) string {
	return cryptox.SessionKey(email, caseNumber)
}

func (RecordKeyring) KeyFor(file *models.EvidenceFile) (string, error) {
	if file.EncryptionKey == "" {
		return "", common.ErrMetadataNotFound
	}
	return file.EncryptionKey, nil
}
