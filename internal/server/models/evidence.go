package models

import (
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/cryptox"
)

// EvidenceFile describes one uploaded evidence file. The ciphertext
// itself lives in object storage under StoragePath; everything needed to
// find it, decrypt it and check its integrity is here.
//
// PlaintextHash is computed once at upload over the original
// (pre-encryption) bytes and never mutated afterward. It is stored
// without the "0x" prefix; compare through hashx.Equal only.
type EvidenceFile struct {
	ID          string
	CaseNumber  string
	Description string

	// Original file attributes (also part of the encryption metadata).
	FileName string
	FileSize int64
	FileType string

	PlaintextHash string
	CID           string
	ProofID       string
	CommitToken   string
	StoragePath   string

	// Batch linkage; zero values for single-file uploads. BatchIndex is
	// the zero-based Merkle leaf position and is meaningful only when
	// BatchID is set.
	BatchID    string
	BatchIndex int
	MerkleRoot string

	// Encryption parameters, base64-encoded. EncryptionKey holds the
	// literal session passphrase the file was encrypted under. Keeping
	// it next to the metadata is a known weak point of the observed
	// system; it stays behind the services.Keyring interface so a real
	// vault can replace it.
	IV            string
	Salt          string
	EncryptionKey string

	UploadedBy   string
	UploaderName string
	UploaderRole string
	Department   string

	SharedWith []string
	CreatedAt  time.Time
}

// EncryptionMetadata rebuilds the cipher transport metadata for this file.
func (f *EvidenceFile) EncryptionMetadata() cryptox.Metadata {
	return cryptox.Metadata{
		IV:           f.IV,
		Salt:         f.Salt,
		FileName:     f.FileName,
		OriginalSize: f.FileSize,
		MimeType:     f.FileType,
	}
}

// Batch describes one multi-file upload. FileIDs keeps the Merkle leaf
// order of the batch; MerkleRoot commits to the ordered leaf hashes and
// CommitToken is the single token covering the whole batch.
type Batch struct {
	ID          string
	CaseNumber  string
	Description string
	MerkleRoot  string
	CommitToken string
	FileCount   int
	FileIDs     []string

	UploadedBy   string
	UploaderName string
	UploaderRole string
	Department   string

	CreatedAt time.Time
}

// Proof is a commitment record: an identifier bound 1:1 to a plaintext
// hash and its upload context at mint time. Despite the historical
// "ZKP" naming of its identifiers there is no proof-of-knowledge here,
// only a retrievable committed hash.
type Proof struct {
	ID            string
	PlaintextHash string
	CaseNumber    string
	UploadedBy    string
	Description   string
	CreatedAt     time.Time
}
