package models

import "time"

// EventKind enumerates the recordable actions.
type EventKind string

const (
	KindUpload      EventKind = "upload"
	KindBatchUpload EventKind = "batch_upload"
	KindShare       EventKind = "share"
	KindBatchShare  EventKind = "batch_share"
	KindVerify      EventKind = "verify"
	KindDownload    EventKind = "download"
)

// VerificationOutcome is the verdict of one verification attempt.
type VerificationOutcome string

const (
	OutcomeVerified VerificationOutcome = "verified"
	OutcomeTampered VerificationOutcome = "tampered"
	// OutcomeInconclusive means the comparison could not be performed:
	// the stored copy could not be retrieved or decrypted. The cause is
	// preserved on the result; this is not a tamper verdict.
	OutcomeInconclusive VerificationOutcome = "inconclusive"
)

// VerificationMode says where the comparison bytes came from.
type VerificationMode string

const (
	// ModeRemote recomputes the hash from a freshly downloaded and
	// decrypted copy of the stored ciphertext.
	ModeRemote VerificationMode = "remote"
	// ModeLocal recomputes the hash from a file the verifying user
	// supplied directly.
	ModeLocal VerificationMode = "local"
)

// AuditEvent is one append-only chain-of-custody log entry. Events are
// never mutated or deleted individually; the only deletion path is the
// administrative full reset.
type AuditEvent struct {
	ID         string
	Kind       EventKind
	FileID     string
	FileName   string
	CaseNumber string
	BatchID    string
	ProofID    string

	Actor Actor

	// CommitToken is minted for this specific action. OriginalToken,
	// when set, references the token recorded at upload time.
	CommitToken   string
	OriginalToken string

	// Batch fields (batch_upload / batch_share only).
	MerkleRoot string
	FileCount  int
	FileIDs    []string

	// Verification fields (verify only).
	Outcome          VerificationOutcome
	VerificationMode VerificationMode
	LocalFileName    string

	// Share fields.
	SharedWith string

	Details    string
	RecordedAt time.Time
}

// AuditFilter narrows an audit query. Zero-valued fields match anything.
type AuditFilter struct {
	ActorEmail string
	Kind       EventKind
	CaseNumber string
}
