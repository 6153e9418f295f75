// Package common defines shared constants and sentinel errors used across
// client and server layers of EvidenceShield. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrMetadataNotFound = errors.New("metadata record not found")
	ErrProofNotFound    = errors.New("proof not found")
	ErrBlobNotFound     = errors.New("blob not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")

	// Batch validation errors.
	ErrEmptyBatch    = errors.New("empty batch")
	ErrBatchTooLarge = errors.New("batch too large")

	// Cipher errors (wrong key or corrupted ciphertext).
	ErrDecryptionFailed = errors.New("decryption failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
