// Package cryptox implements the symmetric file cipher protecting
// evidence at rest: a passphrase-derived AES-256-GCM key with per-call
// random salt and IV.
//
// The integrity hash of a file is always computed on plaintext before
// this package runs. Ciphertext is never hashed for integrity purposes.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLength is the AES key size in bytes (AES-256).
	KeyLength = 32
	// IVLength is the GCM nonce size in bytes.
	IVLength = 12
	// SaltLength is the PBKDF2 salt size in bytes.
	SaltLength = 16
	// Iterations is the PBKDF2 iteration count.
	Iterations = 100_000
)

// EncryptedFile carries ciphertext together with the parameters needed
// to reverse the encryption. Salt and IV are freshly random for every
// Encrypt call; reuse across files is forbidden.
type EncryptedFile struct {
	Ciphertext []byte
	IV         []byte
	Salt       []byte
}

// DeriveKey derives the AES key from a passphrase and salt using
// PBKDF2-SHA256.
func DeriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, Iterations, KeyLength, sha256.New)
}

// SessionKey builds the per-upload-session passphrase from the uploader
// identity and case number. The timestamp component means the same
// user and case do not reproduce the same key on a later upload; the
// passphrase must be persisted with the record to allow decryption.
func SessionKey(email, caseNumber string) string {
	return fmt.Sprintf("%s-%s-encryption-key-%d", email, caseNumber, time.Now().UnixMilli())
}

// Encrypt encrypts plaintext with a key derived from the passphrase.
// A new random salt and IV are generated on every call.
func Encrypt(plaintext []byte, passphrase string) (*EncryptedFile, error) {
	salt := common.GenerateRandByteArray(SaltLength)

	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	iv := common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext := aesgcm.Seal(nil, iv, plaintext, nil)

	return &EncryptedFile{Ciphertext: ciphertext, IV: iv, Salt: salt}, nil
}

// Decrypt reverses Encrypt. It returns an error wrapping
// common.ErrDecryptionFailed when the ciphertext is truncated or
// corrupted, or the wrong passphrase/iv/salt combination is supplied,
// so callers can distinguish a cipher failure from a missing file.
func Decrypt(ciphertext, iv, salt []byte, passphrase string) ([]byte, error) {
	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
