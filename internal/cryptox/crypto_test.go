package cryptox

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short text", []byte("evidence-001")},
		{"empty file", []byte{}},
		{"binary content", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
		{"larger payload", bytes.Repeat([]byte("chain-of-custody "), 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef, err := Encrypt(tt.plaintext, "passphrase-1")
			require.NoError(t, err)

			got, err := Decrypt(ef.Ciphertext, ef.IV, ef.Salt, "passphrase-1")
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got, "round-trip must be byte-for-byte")
		})
	}
}

func TestEncrypt_FreshSaltAndIVPerCall(t *testing.T) {
	plaintext := []byte("same bytes twice")

	a, err := Encrypt(plaintext, "k")
	require.NoError(t, err)
	b, err := Encrypt(plaintext, "k")
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV, "IV must be fresh per call")
	assert.NotEqual(t, a.Salt, b.Salt, "salt must be fresh per call")
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)

	assert.Len(t, a.IV, IVLength)
	assert.Len(t, a.Salt, SaltLength)
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	ef, err := Encrypt([]byte("evidence-001"), "correct")
	require.NoError(t, err)

	_, err = Decrypt(ef.Ciphertext, ef.IV, ef.Salt, "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecrypt_CorruptedCiphertext(t *testing.T) {
	ef, err := Encrypt([]byte("evidence-001"), "k")
	require.NoError(t, err)

	corrupted := make([]byte, len(ef.Ciphertext))
	copy(corrupted, ef.Ciphertext)
	corrupted[0] ^= 0x01

	_, err = Decrypt(corrupted, ef.IV, ef.Salt, "k")
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecrypt_TruncatedCiphertext(t *testing.T) {
	ef, err := Encrypt([]byte("evidence-001"), "k")
	require.NoError(t, err)

	_, err = Decrypt(ef.Ciphertext[:4], ef.IV, ef.Salt, "k")
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	salt := []byte("0123456789abcdef")
	k1 := DeriveKey("passphrase", salt)
	k2 := DeriveKey("passphrase", salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, KeyLength)

	k3 := DeriveKey("passphrase", []byte("fedcba9876543210"))
	assert.NotEqual(t, k1, k3, "different salt must give a different key")
}

func TestSessionKey_Format(t *testing.T) {
	k := SessionKey("john.detective@police.gov", "CASE-2024-001")
	assert.True(t, strings.HasPrefix(k, "john.detective@police.gov-CASE-2024-001-encryption-key-"))
}

func TestMetadata_ParamsRoundTrip(t *testing.T) {
	ef, err := Encrypt([]byte("evidence-001"), "k")
	require.NoError(t, err)

	md := NewMetadata(ef, "report.pdf", 12, "application/pdf")
	assert.Equal(t, "report.pdf", md.FileName)
	assert.Equal(t, int64(12), md.OriginalSize)

	iv, salt, err := md.Params()
	require.NoError(t, err)
	assert.Equal(t, ef.IV, iv)
	assert.Equal(t, ef.Salt, salt)

	got, err := Decrypt(ef.Ciphertext, iv, salt, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("evidence-001"), got)
}

func TestMetadata_ParamsBadBase64(t *testing.T) {
	md := Metadata{IV: "!!!", Salt: "also-bad"}
	_, _, err := md.Params()
	assert.Error(t, err)
}
