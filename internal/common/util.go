package common

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding them as a hexadecimal string, so the final string length will be
// twice the size.
//
// It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// MakeRandBase36String generates a random lowercase base36 string of
// length n. Used for the random suffix of file, batch, audit and proof
// identifiers.
func MakeRandBase36String(n int) (string, error) {
	max := big.NewInt(int64(len(base36Alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b), nil
}

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system randomness source fails, since no key or
// nonce material may ever be produced from a partial read.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing passphrases and derived keys from memory
// after use. If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
