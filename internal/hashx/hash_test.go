package hashx

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum_Deterministic(t *testing.T) {
	b := []byte("evidence-001")
	first := Sum(b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Sum(b))
	}
}

func TestSum_KnownValue(t *testing.T) {
	want := sha256.Sum256([]byte("evidence-001"))
	assert.Equal(t, hex.EncodeToString(want[:]), Sum([]byte("evidence-001")))
}

func TestSum_SingleBitSensitivity(t *testing.T) {
	b := []byte("evidence-001")
	mutated := make([]byte, len(b))
	copy(mutated, b)
	mutated[len(mutated)-1] ^= 0x01

	assert.NotEqual(t, Sum(b), Sum(mutated))
}

func TestSum_EmptyInput(t *testing.T) {
	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Sum(nil))
	assert.Equal(t, Sum(nil), Sum([]byte{}))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no prefix lowercase", "abcd", "abcd"},
		{"0x prefix", "0xABCD", "abcd"},
		{"0X prefix", "0XABCD", "abcd"},
		{"uppercase no prefix", "ABCD", "abcd"},
		{"already normalized", "0xabcd", "abcd"},
		{"surrounding whitespace", "  0xAbCd\n", "abcd"},
		{"empty", "", ""},
		{"bare prefix", "0x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"0xABCD", "abcd", "0xabcd", "ABCD"} {
		assert.Equal(t, "abcd", Normalize(Normalize(in)))
	}
}

func TestEqual_MixedPrefixing(t *testing.T) {
	digest := Sum([]byte("body-cam-footage.mp4"))

	assert.True(t, Equal(digest, "0x"+digest))
	assert.True(t, Equal("0X"+digest, digest))
	assert.True(t, Equal(Prefixed(digest), digest))
	assert.False(t, Equal(digest, Sum([]byte("body-cam-footage.mp5"))))
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "0xabcd", Prefixed("ABCD"))
	assert.Equal(t, "0xabcd", Prefixed("0xabcd"))
}
