package cryptox

import (
	"encoding/base64"
	"fmt"
)

// Metadata is the transport form of the encryption parameters stored
// alongside a file record: base64-encoded IV and salt plus the original
// file attributes needed to reconstruct the plaintext file on download.
// Each Metadata is owned exclusively by the record that produced it.
type Metadata struct {
	IV           string `json:"iv"`
	Salt         string `json:"salt"`
	FileName     string `json:"fileName"`
	OriginalSize int64  `json:"originalSize"`
	MimeType     string `json:"mimeType"`
}

// NewMetadata packages the parameters of an encrypted file for storage.
func NewMetadata(ef *EncryptedFile, fileName string, originalSize int64, mimeType string) Metadata {
	return Metadata{
		IV:           base64.StdEncoding.EncodeToString(ef.IV),
		Salt:         base64.StdEncoding.EncodeToString(ef.Salt),
		FileName:     fileName,
		OriginalSize: originalSize,
		MimeType:     mimeType,
	}
}

// Params decodes the IV and salt back into raw bytes for Decrypt.
func (m Metadata) Params() (iv, salt []byte, err error) {
	iv, err = base64.StdEncoding.DecodeString(m.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("decode iv: %w", err)
	}
	salt, err = base64.StdEncoding.DecodeString(m.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	return iv, salt, nil
}
