// Package storage holds the encrypted evidence blobs. Only ciphertext
// ever reaches the store; plaintext stays inside the service layer.
package storage

import (
	"context"
	"fmt"
)

// BlobStore is the object storage contract for encrypted payloads.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	// Get returns common.ErrBlobNotFound when no object exists at key.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// DeleteAll removes every stored object. Administrative reset only.
	DeleteAll(ctx context.Context) error
}

// ObjectKey builds the canonical storage path for an evidence file.
// Grouping by uploader and case keeps a bucket listing readable when
// inspecting storage by hand.
func ObjectKey(uploadedBy, caseNumber, fileID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s/%s", uploadedBy, caseNumber, fileID, fileName)
}
