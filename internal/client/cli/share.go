package cli

import (
	"context"
	"log"
	"os"
)

// Share grants another user access to a single evidence file. Only the
// uploader can share, and the transfer mints a fresh commitment token
// chained to the previous one.
func (a *App) Share(ctx context.Context) error {
	fileID, err := GetSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}
	recipient, err := GetSimpleText(a.reader, "Enter recipient email", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.Share(ctx, fileID, recipient)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Shared with " + recipient)
	printlnFn("  new token:      " + resp.CommitToken)
	printlnFn("  original token: " + resp.OriginalToken)
	return nil
}

// ShareBatch grants another user access to every file in a batch in one
// operation. The Merkle root is recomputed from the stored hashes as a
// consistency check before the transfer is recorded.
func (a *App) ShareBatch(ctx context.Context) error {
	batchID, err := GetSimpleText(a.reader, "Enter batch id", os.Stdout)
	if err != nil {
		return err
	}
	recipient, err := GetSimpleText(a.reader, "Enter recipient email", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.ShareBatch(ctx, batchID, recipient)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Batch shared with " + recipient)
	printlnFn("  new token:      " + resp.CommitToken)
	printlnFn("  original token: " + resp.OriginalToken)
	printlnFn("  merkle root:    " + resp.MerkleRoot)
	return nil
}
