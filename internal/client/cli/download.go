package cli

import (
	"context"
	"log"
	"os"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/filex"
)

// Download retrieves a file's ciphertext from custody, has the server
// decrypt it, and saves the plaintext into the configured download
// directory without overwriting earlier copies.
func (a *App) Download(ctx context.Context) error {
	fileID, err := GetSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.Download(ctx, fileID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := filex.SaveUnique(dir, resp.FileName, resp.Data)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("File saved to: " + path)
	printlnFn("  token: " + resp.CommitToken)
	return nil
}
