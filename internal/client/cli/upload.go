package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
)

// readFileUpload loads a local file and wraps it as an upload payload.
// The MIME type is taken from the file extension, falling back to
// content sniffing for files without a recognized one.
func readFileUpload(path, description string) (*pb.FileUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return &pb.FileUpload{
		FileName:    filepath.Base(path),
		MimeType:    mimeType,
		Data:        data,
		Description: description,
	}, nil
}

// Upload takes a single local file into custody: the server hashes it,
// encrypts it, stores the ciphertext and mints the initial
// chain-of-custody commitment.
func (a *App) Upload(ctx context.Context) error {
	caseNumber, err := GetSimpleText(a.reader, "Enter case number", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	file, err := readFileUpload(path, description)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	rec, err := a.api.Upload(ctx, &pb.UploadEvidenceRequest{
		CaseNumber:  caseNumber,
		Description: description,
		File:        file,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Evidence secured:")
	printlnFn("  file id:  " + rec.Id)
	printlnFn("  hash:     " + rec.PlaintextHash)
	printlnFn("  cid:      " + rec.Cid)
	printlnFn("  proof id: " + rec.ProofId)
	printlnFn("  token:    " + rec.CommitToken)
	return nil
}

// UploadBatch takes several local files into custody as one batch with a
// shared Merkle root and a single batch commitment token.
func (a *App) UploadBatch(ctx context.Context) error {
	caseNumber, err := GetSimpleText(a.reader, "Enter case number", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	paths, err := GetFileList(a.reader, os.Stdout)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		printlnFn("No files entered")
		return nil
	}

	files := make([]*pb.FileUpload, 0, len(paths))
	for _, p := range paths {
		f, err := readFileUpload(p, description)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		files = append(files, f)
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.UploadBatch(ctx, &pb.UploadBatchRequest{
		CaseNumber:  caseNumber,
		Description: description,
		Files:       files,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Batch secured: %d files", len(resp.Records)))
	printlnFn("  batch id:    " + resp.BatchId)
	printlnFn("  merkle root: " + resp.MerkleRoot)
	printlnFn("  token:       " + resp.CommitToken)
	for _, rec := range resp.Records {
		printlnFn(fmt.Sprintf("  [%d] %s  %s", rec.BatchIndex, rec.Id, rec.FileName))
	}
	return nil
}
