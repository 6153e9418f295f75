package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
)

// Verify re-checks the integrity of a piece of evidence.
//
// The user identifies the record by proof id or file id, then picks a
// mode: "remote" makes the server re-download and re-hash its own copy,
// "local" hashes a file on this machine and compares it against the
// stored fingerprint. Either way a fresh commitment token is minted and
// the attempt lands on the audit trail.
func (a *App) Verify(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter proof id or file id", os.Stdout)
	if err != nil {
		return err
	}

	req := &pb.VerifyEvidenceRequest{}
	if strings.HasPrefix(id, "ZKP-") {
		req.ProofId = id
	} else {
		req.FileId = id
	}

	mode, err := GetSimpleText(a.reader, "Enter mode (remote/local, default remote)", os.Stdout)
	if err != nil {
		return err
	}
	req.Mode = mode

	if mode == "local" {
		path, err := GetSimpleText(a.reader, "Enter local file path", os.Stdout)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		req.LocalData = data
		req.LocalFileName = filepath.Base(path)
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.Verify(ctx, req)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Outcome: " + resp.Outcome)
	printlnFn("  stored hash:   " + resp.StoredHash)
	printlnFn("  computed hash: " + resp.ComputedHash)
	if resp.Details != "" {
		printlnFn("  details: " + resp.Details)
	}
	printlnFn("  token: " + resp.CommitToken)
	return nil
}
