package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Audit prints the actor's chain-of-custody trail, newest first.
// Both filters are optional; an empty answer means no filtering.
func (a *App) Audit(ctx context.Context) error {
	kind, err := GetSimpleText(a.reader, "Filter by kind (upload/batch_upload/share/batch_share/download/verify, empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	caseNumber, err := GetSimpleText(a.reader, "Filter by case number (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	entries, err := a.api.AuditTrail(ctx, kind, caseNumber)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		printlnFn("No audit entries")
		return nil
	}

	for _, e := range entries {
		recorded := time.UnixMilli(e.RecordedAtUnixMs).Format(time.RFC3339)
		line := fmt.Sprintf("%s  %-12s  %s  by %s", recorded, e.Kind, e.Id, e.ActorEmail)
		if e.FileId != "" {
			line += "  file=" + e.FileId
		}
		if e.BatchId != "" {
			line += fmt.Sprintf("  batch=%s (%d files)", e.BatchId, e.FileCount)
		}
		if e.ProofId != "" {
			line += "  proof=" + e.ProofId
		}
		if e.SharedWith != "" {
			line += "  with=" + e.SharedWith
		}
		if e.Outcome != "" {
			line += "  outcome=" + e.Outcome
		}
		printlnFn(line)
	}
	return nil
}
