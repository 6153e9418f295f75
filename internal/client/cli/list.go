package cli

import (
	"context"
	"fmt"
	"time"
)

// List prints one line per accessible evidence record: everything the
// actor uploaded plus everything shared with them.
func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	records, err := a.api.List(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		printlnFn("No evidence accessible")
		return nil
	}

	for _, rec := range records {
		created := time.UnixMilli(rec.CreatedAtUnixMs).Format(time.RFC3339)
		line := fmt.Sprintf("%s  case=%s  %s  %d bytes  by %s  %s",
			rec.Id, rec.CaseNumber, rec.FileName, rec.FileSize, rec.UploadedBy, created)
		if rec.BatchId != "" {
			line += fmt.Sprintf("  batch=%s[%d]", rec.BatchId, rec.BatchIndex)
		}
		printlnFn(line)
	}
	return nil
}
