package cli

import (
	"context"
	"log"
	"os"
)

// Reset wipes every evidence record, proof, blob and audit entry on the
// server. User accounts survive. The user must type "yes" to proceed.
func (a *App) Reset(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "This deletes ALL evidence and audit history. Type 'yes' to proceed", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.ResetStorage(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Storage reset")
	return nil
}
