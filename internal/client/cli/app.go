// Package cli implements the interactive EvidenceShield console: a
// small REPL over the gRPC client for uploading, verifying, sharing and
// retrieving evidence.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/client/client"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/client/config"
)

type App struct {
	config *config.Config
	api    client.Client
	reader *bufio.Reader

	// identity of the logged-in user, empty until Login succeeds
	email string
	name  string
	role  string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewEvidenceShieldClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

// requestCtx derives a per-call context with the configured deadline.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	pingCtx, cancel := a.requestCtx(ctx)
	if err := a.api.Ping(pingCtx); err != nil {
		log.Printf("Server %s unreachable: %v", a.config.ServerEndpointAddr, err)
	}
	cancel()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not logged in"
	}
	return a.email + " (" + a.role + ")"
}
