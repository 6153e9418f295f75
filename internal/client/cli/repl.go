package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Upload(ctx context.Context) error
	UploadBatch(ctx context.Context) error
	List(ctx context.Context) error
	Verify(ctx context.Context) error
	Share(ctx context.Context) error
	ShareBatch(ctx context.Context) error
	Download(ctx context.Context) error
	Audit(ctx context.Context) error
	Reset(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the EvidenceShield CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - upload         — take one file into custody
//	  - batch          — take several files into custody as one batch
//	  - list           — list accessible evidence
//	  - verify         — verify evidence integrity
//	  - share          — share one file with another user
//	  - sharebatch     — share a whole batch with another user
//	  - download       — retrieve and decrypt a file
//	  - audit          — show the chain-of-custody trail
//	  - reset          — wipe all evidence (administrative)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("es> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: upload, batch, (l)ist, verify, share, sharebatch, download, audit, reset, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "upload":
			_ = a.Upload(ctx)
		case "batch":
			_ = a.UploadBatch(ctx)
		case "list", "l":
			_ = a.List(ctx)
		case "verify":
			_ = a.Verify(ctx)
		case "share":
			_ = a.Share(ctx)
		case "sharebatch":
			_ = a.ShareBatch(ctx)
		case "download":
			_ = a.Download(ctx)
		case "audit":
			_ = a.Audit(ctx)
		case "reset":
			_ = a.Reset(ctx)
		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
