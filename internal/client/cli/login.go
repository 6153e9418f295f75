package cli

import (
	"context"
	"log"
	"os"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server.
//
// On success the actor's email, name and role are cached on the App and
// shown in the REPL prompt. The gRPC transport stores the access token
// and attaches it to subsequent calls. The password byte slice is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.email = resp.Email
	a.name = resp.Name
	a.role = resp.Role
	log.Printf("Logged in as %s (%s)", resp.Name, resp.Role)
	return nil
}

// Logout clears the cached identity. The next evidence command will be
// rejected until the user logs in again.
func (a *App) Logout(ctx context.Context) error {
	a.email = ""
	a.name = ""
	a.role = ""
	log.Println("Logged out")
	return nil
}
