// Package models defines server-side data models persisted in the database.
package models

// Actor is the already-authenticated identity performing an action.
// Authentication itself happens at the edge; the core only ever sees
// this triple.
type Actor struct {
	Email string
	Name  string
	Role  string
}

// RoleAdministrator is the role allowed to perform destructive
// administrative operations and to read the full audit trail.
const RoleAdministrator = "Administrator"

// IsAdmin reports whether the actor holds the administrative role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdministrator
}
