package models

import "time"

// User is a row of the static credential table. This stands in for a
// real identity provider; the core only consumes the resulting Actor.
type User struct {
	Email      string
	Name       string
	Role       string
	Department string
	BadgeID    string
	Password   string
	Status     string
	CreatedAt  time.Time
}

// UserStatusActive marks accounts allowed to log in.
const UserStatusActive = "active"
