// Package models contains the persistent record types of the server.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized; there is no way to read the plaintext back.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
