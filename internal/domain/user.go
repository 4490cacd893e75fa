package domain

import "time"

// User represents a registered account.
//
// PasswordHash holds the bcrypt hash of the user's password; raw
// credentials are never stored. Services hand out sanitized copies with
// the hash cleared before a User crosses any external boundary.
type User struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string
	ProfilePicture string
	CreatedAt      time.Time
}
