package entities

import "time"

// User is the account aggregate. Email is the unique natural key; the
// password is only ever held as a one-way hash.
type User struct {
	UserID       string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
