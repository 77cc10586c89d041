package users

import "time"

// User is an account identity. PasswordHash is an argon2id PHC string and is
// empty for users provisioned through Google sign-in; it never leaves this
// package except to the credential check.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
