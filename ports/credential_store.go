package ports

import (
	"context"
)

// Credential is a stored login. Only the bcrypt hash of the password is kept.
type Credential struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// CredentialStore defines the lookup used by the export gate
type CredentialStore interface {
	// ReplaceCredentials drops prior contents and stores creds
	ReplaceCredentials(ctx context.Context, creds []Credential) error

	// FindCredential returns the credential for username, or
	// errors.NotFound when no such user exists
	FindCredential(ctx context.Context, username string) (*Credential, error)
}
