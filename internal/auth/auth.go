package auth

import (
	"context"
	"fmt"
	"log"

	"drugdash/adapters/excel"
	"drugdash/internal/errors"
	"drugdash/ports"

	"golang.org/x/crypto/bcrypt"
)

// Messages shown by the login prompt
const (
	MsgCredentialsRequired = "Please enter credentials and press submit."
	MsgInvalidCredentials  = "Invalid credentials. Please try again."
	MsgLoginSuccessful     = "Login successful."
)

var (
	// ErrCredentialsRequired is returned when either field is left empty
	ErrCredentialsRequired = errors.Unauthorized(MsgCredentialsRequired)
	// ErrInvalidCredentials covers both an unknown user and a wrong password
	ErrInvalidCredentials = errors.Unauthorized(MsgInvalidCredentials)
)

// Service checks submitted credentials against the credential store
type Service struct {
	store ports.CredentialStore
}

// NewService creates a credential checker over store
func NewService(store ports.CredentialStore) *Service {
	return &Service{store: store}
}

// Authenticate returns nil when username exists and password matches its
// stored hash. Empty input is rejected before the store is consulted.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}

	cred, err := s.store.FindCredential(ctx, username)
	if err != nil {
		if errors.HasCode(err, errors.CodeNotFound) {
			return ErrInvalidCredentials
		}
		return errors.Wrap(err, "credential lookup failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns the bcrypt hash of password at cost
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// Seed reads a username,password table from path, hashes every password and
// replaces the stored credentials. The first row for a username wins.
func Seed(ctx context.Context, store ports.CredentialStore, path string, cost int) (int, error) {
	table, err := excel.NewDataReader(path).ReadData()
	if err != nil {
		return 0, errors.IOError(fmt.Sprintf("failed to read credentials %s", path), err)
	}
	if missing := table.MissingColumns([]string{"username", "password"}); len(missing) > 0 {
		return 0, errors.IOError(fmt.Sprintf("credentials file is missing columns: %v", missing), nil)
	}

	seen := make(map[string]bool, len(table.Rows))
	creds := make([]ports.Credential, 0, len(table.Rows))
	for _, row := range table.Rows {
		username, password := row["username"], row["password"]
		if username == "" || password == "" || seen[username] {
			continue
		}
		seen[username] = true

		hash, err := HashPassword(password, cost)
		if err != nil {
			return 0, err
		}
		creds = append(creds, ports.Credential{Username: username, PasswordHash: hash})
	}

	if err := store.ReplaceCredentials(ctx, creds); err != nil {
		return 0, errors.Wrap(err, "failed to store credentials")
	}
	log.Printf("[Auth] Seeded %d credentials from %s", len(creds), path)
	return len(creds), nil
}
