package sqlstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"drugdash/internal/errors"
	"drugdash/internal/migration"
	"drugdash/ports"

	"github.com/jmoiron/sqlx"
)

// credentialStore implements ports.CredentialStore
type credentialStore struct {
	db *sqlx.DB
}

// NewCredentialStore creates a credential store over db
func NewCredentialStore(db *sqlx.DB) ports.CredentialStore {
	return &credentialStore{db: db}
}

// ReplaceCredentials drops and recreates the credential table with creds
func (s *credentialStore) ReplaceCredentials(ctx context.Context, creds []ports.Credential) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin credential replace", err)
	}
	defer tx.Rollback()

	table := migration.QuoteIdent(migration.CredentialsTable)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return errors.DatabaseError("failed to drop credentials table", err)
	}
	if _, err := tx.ExecContext(ctx, migration.CredentialsTableDDL(false)); err != nil {
		return errors.DatabaseError("failed to create credentials table", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (username, password_hash) VALUES (:username, :password_hash)", table)
	for _, c := range creds {
		if _, err := tx.NamedExecContext(ctx, insert, c); err != nil {
			return errors.DatabaseError(fmt.Sprintf("failed to insert credential for %q", c.Username), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("failed to commit credential replace", err)
	}
	return nil
}

// FindCredential looks up a single user
func (s *credentialStore) FindCredential(ctx context.Context, username string) (*ports.Credential, error) {
	query := s.db.Rebind(fmt.Sprintf("SELECT username, password_hash FROM %s WHERE username = ?",
		migration.QuoteIdent(migration.CredentialsTable)))

	var c ports.Credential
	if err := s.db.GetContext(ctx, &c, query, username); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("credential")
		}
		return nil, errors.DatabaseError("credential lookup failed", err)
	}
	return &c, nil
}
