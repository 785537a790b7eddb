package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CreateUserParams represents parameters for creating a user
type CreateUserParams struct {
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

const userColumns = `id, name, email, role, password_hash, created_at, updated_at`

const sqlCheckIfEmailExists = `
SELECT EXISTS(SELECT 1
              FROM users
              WHERE lower(email) = lower($1))`

func (s *Store) CheckIfEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlCheckIfEmailExists, email)
	if err != nil {
		s.logger.Error(ctx, "failed to check email exists", err)
		return false, fmt.Errorf("failed to check email exists: %w", err)
	}
	return exists, nil
}

const sqlCreateUser = `
INSERT INTO users (name, email, role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		params.Name,
		strings.TrimSpace(params.Email),
		params.Role,
		params.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1)`

// GetUserByEmail looks a user up case-insensitively
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGetReceiverIDsByEmails = `
SELECT id
FROM users
WHERE lower(email) = ANY(($1::text)::text[])
  AND role = 'receiver'`

// GetReceiverIDsByEmails resolves receiver accounts for the given emails.
// Emails with no matching receiver are skipped.
func (s *Store) GetReceiverIDsByEmails(ctx context.Context, emails []string) ([]uuid.UUID, error) {
	if len(emails) == 0 {
		return []uuid.UUID{}, nil
	}
	normalized := make(StringArray, 0, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			normalized = append(normalized, e)
		}
	}

	ids := []uuid.UUID{}
	err := s.db.SelectContext(ctx, &ids, sqlGetReceiverIDsByEmails, normalized.Literal())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve receivers by email: %w", err)
	}
	return ids, nil
}
