package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

const userColumns = "id, username, role, name, department, email, created_at"

// CreateUser inserts a new staff account. Usernames are unique regardless of case.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			"SELECT 1 FROM users WHERE id = ? OR username = ? COLLATE NOCASE",
			user.ID, user.Username,
		).Scan(&exists)
		if err == nil {
			return fmt.Errorf("user %s: %w", user.Username, storage.ErrAlreadyExists)
		}
		if !isNoRows(err) {
			return fmt.Errorf("failed to check user: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			user.ID, user.Username, user.Role, user.Name, user.Department, user.Email, user.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return getUser(ctx, s.db, "id = ?", id)
}

// GetUserByUsername retrieves a user by username, ignoring case.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return getUser(ctx, s.db, "username = ? COLLATE NOCASE", username)
}

// ListUsers retrieves every staff account ordered by username.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// UpdateUser applies fn to the stored user and writes the result.
func (s *SQLiteStore) UpdateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	var out *models.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		user, err := getUser(ctx, tx, "id = ?", id)
		if err != nil {
			return err
		}
		if err := fn(user); err != nil {
			return err
		}
		user.ID = id

		var clash int
		err = tx.QueryRowContext(ctx,
			"SELECT 1 FROM users WHERE username = ? COLLATE NOCASE AND id != ?",
			user.Username, id,
		).Scan(&clash)
		if err == nil {
			return fmt.Errorf("user %s: %w", user.Username, storage.ErrAlreadyExists)
		}
		if !isNoRows(err) {
			return fmt.Errorf("failed to check username: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE users SET username = ?, role = ?, name = ?, department = ?, email = ? WHERE id = ?",
			user.Username, user.Role, user.Name, user.Department, user.Email, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func getUser(ctx context.Context, q querier, where string, arg any) (*models.User, error) {
	row := q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg)
	user, err := scanUser(row)
	if isNoRows(err) {
		return nil, notFound("user", fmt.Sprint(arg))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Role, &u.Name, &u.Department, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
