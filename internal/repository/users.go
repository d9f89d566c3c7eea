package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"notesvc/internal/entity"
)

// CreateUser inserts the user unless the email is already taken. The
// returned flag reports whether a row was actually inserted.
func (r *Repo) CreateUser(ctx context.Context, user entity.User) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (user_id, email, password_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		user.ID, user.Email, user.PasswordHash,
	)
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User

	err := r.db.QueryRow(ctx,
		`SELECT user_id, email, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user with the given id. Deleting a
// nonexistent id is a no-op.
func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (r *Repo) UserExists(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE email = $1`,
		email,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}

	return count > 0, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]entity.UserInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, email FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entity.UserInfo, 0)
	for rows.Next() {
		var u entity.UserInfo
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
