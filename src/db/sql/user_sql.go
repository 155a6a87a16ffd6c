package db

import (
	"budget-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUser(ctx context.Context, pool DBTX, name, email string, passwordHash []byte) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	user, err := scanUser(pool.QueryRow(ctx, query, name, email, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func GetUserByID(ctx context.Context, pool DBTX, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func GetAllUsers(ctx context.Context, pool DBTX) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUser overwrites name and/or email; a nil argument keeps the stored value.
func UpdateUser(ctx context.Context, pool DBTX, id int64, name, email *string) (*models.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name), email = COALESCE($2, email)
		WHERE id = $3
		RETURNING ` + userColumns
	user, err := scanUser(pool.QueryRow(ctx, query, name, email, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return user, nil
}

func DeleteUser(ctx context.Context, pool DBTX, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, pgx.ErrNoRows)
	}
	return nil
}
