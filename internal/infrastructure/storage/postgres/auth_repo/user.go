// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"comercio/internal/core/apperror"
	"comercio/internal/domain"
	"comercio/internal/domain/auth"
	"comercio/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

// Create creates a new user and fills the generated ID.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO users (username, password_hash, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.Active, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate("user", "username", user.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT id, username, password_hash, role, active, created_at
		FROM users
		WHERE id = $1
	`

	var user auth.User
	if err := pgxscan.Get(ctx, q, &user, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", id)
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

// GetByUsername retrieves user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT id, username, password_hash, role, active, created_at
		FROM users
		WHERE username = $1
	`

	var user auth.User
	if err := pgxscan.Get(ctx, q, &user, query, username); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", username)
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &user, nil
}

// Update updates an existing user.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		UPDATE users
		SET username = $2, password_hash = $3, role = $4, active = $5
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.Active,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate("user", "username", user.Username)
		}
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", user.ID)
	}

	return nil
}

// Delete removes a user account.
func (r *UserRepo) Delete(ctx context.Context, id int) error {
	q := r.txm.GetQuerier(ctx)

	result, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewConflict("Cannot delete: user is linked to an employee").
				WithDetail("id", id).
				WithCause(err)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", id)
	}

	return nil
}

// List retrieves users with filtering and pagination.
func (r *UserRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*auth.User], error) {
	q := r.txm.GetQuerier(ctx)

	result := domain.ListResult[*auth.User]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	where := ""
	args := []any{}
	if filter.Search != "" {
		where = "WHERE username ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	countQuery := "SELECT COUNT(*) FROM users " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, username, password_hash, role, active, created_at
		FROM users
		%s
		ORDER BY username
		LIMIT %d OFFSET %d
	`, where, filter.Limit, filter.Offset)

	if err := pgxscan.Select(ctx, q, &result.Items, query, args...); err != nil {
		return result, fmt.Errorf("list users: %w", err)
	}

	return result, nil
}

// ExistsByUsername checks if a username is taken.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := r.txm.GetQuerier(ctx)

	var exists int
	err := q.QueryRow(ctx, `SELECT 1 FROM users WHERE username = $1 LIMIT 1`, username).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}

	return true, nil
}
