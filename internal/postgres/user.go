package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgarza/folio/internal/core"
)

const userColumns = `id, username, email, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*core.User, error) {
	u := &core.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (a *Adapter) CreateUser(user *core.User) error {
	ctx := context.Background()

	query := `INSERT INTO public.users (id, username, email, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := a.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		// The unique constraints are the authoritative duplicate check;
		// 23505 is unique_violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return core.ErrUsernameTaken
			case "users_email_key":
				return core.ErrEmailRegistered
			}
		}
		return err
	}
	return nil
}

func (a *Adapter) GetUserByID(id string) (*core.User, error) {
	ctx := context.Background()
	query := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`
	return scanUser(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) GetUserByUsername(username string) (*core.User, error) {
	ctx := context.Background()
	query := `SELECT ` + userColumns + ` FROM public.users WHERE username = $1`
	return scanUser(a.pool.QueryRow(ctx, query, username))
}

func (a *Adapter) GetUserByEmail(email string) (*core.User, error) {
	ctx := context.Background()
	query := `SELECT ` + userColumns + ` FROM public.users WHERE email = $1`
	return scanUser(a.pool.QueryRow(ctx, query, email))
}
