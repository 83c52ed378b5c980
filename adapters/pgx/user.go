package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/around-labs/around"
)

const userColumns = `id, name, fingerprint, timezone_offset, favorite_team, dark_mode`

func (a *Adapter) CreateUser(ctx context.Context, u *around.User) (*around.User, error) {
	q := `INSERT INTO public.users (id, name, fingerprint, timezone_offset, favorite_team, dark_mode)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      ON CONFLICT (id) DO NOTHING
	      RETURNING ` + userColumns

	row := a.pool.QueryRow(ctx, q, u.ID, u.Name, u.Fingerprint, u.TimezoneOffset, u.FavoriteTeam, u.DarkMode)
	inserted, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict on id: the row was skipped, not inserted.
			return nil, nil
		}
		return nil, err
	}
	return inserted, nil
}

func (a *Adapter) GetUser(ctx context.Context, id int32) (*around.User, error) {
	q := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`

	user, err := scanUser(a.pool.QueryRow(ctx, q, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, around.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) UpdateUser(ctx context.Context, u *around.User) (*around.User, error) {
	q := `UPDATE public.users
	      SET name = $2, fingerprint = $3, timezone_offset = $4, favorite_team = $5, dark_mode = $6
	      WHERE id = $1
	      RETURNING ` + userColumns

	row := a.pool.QueryRow(ctx, q, u.ID, u.Name, u.Fingerprint, u.TimezoneOffset, u.FavoriteTeam, u.DarkMode)
	updated, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, around.ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (a *Adapter) DeleteUser(ctx context.Context, id int32) (*around.User, error) {
	q := `DELETE FROM public.users WHERE id = $1 RETURNING ` + userColumns

	deleted, err := scanUser(a.pool.QueryRow(ctx, q, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, around.ErrUserNotFound
		}
		return nil, err
	}
	return deleted, nil
}

func scanUser(row pgx.Row) (*around.User, error) {
	u := &around.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Fingerprint, &u.TimezoneOffset, &u.FavoriteTeam, &u.DarkMode)
	if err != nil {
		return nil, err
	}
	return u, nil
}
