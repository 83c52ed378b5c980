package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/around-labs/around"
)

const eventColumns = `created_at, user_id, kind, x_ft, y_ft, duration_s, impressions`

func (a *Adapter) CreateEvents(ctx context.Context, events []around.Event) ([]around.Event, error) {
	q := `INSERT INTO public.events (created_at, user_id, kind, x_ft, y_ft, duration_s, impressions)
	      VALUES ($1, $2, $3, $4, $5, $6, $7)
	      ON CONFLICT (created_at) DO NOTHING
	      RETURNING ` + eventColumns

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	inserted := make([]around.Event, 0, len(events))
	for _, e := range events {
		row := conn.QueryRow(ctx, q, e.CreatedAt, e.UserID, e.Kind, e.XFt, e.YFt, e.DurationS, e.Impressions)
		stored, err := scanEvent(row)
		if err != nil {
			if err == pgx.ErrNoRows {
				// Conflict on created_at: skip the row, keep going.
				continue
			}
			return nil, err
		}
		inserted = append(inserted, *stored)
	}
	return inserted, nil
}

func (a *Adapter) ListEvents(ctx context.Context, q around.EventQuery) ([]around.Event, error) {
	sql := `SELECT ` + eventColumns + `
	        FROM public.events
	        WHERE created_at >= $1
	        ORDER BY created_at ASC
	        OFFSET $2 LIMIT $3`

	rows, err := a.pool.Query(ctx, sql, q.Start, q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]around.Event, 0, q.Limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (a *Adapter) UpdateEvents(ctx context.Context, events []around.Event) ([]around.Event, error) {
	q := `UPDATE public.events
	      SET user_id = $2, kind = $3, x_ft = $4, y_ft = $5, duration_s = $6, impressions = $7
	      WHERE created_at = $1
	      RETURNING ` + eventColumns

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	updated := make([]around.Event, 0, len(events))
	for _, e := range events {
		row := conn.QueryRow(ctx, q, e.CreatedAt, e.UserID, e.Kind, e.XFt, e.YFt, e.DurationS, e.Impressions)
		stored, err := scanEvent(row)
		if err != nil {
			if err == pgx.ErrNoRows {
				// Fail fast; earlier items in the batch stay applied.
				return nil, around.ErrEventNotFound
			}
			return nil, err
		}
		updated = append(updated, *stored)
	}
	return updated, nil
}

func (a *Adapter) DeleteEvents(ctx context.Context, keys []time.Time) ([]around.Event, error) {
	q := `DELETE FROM public.events WHERE created_at = $1 RETURNING ` + eventColumns

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	deleted := make([]around.Event, 0, len(keys))
	for _, key := range keys {
		stored, err := scanEvent(conn.QueryRow(ctx, q, key))
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, around.ErrEventNotFound
			}
			return nil, err
		}
		deleted = append(deleted, *stored)
	}
	return deleted, nil
}

func scanEvent(row pgx.Row) (*around.Event, error) {
	e := &around.Event{}
	err := row.Scan(&e.CreatedAt, &e.UserID, &e.Kind, &e.XFt, &e.YFt, &e.DurationS, &e.Impressions)
	if err != nil {
		return nil, err
	}
	return e, nil
}
