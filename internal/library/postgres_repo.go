package library

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Save(ctx context.Context, e *Entry) (Entry, error) {
	const query = `
	INSERT INTO user_games (user_id, game_id, status, is_favorite, added_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING user_id, game_id, status, is_favorite, added_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanEntry(r.db.QueryRow(timeoutCtx, query, e.UserID, e.GameID, e.Status, e.IsFavorite, e.AddedAt))
}

// Update never touches added_at.
func (r *PostgresRepo) Update(ctx context.Context, e *Entry) (Entry, error) {
	const query = `
	UPDATE user_games
	SET status = $1, is_favorite = $2
	WHERE user_id = $3 AND game_id = $4
	RETURNING user_id, game_id, status, is_favorite, added_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanEntry(r.db.QueryRow(timeoutCtx, query, e.Status, e.IsFavorite, e.UserID, e.GameID))
}

func (r *PostgresRepo) FindByUserAndGame(ctx context.Context, userID string, gameID int64) (*Entry, error) {
	const query = `
	SELECT user_id, game_id, status, is_favorite, added_at
	FROM user_games
	WHERE user_id = $1 AND game_id = $2
	LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	entry, err := r.scanEntry(r.db.QueryRow(timeoutCtx, query, userID, gameID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepo) FindByUser(ctx context.Context, userID string) ([]Entry, error) {
	const query = `
	SELECT user_id, game_id, status, is_favorite, added_at
	FROM user_games
	WHERE user_id = $1
	ORDER BY added_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *PostgresRepo) FindFavorites(ctx context.Context, userID string, limit, offset int) ([]Entry, int64, error) {
	const countQuery = `
	SELECT COUNT(*) FROM user_games
	WHERE user_id = $1 AND is_favorite = TRUE
	`
	var total int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataQuery = `
	SELECT user_id, game_id, status, is_favorite, added_at
	FROM user_games
	WHERE user_id = $1 AND is_favorite = TRUE
	ORDER BY added_at DESC
	LIMIT $2 OFFSET $3
	`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataQuery, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, userID string, gameID int64) error {
	const query = `DELETE FROM user_games WHERE user_id = $1 AND game_id = $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, userID, gameID)
	return err
}

func (r *PostgresRepo) scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	err := row.Scan(&e.UserID, &e.GameID, &e.Status, &e.IsFavorite, &e.AddedAt)
	return e, err
}

func (r *PostgresRepo) scanEntries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.GameID, &e.Status, &e.IsFavorite, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, rows.Err()
}
