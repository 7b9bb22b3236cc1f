package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database so schedules
// survive restarts.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) Upsert(ctx context.Context, sub *domain.Subscription) error {
	if sub == nil {
		return errors.New("nil subscription")
	}

	created := sub.CreatedAt.UTC().Unix()
	if sub.CreatedAt.IsZero() {
		created = time.Now().UTC().Unix()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (
			chat_id, created_at, interval_days, currency, hour_of_day, next_fire_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			created_at    = excluded.created_at,
			interval_days = excluded.interval_days,
			currency      = excluded.currency,
			hour_of_day   = excluded.hour_of_day,
			next_fire_at  = excluded.next_fire_at`,
		sub.ChatID, created, sub.IntervalDays, sub.Currency, sub.HourOfDay,
		sub.NextFireAt.UTC().Unix(),
	)
	return err
}

func (r *SQLiteRepo) Get(ctx context.Context, chatID int64) (*domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT chat_id, created_at, interval_days, currency, hour_of_day, next_fire_at
		FROM subscriptions
		WHERE chat_id = ?`,
		chatID,
	)

	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SQLiteRepo) Remove(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE chat_id = ?`, chatID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, created_at, interval_days, currency, hour_of_day, next_fire_at
		FROM subscriptions
		WHERE next_fire_at <= ?
		ORDER BY next_fire_at ASC
		LIMIT ?`,
		now.UTC().Unix(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQLiteRepo) Reschedule(ctx context.Context, chatID int64, next time.Time) error {
	// Plain UPDATE: zero rows affected means the user stopped mid-delivery;
	// the record must not come back.
	_, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET next_fire_at = ?
		WHERE chat_id = ?`,
		next.UTC().Unix(), chatID,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var (
		chatID       int64
		createdAt    int64
		intervalDays int
		currency     string
		hourOfDay    int
		nextFireAt   int64
	)
	if err := row.Scan(&chatID, &createdAt, &intervalDays, &currency, &hourOfDay, &nextFireAt); err != nil {
		return nil, err
	}
	return &domain.Subscription{
		ChatID:       chatID,
		IntervalDays: intervalDays,
		Currency:     currency,
		HourOfDay:    hourOfDay,
		NextFireAt:   time.Unix(nextFireAt, 0).UTC(),
		CreatedAt:    time.Unix(createdAt, 0).UTC(),
	}, nil
}
