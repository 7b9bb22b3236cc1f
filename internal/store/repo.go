package store

import (
	"context"
	"errors"
	"time"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

// ErrNotFound is returned by Get when no subscription exists for the chat.
var ErrNotFound = errors.New("subscription not found")

// Repo defines storage operations for subscriptions and scheduling.
// The memory implementation is the default; SQLite provides durability
// behind the same interface.
type Repo interface {
	// Upsert replaces the whole subscription record for its chat.
	Upsert(ctx context.Context, sub *domain.Subscription) error
	// Get returns the subscription for chatID or ErrNotFound.
	Get(ctx context.Context, chatID int64) (*domain.Subscription, error)
	// Remove deletes the subscription and reports whether one existed.
	Remove(ctx context.Context, chatID int64) (bool, error)
	// ListDue returns up to limit subscriptions with NextFireAt <= now,
	// ordered by NextFireAt ascending.
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Subscription, error)
	// Reschedule updates NextFireAt for an existing record. If the record
	// was removed in the meantime (user stopped mid-delivery) it is a no-op:
	// rescheduling must never resurrect a canceled subscription.
	Reschedule(ctx context.Context, chatID int64, next time.Time) error
	Close() error
}
