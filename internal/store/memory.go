package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

// MemoryRepo is the in-memory Repo implementation. A single mutex guards the
// map; record replacement is a whole-value swap so concurrent upserts for the
// same chat never interleave partially.
type MemoryRepo struct {
	mu   sync.RWMutex
	subs map[int64]domain.Subscription
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{subs: make(map[int64]domain.Subscription)}
}

func (r *MemoryRepo) Upsert(_ context.Context, sub *domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ChatID] = *sub
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, chatID int64) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[chatID]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}

func (r *MemoryRepo) Remove(_ context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[chatID]; !ok {
		return false, nil
	}
	delete(r.subs, chatID)
	return true, nil
}

func (r *MemoryRepo) ListDue(_ context.Context, now time.Time, limit int) ([]domain.Subscription, error) {
	r.mu.RLock()
	var due []domain.Subscription
	for _, sub := range r.subs {
		if !sub.NextFireAt.After(now) {
			due = append(due, sub)
		}
	}
	r.mu.RUnlock()

	sort.Slice(due, func(i, j int) bool { return due[i].NextFireAt.Before(due[j].NextFireAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *MemoryRepo) Reschedule(_ context.Context, chatID int64, next time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[chatID]
	if !ok {
		// Removed mid-delivery; do not resurrect.
		return nil
	}
	sub.NextFireAt = next
	r.subs[chatID] = sub
	return nil
}

func (r *MemoryRepo) Close() error { return nil }
