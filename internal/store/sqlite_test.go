package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

func openTestDB(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)
	next := time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, &domain.Subscription{
		ChatID:       7,
		IntervalDays: 14,
		Currency:     domain.CurrencyCZK,
		HourOfDay:    8,
		NextFireAt:   next,
		CreatedAt:    next.AddDate(0, 0, -1),
	}))

	got, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 14, got.IntervalDays)
	assert.Equal(t, domain.CurrencyCZK, got.Currency)
	assert.Equal(t, 8, got.HourOfDay)
	assert.True(t, got.NextFireAt.Equal(next))

	_, err = repo.Get(ctx, 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepo_DueAndReschedule(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)
	now := time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, &domain.Subscription{
		ChatID: 1, IntervalDays: 7, Currency: domain.CurrencyUSD, HourOfDay: 22,
		NextFireAt: now.Add(-time.Minute), CreatedAt: now,
	}))
	require.NoError(t, repo.Upsert(ctx, &domain.Subscription{
		ChatID: 2, IntervalDays: 7, Currency: domain.CurrencyUSD, HourOfDay: 22,
		NextFireAt: now.Add(time.Hour), CreatedAt: now,
	}))

	due, err := repo.ListDue(ctx, now, 100)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, int64(1), due[0].ChatID)

	next := now.AddDate(0, 0, 7)
	require.NoError(t, repo.Reschedule(ctx, 1, next))

	due, err = repo.ListDue(ctx, now, 100)
	require.NoError(t, err)
	assert.Empty(t, due)

	// Rescheduling a removed chat stays a no-op.
	removed, err := repo.Remove(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	require.NoError(t, repo.Reschedule(ctx, 1, next))
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
