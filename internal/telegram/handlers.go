package telegram

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

func (r *Router) handleHelp(chatID int64) {
	if err := r.sendMarkdown(chatID, helpText); err != nil {
		r.log.Error("send help failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}

func (r *Router) handlePrice(ctx context.Context, chatID int64) {
	prices, err := r.prices.Prices(ctx)
	if err != nil {
		r.log.Error("fetch prices failed", zap.Error(err))
		_ = r.sendMarkdown(chatID, pricesErrorText)
		return
	}
	if err := r.sendMarkdown(chatID, pricesText(prices)); err != nil {
		r.log.Error("send prices failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}

func (r *Router) handleInfo(ctx context.Context, chatID int64, text string) {
	currency := domain.DefaultCurrency
	if fields := strings.Fields(text); len(fields) > 1 {
		currency = strings.ToLower(fields[1])
	}
	if !domain.IsSupportedCurrency(currency) {
		_ = r.sendMarkdown(chatID, invalidCurrencyText)
		return
	}

	snap, err := r.prices.FetchSnapshot(ctx, currency)
	if err != nil {
		r.log.Error("fetch snapshot failed", zap.Error(err), zap.String("currency", currency))
		_ = r.sendMarkdown(chatID, infoErrorText)
		return
	}
	if err := r.sendMarkdown(chatID, infoText(currency, snap)); err != nil {
		r.log.Error("send info failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}

func (r *Router) handleStart(chatID int64) {
	if err := r.sendMarkdown(chatID, startPromptText); err != nil {
		r.log.Error("send start prompt failed", zap.Error(err), zap.Int64("chatID", chatID))
		return
	}
	// An existing subscription stays until new parameters validate;
	// re-registration replaces it then.
	r.onboarding.Begin(chatID)
}

func (r *Router) handleStop(ctx context.Context, chatID int64) {
	removed, err := r.repo.Remove(ctx, chatID)
	if err != nil {
		r.log.Error("remove subscription failed", zap.Error(err), zap.Int64("chatID", chatID))
		return
	}
	if removed {
		_ = r.sendMarkdown(chatID, stoppedText)
	} else {
		_ = r.sendMarkdown(chatID, notSubscribedText)
	}
}

// handleFreeForm consumes registration parameters from onboarding chats.
// Anything else is an unknown command answered with help.
func (r *Router) handleFreeForm(ctx context.Context, chatID int64, text string) {
	if !r.onboarding.IsAwaiting(chatID) {
		_ = r.sendMarkdown(chatID, unknownCommandText)
		r.handleHelp(chatID)
		return
	}

	intervalDays, currency, hour, err := domain.ParseSubscription(text)
	if err != nil {
		// The chat stays in onboarding so it can retry.
		r.log.Info("invalid registration input",
			zap.Int64("chatID", chatID),
			zap.String("input", text),
			zap.Error(err),
		)
		_ = r.sendMarkdown(chatID, invalidInputText)
		return
	}

	now := r.clock.Now()
	first := domain.FirstFire(now, intervalDays, hour)
	sub := &domain.Subscription{
		ChatID:       chatID,
		IntervalDays: intervalDays,
		Currency:     currency,
		HourOfDay:    hour,
		NextFireAt:   first,
		CreatedAt:    now,
	}
	if err := r.repo.Upsert(ctx, sub); err != nil {
		r.log.Error("save subscription failed", zap.Error(err), zap.Int64("chatID", chatID))
		_ = r.sendMarkdown(chatID, saveErrorText)
		return
	}
	r.onboarding.Complete(chatID)

	_ = r.sendMarkdown(chatID, confirmationText(intervalDays, currency, first))
}
