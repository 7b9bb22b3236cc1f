package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/coingecko"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/session"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/store"
)

// PriceSource supplies current BTC market data. coingecko.Client implements it.
type PriceSource interface {
	Prices(ctx context.Context) (coingecko.SimplePrices, error)
	FetchSnapshot(ctx context.Context, currency string) (coingecko.Snapshot, error)
}

// Router wires Telegram updates to handlers.
type Router struct {
	bot        *tgbotapi.BotAPI
	log        *zap.Logger
	repo       store.Repo
	onboarding *session.Onboarding
	prices     PriceSource
	clock      domain.Clock
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, onboarding *session.Onboarding, prices PriceSource, clock domain.Clock) *Router {
	if clock == nil {
		clock = domain.SystemClock()
	}
	return &Router{
		bot:        bot,
		log:        log,
		repo:       repo,
		onboarding: onboarding,
		prices:     prices,
		clock:      clock,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/help"):
		r.handleHelp(chatID)
	case strings.HasPrefix(text, "/price"):
		r.handlePrice(ctx, chatID)
	case strings.HasPrefix(text, "/info"):
		r.handleInfo(ctx, chatID, text)
	case strings.HasPrefix(text, "/start"):
		r.handleStart(chatID)
	case strings.HasPrefix(text, "/stop"):
		r.handleStop(ctx, chatID)
	default:
		// Free-form text: registration parameters while onboarding,
		// otherwise an unknown command.
		r.handleFreeForm(ctx, chatID, text)
	}
}

// Deliver sends a scheduled BTC update to one chat. This makes Router satisfy
// scheduler.Notifier.
func (r *Router) Deliver(ctx context.Context, sub domain.Subscription) error {
	snap, err := r.prices.FetchSnapshot(ctx, sub.Currency)
	if err != nil {
		return err
	}
	return r.sendMarkdown(sub.ChatID, infoText(sub.Currency, snap))
}

// sendMarkdown sends a Markdown-formatted message to the given chat.
func (r *Router) sendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := r.bot.Send(msg)
	return err
}
