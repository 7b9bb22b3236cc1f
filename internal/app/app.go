package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/coingecko"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/config"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/metrics"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/scheduler"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/session"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/store"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	repo    store.Repo
	router  *telegram.Router
	sched   *scheduler.Scheduler
}

// updatePollTimeout is the long-polling window passed to GetUpdatesChan.
// The bot's HTTP client must stay bounded above it or every poll would
// time out client-side.
const updatePollTimeout = 30 * time.Second

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	// A bounded client so a hung Telegram connection cannot block a send
	// forever. sendMessage and getUpdates share this client.
	botClient := &http.Client{Timeout: updatePollTimeout + 10*time.Second}
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, botClient)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

// openRepo selects the storage backend. Memory matches the original bot;
// sqlite keeps schedules across restarts.
func (a *App) openRepo(ctx context.Context) (store.Repo, error) {
	switch a.cfg.StoreBackend {
	case "memory":
		return store.NewMemory(), nil
	case "sqlite":
		return store.OpenSQLite(ctx, a.cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", a.cfg.StoreBackend)
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting btc-price-bot",
		zap.String("store", a.cfg.StoreBackend),
		zap.String("http", a.cfg.HTTPAddr),
		zap.Duration("tick", a.cfg.TickInterval),
	)

	repo, err := a.openRepo(ctx)
	if err != nil {
		a.log.Error("open store failed", zap.Error(err))
		return err
	}
	a.repo = repo

	clock := domain.SystemClock()
	onboarding := session.New()
	prices := coingecko.New(a.cfg.CoinGeckoURL, a.cfg.FetchTimeout)

	a.router = telegram.NewRouter(a.bot, a.log, a.repo, onboarding, prices, clock)
	a.sched = scheduler.New(a.repo, a.log, a.router, clock, a.cfg.TickInterval, a.cfg.DeliveryTimeout)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.sched.Run(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(updatePollTimeout / time.Second)
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			// Create a short-lived shutdown context and cancel it immediately after use.
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.repo != nil {
				_ = a.repo.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
