package bot

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack/internal/config"
	"blackjack/internal/session"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	logger  *log.Logger
}

func New(cfg *config.Config, games *session.Service, logger *log.Logger) (*Bot, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, games, logger),
		logger:  logger,
	}, nil
}

// Run polls for updates until ctx is cancelled. Every update is handled in
// its own goroutine; transitions on one chat are serialized by the session service.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Bot started", "user", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.dispatch(ctx, updates)
	b.api.StopReceivingUpdates()

	b.logger.Info("Bot stopped")
	return nil
}

// dispatch returns once ctx is cancelled or updates is closed, and only after
// every handler it started has finished. Handlers get a context that is not
// cancelled with ctx so in-flight store writes complete.
func (b *Bot) dispatch(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.CallbackQuery != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					b.handler.HandleCallback(handlerCtx, update.CallbackQuery)
				}()
				continue
			}

			if update.Message != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					b.handler.HandleMessage(handlerCtx, update.Message)
				}()
			}
		}
	}
}
