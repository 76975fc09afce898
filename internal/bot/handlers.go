package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack/internal/game"
	"blackjack/internal/render"
	"blackjack/internal/session"
)

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot    Sender
	games  *session.Service
	logger *log.Logger
}

func NewHandler(bot Sender, games *session.Service, logger *log.Logger) *Handler {
	return &Handler{
		bot:    bot,
		games:  games,
		logger: logger,
	}
}

// ============== ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ==============

func sessionKey(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("Failed to send message", "chat", chatID, "error", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("Failed to send message", "chat", chatID, "error", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("Failed to answer callback", "error", err)
	}
}

func (h *Handler) sendState(chatID int64, g game.State) {
	h.sendWithKeyboard(chatID, render.State(g), GameKeyboard(g.Turn))
}

// ============== ОБРАБОТЧИКИ КОМАНД ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Добро пожаловать в Blackjack!\n\n"+
			"/play — новая игра\n"+
			"/state — текущая раздача\n"+
			"/help — правила")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Правила Blackjack:\n\n"+
			"🎯 Цель: набрать 21 очко или больше дилера, не перебрав\n\n"+
			"📊 Очки:\n"+
			"• 2-10 — номинал\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 или 1\n\n"+
			"🎮 Действия:\n"+
			"• Hit — взять карту\n"+
			"• Stand — остановиться, при 16 и меньше дилер берёт карту\n\n"+
			"🎰 Blackjack (туз + десятка) бьёт любые 21")
}

func (h *Handler) HandlePlay(ctx context.Context, chatID int64) {
	g, err := h.games.Deal(ctx, sessionKey(chatID))
	if err != nil {
		h.logger.Error("Failed to deal", "chat", chatID, "error", err)
		h.send(chatID, "❌ Ошибка. Попробуйте позже.")
		return
	}

	h.logger.Debug("New round", "chat", chatID, "player", g.PlayerHand, "dealer", g.DealerHand)
	h.sendState(chatID, g)
}

func (h *Handler) HandleState(ctx context.Context, chatID int64) {
	g, err := h.games.Get(ctx, sessionKey(chatID))
	if errors.Is(err, session.ErrNotFound) {
		h.send(chatID, "Нет активной игры. /play — начать")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load game", "chat", chatID, "error", err)
		h.send(chatID, "❌ Ошибка")
		return
	}

	h.sendState(chatID, g)
}

// ============== ОБРАБОТЧИКИ CALLBACK ==============

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID
	key := sessionKey(chatID)

	var (
		g   game.State
		err error
	)

	switch callback.Data {
	case CallbackReset:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(ctx, chatID)
		return
	case CallbackHit:
		g, err = h.games.Hit(ctx, key)
	case CallbackStand:
		g, err = h.games.Stand(ctx, key)
	default:
		h.answerCallback(callback.ID, "")
		return
	}

	switch {
	case errors.Is(err, session.ErrNotFound):
		h.answerCallback(callback.ID, "Игра не активна")
		return
	case errors.Is(err, session.ErrNotPlayerTurn):
		h.answerCallback(callback.ID, "Сейчас ход дилера")
		return
	case err != nil:
		h.logger.Error("Action failed", "chat", chatID, "action", callback.Data, "error", err)
		h.answerCallback(callback.ID, "Ошибка")
		return
	}

	if result := game.Outcome(g); result != game.ResultNone {
		h.logger.Info("Round finished", "chat", chatID, "result", result,
			"player", g.PlayerScore(), "dealer", g.DealerScore())
	}

	h.answerCallback(callback.ID, "")
	h.sendState(chatID, g)
}

// ============== ОБРАБОТЧИК СООБЩЕНИЙ ==============

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// "/play@botname" в группах
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(ctx, chatID)
	case "/state":
		h.HandleState(ctx, chatID)
	}
}
