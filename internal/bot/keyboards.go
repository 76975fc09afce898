package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack/internal/game"
)

const (
	CallbackHit   = "hit"
	CallbackStand = "stand"
	CallbackReset = "reset"
)

// GameKeyboard shows Hit and Stand only while the player may act.
func GameKeyboard(turn game.Turn) tgbotapi.InlineKeyboardMarkup {
	if turn != game.PlayerTurn {
		return EndGameKeyboard()
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ Stand", CallbackStand),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Заново", CallbackReset),
		),
	)
}

func EndGameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Ещё раз", CallbackReset),
		),
	)
}
