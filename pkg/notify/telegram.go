// Package notify delivers operator alerts to an external channel.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	Send(text string) error
}

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("can't create telegram bot: %w", err)
	}
	return &Telegram{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *Telegram) Send(text string) error {
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		return fmt.Errorf("can't send telegram message: %w", err)
	}
	return nil
}

// Noop is used when no Telegram credentials are configured; alerts still
// land in the log and the notices table.
type Noop struct{}

func (Noop) Send(string) error { return nil }
