package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
)

// telegramAPI is the slice of the bot API the notifier uses.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram delivers notifications as Telegram messages.
type Telegram struct {
	api telegramAPI
}

// NewTelegram returns new Telegram notifier authorized with provided bot token.
func NewTelegram(token string) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("can't create bot api: %w", err)
	}

	return &Telegram{
		api: api,
	}, nil
}

// Send delivers the notification to the monitor's Telegram chat.
// It returns ErrNoTelegramChat if the monitor has no chat ID.
func (t *Telegram) Send(_ context.Context, notification models.Notification, monitor *models.Monitor) error {
	if monitor.TelegramChatID == nil {
		return ErrNoTelegramChat
	}

	msg := tgbotapi.NewMessage(*monitor.TelegramChatID, fmt.Sprintf("%s\n\n%s", notification.Title, notification.Message))
	msg.DisableWebPagePreview = true

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("can't send telegram message: %w", err)
	}

	return nil
}
