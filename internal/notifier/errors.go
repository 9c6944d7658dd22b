package notifier

import "errors"

// ErrNoTelegramChat is returned when a Telegram notification targets a monitor
// without a chat ID.
var ErrNoTelegramChat = errors.New("monitor has no telegram chat ID")
