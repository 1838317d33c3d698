package start_command

import "github.com/m04kA/SMC-WebAppOrderBot/internal/domain"

// TelegramService интерфейс для работы с Telegram Bot API
type TelegramService interface {
	SendMessage(msg *domain.TelegramMessage) error
}
