package telegram_webhook

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StartCommandUseCase интерфейс для обработки команды /start
type StartCommandUseCase interface {
	Execute(ctx context.Context, chatID int64, args string) error
}

// WebAppOrderUseCase интерфейс для обработки данных заказа от WebApp
type WebAppOrderUseCase interface {
	Execute(ctx context.Context, from *tgbotapi.User, chatID int64, payload string) error
}

// TelegramService интерфейс для отправки простых текстовых ответов
type TelegramService interface {
	SendText(chatID int64, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
