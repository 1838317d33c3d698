package webapp_order

// TelegramService интерфейс для отправки ответов пользователю
type TelegramService interface {
	SendText(chatID int64, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс счётчиков обработки заказов
type Metrics interface {
	IncOrderReceived()
	IncOrderFailed()
	IncTelegramSendError()
}
