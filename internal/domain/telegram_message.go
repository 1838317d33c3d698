package domain

// ParseMode константы для режимов парсинга текста в Telegram
const (
	ParseModeHTML     = "HTML"     // HTML форматирование
	ParseModeMarkdown = "Markdown" // Markdown форматирование (legacy)
	ParseModePlain    = ""         // Без форматирования (для пользовательского контента)
)

// InlineButton представляет inline-кнопку в Telegram
// Заполняется либо URL (обычная ссылка), либо WebAppURL (открытие WebApp)
type InlineButton struct {
	Text      string `json:"text"`
	URL       string `json:"url,omitempty"`
	WebAppURL string `json:"web_app_url,omitempty"`
}

// TelegramMessage представляет сообщение для отправки через Telegram Bot API
type TelegramMessage struct {
	ChatID        int64          // ID чата получателя
	MessageText   string         // Текст сообщения
	InlineButtons []InlineButton // Inline-кнопки
	ParseMode     string         // Режим парсинга (HTML, Markdown, Plain)
}

// NewTextMessage создает простое текстовое сообщение без форматирования
func NewTextMessage(chatID int64, text string) *TelegramMessage {
	return &TelegramMessage{
		ChatID:      chatID,
		MessageText: text,
		ParseMode:   ParseModePlain,
	}
}

// HasButtons проверяет, есть ли inline-кнопки
func (m *TelegramMessage) HasButtons() bool {
	return len(m.InlineButtons) > 0
}

// WithButtons добавляет inline-кнопки и возвращает сообщение (builder pattern)
func (m *TelegramMessage) WithButtons(buttons ...InlineButton) *TelegramMessage {
	m.InlineButtons = append(m.InlineButtons, buttons...)
	return m
}

// WithParseMode устанавливает режим парсинга и возвращает сообщение (builder pattern)
func (m *TelegramMessage) WithParseMode(mode string) *TelegramMessage {
	m.ParseMode = mode
	return m
}
