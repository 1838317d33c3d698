package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/domain"
)

// Service сервис для отправки сообщений через Telegram Bot API
type Service struct {
	bot BotAPI
}

// NewService создает новый экземпляр Telegram сервиса
func NewService(bot BotAPI) *Service {
	return &Service{
		bot: bot,
	}
}

// SendMessage отправляет сообщение через Telegram Bot API
// Inline-кнопки (обычные ссылки и WebApp) добавляются при наличии
func (s *Service) SendMessage(msg *domain.TelegramMessage) error {
	if msg.ChatID == 0 {
		return ErrInvalidChatID
	}

	if msg.MessageText == "" {
		return ErrEmptyMessage
	}

	tgMsg := tgbotapi.NewMessage(msg.ChatID, msg.MessageText)
	tgMsg.ParseMode = msg.ParseMode

	if msg.HasButtons() {
		tgMsg.ReplyMarkup = s.buildInlineKeyboard(msg.InlineButtons)
	}

	_, err := s.bot.Send(tgMsg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение без форматирования
func (s *Service) SendText(chatID int64, text string) error {
	return s.SendMessage(domain.NewTextMessage(chatID, text))
}

// buildInlineKeyboard создает inline-клавиатуру из массива кнопок
// Каждая кнопка на отдельной строке
func (s *Service) buildInlineKeyboard(buttons []domain.InlineButton) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, btn := range buttons {
		var row []tgbotapi.InlineKeyboardButton

		if btn.WebAppURL != "" {
			row = tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonWebApp(btn.Text, tgbotapi.WebAppInfo{
					URL: btn.WebAppURL,
				}),
			)
		} else {
			row = tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL),
			)
		}

		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SetWebhook устанавливает webhook URL для получения обновлений от Telegram
func (s *Service) SetWebhook(webhookURL string) error {
	webhook, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("%w: failed to create webhook config: %v", ErrSetWebhook, err)
	}

	_, err = s.bot.Request(webhook)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSetWebhook, err)
	}

	return nil
}

// DeleteWebhook удаляет webhook (переключает на long polling)
func (s *Service) DeleteWebhook() error {
	deleteWebhook := tgbotapi.DeleteWebhookConfig{
		DropPendingUpdates: false, // Сохраняем необработанные сообщения
	}

	_, err := s.bot.Request(deleteWebhook)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteWebhook, err)
	}

	return nil
}

// GetUpdatesChan возвращает канал для получения обновлений в режиме long polling
func (s *Service) GetUpdatesChan(offset int) tgbotapi.UpdatesChannel {
	updateConfig := tgbotapi.NewUpdate(offset)
	updateConfig.Timeout = 60 // Long polling timeout

	return s.bot.GetUpdatesChan(updateConfig)
}
