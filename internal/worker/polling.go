package worker

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/service/telegram/templates"
)

const (
	commandStart = "start"
	commandHelp  = "help"
)

// PollingHandler обрабатывает входящие сообщения от Telegram в режиме long polling
type PollingHandler struct {
	startCommandUseCase StartCommandUseCase
	webAppOrderUseCase  WebAppOrderUseCase
	telegramService     TelegramService
	logger              Logger
}

// NewPollingHandler создаёт новый обработчик для long polling
func NewPollingHandler(
	startCommandUseCase StartCommandUseCase,
	webAppOrderUseCase WebAppOrderUseCase,
	telegramService TelegramService,
	logger Logger,
) *PollingHandler {
	return &PollingHandler{
		startCommandUseCase: startCommandUseCase,
		webAppOrderUseCase:  webAppOrderUseCase,
		telegramService:     telegramService,
		logger:              logger,
	}
}

// Start запускает обработку обновлений из канала
// Блокирующий метод, должен вызываться в отдельной goroutine
func (h *PollingHandler) Start(ctx context.Context, updatesChan tgbotapi.UpdatesChannel) {
	h.logger.Info("Starting Telegram long polling handler...")

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping Telegram long polling handler...")
			return

		case update := <-updatesChan:
			h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает одно обновление от Telegram
// Обновления по одному, в порядке получения: внешний диспетчер не нужен
func (h *PollingHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message
	chatID := msg.Chat.ID

	// Данные от WebApp страницы (кнопка "Order" в меню)
	if msg.WebAppData != nil {
		h.handleWebAppData(ctx, msg)
		return
	}

	if !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case commandStart:
		h.handleStartCommand(ctx, msg)

	case commandHelp:
		if err := h.telegramService.SendText(chatID, templates.HelpMessageText); err != nil {
			h.logger.Error("Failed to send help message to chat %d: %v", chatID, err)
		}
	}
}

// handleStartCommand обрабатывает команду /start через use case
func (h *PollingHandler) handleStartCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	h.logger.Info("Received /start command (chat %d)", chatID)

	if err := h.startCommandUseCase.Execute(ctx, chatID, msg.CommandArguments()); err != nil {
		h.logger.Error("Failed to handle /start command for chat %d: %v", chatID, err)
		return
	}

	h.logger.Info("Successfully processed /start command (chat %d)", chatID)
}

// handleWebAppData обрабатывает payload заказа от WebApp через use case
func (h *PollingHandler) handleWebAppData(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	h.logger.Info("Received WebApp data (chat %d, %d bytes)", chatID, len(msg.WebAppData.Data))

	if err := h.webAppOrderUseCase.Execute(ctx, msg.From, chatID, msg.WebAppData.Data); err != nil {
		h.logger.Error("Failed to handle WebApp data for chat %d: %v", chatID, err)
	}
}
