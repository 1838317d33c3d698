package telegram_webhook

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/handlers"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/service/telegram/templates"
)

const (
	msgInvalidRequestBody = "invalid request body"

	commandStart = "start"
	commandHelp  = "help"
)

// Handler принимает webhook update от Telegram и маршрутизирует его
// так же, как polling-обработчик: /start, /help и данные WebApp
type Handler struct {
	startCommandUseCase StartCommandUseCase
	webAppOrderUseCase  WebAppOrderUseCase
	telegramService     TelegramService
	logger              Logger
}

func NewHandler(
	startCommandUseCase StartCommandUseCase,
	webAppOrderUseCase WebAppOrderUseCase,
	telegramService TelegramService,
	logger Logger,
) *Handler {
	return &Handler{
		startCommandUseCase: startCommandUseCase,
		webAppOrderUseCase:  webAppOrderUseCase,
		telegramService:     telegramService,
		logger:              logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсим webhook update от Telegram
	var update tgbotapi.Update
	if err := handlers.DecodeJSON(r, &update); err != nil {
		h.logger.Warn("Failed to decode telegram webhook: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Telegram ожидает 200 на любой update, даже проигнорированный
	if update.Message == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	msg := update.Message
	chatID := msg.Chat.ID

	if msg.WebAppData != nil {
		if err := h.webAppOrderUseCase.Execute(r.Context(), msg.From, chatID, msg.WebAppData.Data); err != nil {
			h.logger.Error("Failed to handle WebApp data for chat %d: %v", chatID, err)
			handlers.RespondInternalError(w)
			return
		}

		w.WriteHeader(http.StatusOK)
		return
	}

	if !msg.IsCommand() {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch msg.Command() {
	case commandStart:
		if err := h.startCommandUseCase.Execute(r.Context(), chatID, msg.CommandArguments()); err != nil {
			h.logger.Error("Failed to handle /start command for chat %d: %v", chatID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("Successfully processed /start command (chat %d)", chatID)

	case commandHelp:
		if err := h.telegramService.SendText(chatID, templates.HelpMessageText); err != nil {
			h.logger.Error("Failed to send help message to chat %d: %v", chatID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
