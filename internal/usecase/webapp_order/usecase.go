package webapp_order

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/domain"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/service/telegram/templates"
)

// UseCase обрабатывает данные заказа, присланные WebApp страницей
type UseCase struct {
	telegramService TelegramService
	logger          Logger
	metrics         Metrics
}

// New создаёт новый use case для обработки данных WebApp
// metrics может быть nil, если метрики выключены
func New(telegramService TelegramService, logger Logger, metrics Metrics) *UseCase {
	return &UseCase{
		telegramService: telegramService,
		logger:          logger,
		metrics:         metrics,
	}
}

// Execute разбирает payload заказа и отвечает пользователю подтверждением
// Все ошибки обработки гасятся внутри: пользователь получает ответ в любом случае,
// наружу возвращаются только ошибки отправки в Telegram
func (uc *UseCase) Execute(ctx context.Context, from *tgbotapi.User, chatID int64, payload string) error {
	order, err := domain.ParseOrder(payload)
	if err != nil {
		return uc.handleParseError(chatID, err)
	}

	confirmation := templates.GetOrderConfirmationText(order.Name, order.PriceDollars(), order.IDTag())

	if err := uc.telegramService.SendText(chatID, confirmation); err != nil {
		uc.incTelegramSendError()
		uc.incOrderFailed()
		uc.logger.Error("Failed to send order confirmation to chat %d: %v", chatID, err)

		// Пытаемся хотя бы сообщить пользователю об ошибке
		if sendErr := uc.telegramService.SendText(chatID, templates.GetOrderProcessingErrorText(err)); sendErr != nil {
			uc.incTelegramSendError()
		}

		return fmt.Errorf("usecase.WebAppOrder: send confirmation to chat %d: %w", chatID, err)
	}

	var userID int64
	if from != nil {
		userID = from.ID
	}

	uc.logger.Info("Order from user %d: %s ($%.2f)", userID, order.Name, order.PriceDollars())
	uc.incOrderReceived()

	return nil
}

// handleParseError отвечает пользователю в зависимости от типа ошибки разбора
// Нечитаемый JSON получает фиксированное сообщение и не логируется,
// прочие ошибки обработки уходят пользователю с текстом ошибки и попадают в лог
func (uc *UseCase) handleParseError(chatID int64, err error) error {
	uc.incOrderFailed()

	if errors.Is(err, domain.ErrMalformedPayload) {
		if sendErr := uc.telegramService.SendText(chatID, templates.OrderParseErrorText); sendErr != nil {
			uc.incTelegramSendError()
			return fmt.Errorf("usecase.WebAppOrder: send parse error reply to chat %d: %w", chatID, sendErr)
		}
		return nil
	}

	uc.logger.Error("Failed to process order for chat %d: %v", chatID, err)

	if sendErr := uc.telegramService.SendText(chatID, templates.GetOrderProcessingErrorText(err)); sendErr != nil {
		uc.incTelegramSendError()
		return fmt.Errorf("usecase.WebAppOrder: send processing error reply to chat %d: %w", chatID, sendErr)
	}

	return nil
}

func (uc *UseCase) incOrderReceived() {
	if uc.metrics != nil {
		uc.metrics.IncOrderReceived()
	}
}

func (uc *UseCase) incOrderFailed() {
	if uc.metrics != nil {
		uc.metrics.IncOrderFailed()
	}
}

func (uc *UseCase) incTelegramSendError() {
	if uc.metrics != nil {
		uc.metrics.IncTelegramSendError()
	}
}
