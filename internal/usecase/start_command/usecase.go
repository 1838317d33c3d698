package start_command

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WebAppOrderBot/internal/domain"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/service/telegram/templates"
)

// UseCase обрабатывает команду /start
type UseCase struct {
	telegramService  TelegramService
	defaultWebAppURL string
}

// New создаёт новый use case для обработки /start
// defaultWebAppURL может быть пустым - тогда используется запасной адрес из templates
func New(telegramService TelegramService, defaultWebAppURL string) *UseCase {
	return &UseCase{
		telegramService:  telegramService,
		defaultWebAppURL: defaultWebAppURL,
	}
}

// Execute отправляет приветственное сообщение с WebApp кнопками
// args - сырые аргументы команды; первый аргумент переопределяет адрес WebApp
func (uc *UseCase) Execute(ctx context.Context, chatID int64, args string) error {
	webappURL := uc.resolveWebAppURL(args)

	msg := domain.NewTextMessage(chatID, templates.WelcomeMessageText).WithButtons(
		domain.InlineButton{
			Text:      templates.MenuButtonText,
			WebAppURL: templates.GetMenuURL(webappURL),
		},
		domain.InlineButton{
			Text:      templates.InitDataButtonText,
			WebAppURL: templates.GetInitDataURL(webappURL),
		},
	)

	if err := uc.telegramService.SendMessage(msg); err != nil {
		return fmt.Errorf("usecase.StartCommand: send welcome message to chat %d: %w", chatID, err)
	}

	return nil
}

// resolveWebAppURL выбирает адрес WebApp
// Приоритет: аргумент команды > сконфигурированный адрес > запасной адрес
func (uc *UseCase) resolveWebAppURL(args string) string {
	if fields := strings.Fields(args); len(fields) > 0 {
		return fields[0]
	}

	if uc.defaultWebAppURL != "" {
		return uc.defaultWebAppURL
	}

	return templates.DefaultWebAppURL
}
