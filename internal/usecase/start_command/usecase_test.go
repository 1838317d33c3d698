package start_command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WebAppOrderBot/internal/domain"
)

// mockTelegramService запоминает отправленные сообщения
type mockTelegramService struct {
	sent    []*domain.TelegramMessage
	sendErr error
}

func (m *mockTelegramService) SendMessage(msg *domain.TelegramMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func buttonURLs(msg *domain.TelegramMessage) []string {
	urls := make([]string, 0, len(msg.InlineButtons))
	for _, btn := range msg.InlineButtons {
		urls = append(urls, btn.WebAppURL)
	}
	return urls
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("no argument and no configured default", func(t *testing.T) {
		tg := &mockTelegramService{}
		uc := New(tg, "")

		err := uc.Execute(ctx, 42, "")
		require.NoError(t, err)

		require.Len(t, tg.sent, 1)
		msg := tg.sent[0]
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Contains(t, msg.MessageText, "Welcome")
		assert.Equal(t, []string{
			"https://example.com#/burger-king",
			"https://example.com#/init-data",
		}, buttonURLs(msg))
	})

	t.Run("configured default is used", func(t *testing.T) {
		tg := &mockTelegramService{}
		uc := New(tg, "https://demo.example.org/index.html")

		err := uc.Execute(ctx, 42, "")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://demo.example.org/index.html#/burger-king",
			"https://demo.example.org/index.html#/init-data",
		}, buttonURLs(tg.sent[0]))
	})

	t.Run("command argument overrides configured default", func(t *testing.T) {
		tg := &mockTelegramService{}
		uc := New(tg, "https://demo.example.org/index.html")

		err := uc.Execute(ctx, 42, "https://override.example.net/app ignored-rest")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://override.example.net/app#/burger-king",
			"https://override.example.net/app#/init-data",
		}, buttonURLs(tg.sent[0]))
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		tg := &mockTelegramService{sendErr: errors.New("telegram down")}
		uc := New(tg, "")

		err := uc.Execute(ctx, 42, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat 42")
	})
}
