package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WebAppOrderBot/internal/domain"
)

// mockBotAPI запоминает отправленные Chattable для проверок
type mockBotAPI struct {
	sent    []tgbotapi.Chattable
	sendErr error
}

func (m *mockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.sendErr != nil {
		return tgbotapi.Message{}, m.sendErr
	}
	m.sent = append(m.sent, c)
	return tgbotapi.Message{}, nil
}

func (m *mockBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.sent = append(m.sent, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *mockBotAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(chan tgbotapi.Update)
}

func TestService_SendMessage(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		bot := &mockBotAPI{}
		svc := NewService(bot)

		err := svc.SendText(42, "hello")
		require.NoError(t, err)

		require.Len(t, bot.sent, 1)
		msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Equal(t, "hello", msg.Text)
		assert.Nil(t, msg.ReplyMarkup)
	})

	t.Run("webapp buttons", func(t *testing.T) {
		bot := &mockBotAPI{}
		svc := NewService(bot)

		err := svc.SendMessage(domain.NewTextMessage(42, "welcome").WithButtons(
			domain.InlineButton{Text: "Menu", WebAppURL: "https://example.com#/burger-king"},
			domain.InlineButton{Text: "Init Data", WebAppURL: "https://example.com#/init-data"},
		))
		require.NoError(t, err)

		require.Len(t, bot.sent, 1)
		msg := bot.sent[0].(tgbotapi.MessageConfig)

		markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		require.True(t, ok)
		require.Len(t, markup.InlineKeyboard, 2)

		first := markup.InlineKeyboard[0][0]
		require.NotNil(t, first.WebApp)
		assert.Equal(t, "Menu", first.Text)
		assert.Equal(t, "https://example.com#/burger-king", first.WebApp.URL)

		second := markup.InlineKeyboard[1][0]
		require.NotNil(t, second.WebApp)
		assert.Equal(t, "https://example.com#/init-data", second.WebApp.URL)
	})

	t.Run("url button", func(t *testing.T) {
		bot := &mockBotAPI{}
		svc := NewService(bot)

		err := svc.SendMessage(domain.NewTextMessage(42, "link").WithButtons(
			domain.InlineButton{Text: "Site", URL: "https://example.com"},
		))
		require.NoError(t, err)

		msg := bot.sent[0].(tgbotapi.MessageConfig)
		markup := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		button := markup.InlineKeyboard[0][0]
		require.NotNil(t, button.URL)
		assert.Equal(t, "https://example.com", *button.URL)
		assert.Nil(t, button.WebApp)
	})

	t.Run("invalid chat id", func(t *testing.T) {
		svc := NewService(&mockBotAPI{})

		err := svc.SendText(0, "hello")
		assert.ErrorIs(t, err, ErrInvalidChatID)
	})

	t.Run("empty message", func(t *testing.T) {
		svc := NewService(&mockBotAPI{})

		err := svc.SendText(42, "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		bot := &mockBotAPI{sendErr: errors.New("network down")}
		svc := NewService(bot)

		err := svc.SendText(42, "hello")
		assert.ErrorIs(t, err, ErrSendMessage)
		assert.Contains(t, err.Error(), "network down")
	})
}
