package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adp-pizza/pizzabot/internal/command"
)

func TestInlineKeyboard(t *testing.T) {
	markup := inlineKeyboard([][]command.Button{
		command.Row(command.Button{Text: "Маргарита", Data: "Маргарита"}),
		command.Row(
			command.Button{Text: "Так", Data: "confirm_order"},
			command.Button{Text: "Ні", Data: "cancel_order"},
		),
	})

	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[1], 2)
	assert.Equal(t, "Маргарита", markup.InlineKeyboard[0][0].Text)
	require.NotNil(t, markup.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "confirm_order", *markup.InlineKeyboard[1][0].CallbackData)
}

func TestEventFromUpdateMessageKinds(t *testing.T) {
	b := &Bot{}
	from := &tgbotapi.User{ID: 42, UserName: "olena", FirstName: "Олена"}
	chat := &tgbotapi.Chat{ID: 42}

	t.Run("plain text", func(t *testing.T) {
		ev, ok := b.eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
			From: from, Chat: chat, Text: "Пепероні",
		}})
		require.True(t, ok)
		assert.Equal(t, "Пепероні", ev.Text)
		assert.Equal(t, int64(42), ev.UserID)
	})

	t.Run("slash command with args", func(t *testing.T) {
		text := "/details Маргарита"
		ev, ok := b.eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
			From: from, Chat: chat, Text: text,
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 8}},
		}})
		require.True(t, ok)
		assert.Equal(t, "details", ev.Command)
		assert.Equal(t, "Маргарита", ev.Args)
	})

	t.Run("contact", func(t *testing.T) {
		ev, ok := b.eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
			From: from, Chat: chat,
			Contact: &tgbotapi.Contact{PhoneNumber: "+380501234567"},
		}})
		require.True(t, ok)
		assert.Equal(t, "+380501234567", ev.Phone)
	})

	t.Run("location", func(t *testing.T) {
		ev, ok := b.eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
			From: from, Chat: chat,
			Location: &tgbotapi.Location{Latitude: 50.45, Longitude: 30.52},
		}})
		require.True(t, ok)
		require.True(t, ev.HasLocation)
		assert.Equal(t, 50.45, ev.Latitude)
		assert.Equal(t, 30.52, ev.Longitude)
	})

	t.Run("callback", func(t *testing.T) {
		ev, ok := b.eventFromUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
			From:    from,
			Message: &tgbotapi.Message{Chat: chat},
			Data:    "add_to_cart_1",
		}})
		require.True(t, ok)
		assert.Equal(t, "add_to_cart_1", ev.Callback)
	})

	t.Run("empty update dropped", func(t *testing.T) {
		_, ok := b.eventFromUpdate(tgbotapi.Update{})
		assert.False(t, ok)
	})
}
