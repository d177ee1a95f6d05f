package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/adp-pizza/pizzabot/internal/command"
	"github.com/adp-pizza/pizzabot/internal/dispatch"
)

// Bot wraps the Telegram Bot API client. It implements command.Messenger
// for outbound messages and runs the long-poll loop for inbound updates.
type Bot struct {
	api         *tgbotapi.BotAPI
	dispatcher  *dispatch.Dispatcher
	log         *logrus.Entry
	pollTimeout int
}

// NewBot authenticates against the Bot API with the given token.
func NewBot(token string, pollTimeout int, log *logrus.Entry) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticate bot: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log.WithField("username", api.Self.UserName).Info("authenticated with Telegram")

	return &Bot{api: api, log: log, pollTimeout: pollTimeout}, nil
}

// SetDispatcher wires the inbound side. Must be called before Run.
func (b *Bot) SetDispatcher(d *dispatch.Dispatcher) {
	b.dispatcher = d
}

// Run consumes the update channel until the context is cancelled. Each
// update is handled on its own goroutine; per-user ordering is the
// dispatcher's job.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ev, ok := b.eventFromUpdate(update)
	if !ok {
		return
	}

	if update.CallbackQuery != nil {
		// acknowledge the button press so the client stops the spinner
		if _, err := b.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			b.log.WithError(err).Warn("failed to answer callback query")
		}
	}

	if err := b.dispatcher.HandleEvent(ctx, ev); err != nil {
		b.log.WithError(err).WithField("user_id", ev.UserID).Debug("update not handled")
	}
}

// eventFromUpdate extracts the transport-neutral event. Updates without a
// message or callback payload are dropped.
func (b *Bot) eventFromUpdate(update tgbotapi.Update) (dispatch.Event, bool) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.Message == nil || cb.From == nil {
			return dispatch.Event{}, false
		}
		return dispatch.Event{
			ChatID:    cb.Message.Chat.ID,
			UserID:    cb.From.ID,
			Username:  cb.From.UserName,
			FirstName: cb.From.FirstName,
			LastName:  cb.From.LastName,
			Callback:  cb.Data,
		}, true

	case update.Message != nil:
		msg := update.Message
		if msg.From == nil {
			return dispatch.Event{}, false
		}
		ev := dispatch.Event{
			ChatID:    msg.Chat.ID,
			UserID:    msg.From.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
		switch {
		case msg.Contact != nil:
			ev.Phone = msg.Contact.PhoneNumber
		case msg.Location != nil:
			ev.Latitude = msg.Location.Latitude
			ev.Longitude = msg.Location.Longitude
			ev.HasLocation = true
		case msg.IsCommand():
			ev.Command = msg.Command()
			ev.Args = msg.CommandArguments()
		default:
			ev.Text = msg.Text
		}
		return ev, true
	}
	return dispatch.Event{}, false
}

// SendText sends an HTML-formatted message with an optional inline
// keyboard.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string, keyboard [][]command.Button) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(keyboard) > 0 {
		msg.ReplyMarkup = inlineKeyboard(keyboard)
	}
	_, err := b.api.Send(msg)
	return err
}

// SendPhoto sends a photo by URL with an HTML caption.
func (b *Bot) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard [][]command.Button) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	if len(keyboard) > 0 {
		photo.ReplyMarkup = inlineKeyboard(keyboard)
	}
	_, err := b.api.Send(photo)
	return err
}

// SendLocation sends a map pin with an optional inline keyboard.
func (b *Bot) SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, keyboard [][]command.Button) error {
	loc := tgbotapi.NewLocation(chatID, latitude, longitude)
	if len(keyboard) > 0 {
		loc.ReplyMarkup = inlineKeyboard(keyboard)
	}
	_, err := b.api.Send(loc)
	return err
}

// RequestContact shows a one-time reply keyboard with a share-contact
// button.
func (b *Bot) RequestContact(ctx context.Context, chatID int64, text, buttonText string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(buttonText)),
	)
	_, err := b.api.Send(msg)
	return err
}

// SendTextRemoveKeyboard sends a message and removes any reply keyboard.
func (b *Bot) SendTextRemoveKeyboard(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	_, err := b.api.Send(msg)
	return err
}

func inlineKeyboard(keyboard [][]command.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
