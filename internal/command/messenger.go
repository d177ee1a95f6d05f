package command

import "context"

// Button is one inline keyboard button; Data is the callback token it
// carries back into the dispatcher.
type Button struct {
	Text string
	Data string
}

// Row builds one keyboard row.
func Row(buttons ...Button) []Button {
	return buttons
}

// Messenger is the outbound capability the command layer needs from the
// chat transport. Message delivery and retries are the transport's problem.
type Messenger interface {
	// SendText sends an HTML-formatted text message with an optional
	// inline keyboard.
	SendText(ctx context.Context, chatID int64, text string, keyboard [][]Button) error
	// SendPhoto sends an image by reference with a caption and optional
	// inline keyboard.
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard [][]Button) error
	// SendLocation sends a map pin with an optional inline keyboard.
	SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, keyboard [][]Button) error
	// RequestContact shows a one-time reply keyboard asking the user to
	// share their phone number.
	RequestContact(ctx context.Context, chatID int64, text, buttonText string) error
	// SendTextRemoveKeyboard sends a text message and removes any reply
	// keyboard previously shown.
	SendTextRemoveKeyboard(ctx context.Context, chatID int64, text string) error
}
