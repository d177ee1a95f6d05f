// Package telegram is the Bot API transport. The Bot type adapts outbound
// messages to Telegram chattables (HTML parse mode, inline keyboards, reply
// keyboards for contact capture) and translates long-poll updates into
// dispatch events.
package telegram
