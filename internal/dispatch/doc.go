// Package dispatch routes transport-neutral inbound events to bot commands.
//
// An Event describes one update from the chat transport: a slash command, an
// inline-keyboard callback, a plain text message, a shared contact or a
// shared location. The Dispatcher resolves each event to a command kind,
// builds the request, and executes it while holding a per-user lock so
// updates from the same user are handled one at a time.
package dispatch
