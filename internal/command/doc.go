// Package command implements the bot's command handlers and their dispatch.
//
// Inbound tokens are parsed into a closed Kind enum by ParseToken; the
// Registry executes a Kind against the repositories, the session store and
// the outbound Messenger. All handlers are methods on the Registry, which is
// constructed with every collaborator up front; follow-up steps (request
// phone, request location, request confirmation) are direct method calls, so
// there is no runtime lookup that can miss.
//
// # Checkout Gating
//
// Commands that belong to the checkout flow check the per-user
// processing-order flag on entry and fall back to the start screen when it
// is unset. Browsing commands (menu, details, cart views) reset the flag,
// silently abandoning any in-flight checkout.
package command
