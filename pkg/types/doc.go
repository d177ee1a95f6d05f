// Package types provides shared domain types for the pizza ordering bot.
//
// This package defines the entities exchanged between the command layer and
// the storage layer: menu items, cart entries, user profiles and orders,
// plus the sentinel errors the command layer translates into user-visible
// replies.
//
// # Core Types
//
// MenuItem is a catalog row, read-only to the bot:
//
//	item := types.MenuItem{
//	    ID:    1,
//	    Name:  "Маргарита",
//	    Price: 180,
//	}
//
// CartEntry is one (user, product) line with an aggregated quantity. The
// unit price is not stored separately; it is Total / Quantity.
//
// Order is an immutable snapshot of a cart captured at confirmation time.
// Its Items slice is never mutated after creation.
//
// # Location Encoding
//
// Delivery locations are persisted as a pipe-delimited latitude/longitude
// pair:
//
//	enc := types.EncodeLocation(50.45, 30.52) // "50.45|30.52"
//	lat, lon, err := types.DecodeLocation(enc)
package types
