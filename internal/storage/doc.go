// Package storage provides SQLite-based persistence for the ordering bot.
//
// The storage layer manages:
//   - The menu catalog (read-only to the bot)
//   - Per-user carts
//   - User profiles with captured phone/location
//   - The append-only order ledger
//
// # Database Schema
//
// Tables:
//   - menu: catalog items (name, description, photo, price)
//   - cart_items: one row per (user, product) with aggregated quantity
//   - users: chat identity plus captured contact fields
//   - orders: confirmed orders with monotonic ids
//   - order_items: immutable snapshots of cart lines at confirmation
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage("pizzabot.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	if err := store.AddToCart(ctx, userID, productID); err != nil {
//	    // storage.ErrNotFound: product is not on the menu
//	}
//
// # Concurrency
//
// The pool is limited to a single connection, so writes are serialized at
// the driver level. AddToCart is a single upsert statement and CreateOrder
// allocates max(id)+1 inside one transaction; neither can lose updates or
// hand out duplicate ids under concurrent dispatches.
//
// # Build Tags
//
// Two driver configurations are supported:
//
// CGO build (cgo_sqlite tag), using github.com/mattn/go-sqlite3:
//
//	CGO_ENABLED=1 go build -tags "cgo_sqlite" ./...
//
// Pure Go build (default), using modernc.org/sqlite:
//
//	CGO_ENABLED=0 go build ./...
package storage
