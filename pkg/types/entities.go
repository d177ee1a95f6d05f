package types

import "time"

// MenuItem is a single catalog entry. The catalog is maintained outside the
// bot; the bot only reads it.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	PhotoURL    string // optional image reference, empty when absent
	Price       float64
}

// CartEntry is one line of a user's cart. At most one entry exists per
// (UserID, ProductID) pair; repeat adds increment Quantity and Total.
type CartEntry struct {
	UserID      int64
	ProductID   int64
	ProductName string
	Quantity    int64
	Total       float64
}

// UserProfile holds the identity and contact details captured during
// checkout. Phone and Location start empty and are filled independently.
type UserProfile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Location  string // EncodeLocation form, empty when not captured
}

// OrderItem is one line of an order snapshot.
type OrderItem struct {
	ProductName string
	Quantity    int64
	Total       float64
}

// Order is an immutable record of a confirmed checkout.
type Order struct {
	ID        int64
	UserID    int64
	Phone     string
	Items     []OrderItem
	Total     float64
	Location  string
	CreatedAt time.Time
}
