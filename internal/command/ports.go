package command

import (
	"context"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

// MenuCatalog is the read-only view of the menu.
type MenuCatalog interface {
	ListMenu(ctx context.Context) ([]types.MenuItem, error)
	GetMenuItemByName(ctx context.Context, name string) (*types.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id int64) (*types.MenuItem, error)
}

// CartStore aggregates per-user cart lines. AddToCart returns
// types.ErrProductNotFound when the product is not on the menu.
type CartStore interface {
	AddToCart(ctx context.Context, userID, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]types.CartEntry, error)
	ClearCart(ctx context.Context, userID int64) error
}

// UserStore persists user profiles and their captured contact fields.
// GetUser and UpdateUserContact return types.ErrUserNotFound for unknown
// users; a nil phone/location leaves the field untouched.
type UserStore interface {
	GetUser(ctx context.Context, userID int64) (*types.UserProfile, error)
	CreateUser(ctx context.Context, profile *types.UserProfile) error
	UpdateUserContact(ctx context.Context, userID int64, phone, location *string) error
}

// OrderLedger appends confirmed orders. Implementations must allocate
// strictly increasing ids atomically.
type OrderLedger interface {
	CreateOrder(ctx context.Context, order *types.Order) (int64, error)
}
