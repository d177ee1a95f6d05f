package command

import (
	"context"
	"errors"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

// Map-backed fakes for the repository ports plus a recording Messenger.

type fakeMenu struct {
	items []types.MenuItem
	err   error
}

func (m *fakeMenu) ListMenu(ctx context.Context) ([]types.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *fakeMenu) GetMenuItemByName(ctx context.Context, name string) (*types.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].Name == name {
			return &m.items[i], nil
		}
	}
	return nil, types.ErrProductNotFound
}

func (m *fakeMenu) GetMenuItemByID(ctx context.Context, id int64) (*types.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, types.ErrProductNotFound
}

type fakeCart struct {
	menu    *fakeMenu
	entries map[int64][]types.CartEntry
	err     error
}

func newFakeCart(menu *fakeMenu) *fakeCart {
	return &fakeCart{menu: menu, entries: make(map[int64][]types.CartEntry)}
}

func (c *fakeCart) AddToCart(ctx context.Context, userID, productID int64) error {
	if c.err != nil {
		return c.err
	}
	item, err := c.menu.GetMenuItemByID(ctx, productID)
	if err != nil {
		return err
	}
	for i, entry := range c.entries[userID] {
		if entry.ProductID == productID {
			unit := entry.Total / float64(entry.Quantity)
			entry.Quantity++
			entry.Total = float64(entry.Quantity) * unit
			c.entries[userID][i] = entry
			return nil
		}
	}
	c.entries[userID] = append(c.entries[userID], types.CartEntry{
		UserID:      userID,
		ProductID:   productID,
		ProductName: item.Name,
		Quantity:    1,
		Total:       item.Price,
	})
	return nil
}

func (c *fakeCart) GetCart(ctx context.Context, userID int64) ([]types.CartEntry, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.entries[userID], nil
}

func (c *fakeCart) ClearCart(ctx context.Context, userID int64) error {
	if c.err != nil {
		return c.err
	}
	delete(c.entries, userID)
	return nil
}

type fakeUsers struct {
	profiles map[int64]*types.UserProfile
	err      error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{profiles: make(map[int64]*types.UserProfile)}
}

func (u *fakeUsers) GetUser(ctx context.Context, userID int64) (*types.UserProfile, error) {
	if u.err != nil {
		return nil, u.err
	}
	profile, ok := u.profiles[userID]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	copied := *profile
	return &copied, nil
}

func (u *fakeUsers) CreateUser(ctx context.Context, profile *types.UserProfile) error {
	if u.err != nil {
		return u.err
	}
	if _, ok := u.profiles[profile.ID]; ok {
		return errors.New("user already exists")
	}
	copied := *profile
	u.profiles[profile.ID] = &copied
	return nil
}

func (u *fakeUsers) UpdateUserContact(ctx context.Context, userID int64, phone, location *string) error {
	if u.err != nil {
		return u.err
	}
	profile, ok := u.profiles[userID]
	if !ok {
		return types.ErrUserNotFound
	}
	if phone != nil {
		profile.Phone = *phone
	}
	if location != nil {
		profile.Location = *location
	}
	return nil
}

type fakeOrders struct {
	orders []*types.Order
	err    error
}

func (o *fakeOrders) CreateOrder(ctx context.Context, order *types.Order) (int64, error) {
	if o.err != nil {
		return 0, o.err
	}
	order.ID = int64(len(o.orders) + 1)
	copied := *order
	copied.Items = append([]types.OrderItem(nil), order.Items...)
	o.orders = append(o.orders, &copied)
	return order.ID, nil
}

// fakeMessenger records every outbound message.

type sentMessage struct {
	kind     string // text, photo, location, contact, remove_keyboard
	chatID   int64
	text     string
	photoURL string
	lat, lon float64
	keyboard [][]Button
}

type fakeMessenger struct {
	sent []sentMessage
	err  error
}

func (m *fakeMessenger) SendText(ctx context.Context, chatID int64, text string, keyboard [][]Button) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{kind: "text", chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

func (m *fakeMessenger) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, keyboard [][]Button) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{kind: "photo", chatID: chatID, text: caption, photoURL: photoURL, keyboard: keyboard})
	return nil
}

func (m *fakeMessenger) SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, keyboard [][]Button) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{kind: "location", chatID: chatID, lat: latitude, lon: longitude, keyboard: keyboard})
	return nil
}

func (m *fakeMessenger) RequestContact(ctx context.Context, chatID int64, text, buttonText string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{kind: "contact", chatID: chatID, text: text})
	return nil
}

func (m *fakeMessenger) SendTextRemoveKeyboard(ctx context.Context, chatID int64, text string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{kind: "remove_keyboard", chatID: chatID, text: text})
	return nil
}

func (m *fakeMessenger) last() sentMessage {
	if len(m.sent) == 0 {
		return sentMessage{}
	}
	return m.sent[len(m.sent)-1]
}

func (m *fakeMessenger) kinds() []string {
	kinds := make([]string, 0, len(m.sent))
	for _, s := range m.sent {
		kinds = append(kinds, s.kind)
	}
	return kinds
}
