package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

// start shows the greeting. Like every browsing command it abandons any
// in-flight checkout.
func (r *Registry) start(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)
	return r.msg.SendText(ctx, req.ChatID, textGreeting, nil)
}

// showMenu lists the catalog as one button per item, plus the show-all
// shortcut. Button labels double as lookup keys: an unregistered token is
// resolved as an item name by the dispatcher.
func (r *Registry) showMenu(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	items, err := r.menu.ListMenu(ctx)
	if err != nil {
		return fmt.Errorf("list menu: %w", err)
	}

	keyboard := make([][]Button, 0, len(items)+1)
	for _, item := range items {
		keyboard = append(keyboard, Row(Button{Text: item.Name, Data: item.Name}))
	}
	keyboard = append(keyboard, Row(Button{Text: btnShowAll, Data: "all_details"}))

	return r.msg.SendText(ctx, req.ChatID, textMenuHeader, keyboard)
}

// details shows one item looked up by name (req.Arg). A miss is a
// user-visible not-found reply, never a hard failure.
func (r *Registry) details(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	item, err := r.menu.GetMenuItemByName(ctx, req.Arg)
	if err != nil {
		if errors.Is(err, types.ErrProductNotFound) {
			return r.msg.SendText(ctx, req.ChatID, textItemNotFound, nil)
		}
		return fmt.Errorf("menu item %q: %w", req.Arg, err)
	}

	return r.sendItemDetails(ctx, req.ChatID, item.ID, item.Name, item.Description, item.PhotoURL, item.Price)
}

// allDetails sends one details message per catalog item with a plain loop;
// no recursive re-dispatch.
func (r *Registry) allDetails(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	items, err := r.menu.ListMenu(ctx)
	if err != nil {
		return fmt.Errorf("list menu: %w", err)
	}
	for _, item := range items {
		if err := r.sendItemDetails(ctx, req.ChatID, item.ID, item.Name, item.Description, item.PhotoURL, item.Price); err != nil {
			return err
		}
	}
	return nil
}

// addToCart adds the product identified by the token suffix (req.Arg).
func (r *Registry) addToCart(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	productID, err := strconv.ParseInt(req.Arg, 10, 64)
	if err != nil {
		return r.msg.SendText(ctx, req.ChatID, textItemNotFound, nil)
	}

	if err := r.cart.AddToCart(ctx, req.UserID, productID); err != nil {
		if errors.Is(err, types.ErrProductNotFound) {
			return r.msg.SendText(ctx, req.ChatID, textItemNotFound, nil)
		}
		return fmt.Errorf("add product %d to cart: %w", productID, err)
	}

	keyboard := [][]Button{Row(Button{Text: btnOpenCart, Data: "open_cart"})}
	return r.msg.SendText(ctx, req.ChatID, textAddedToCart, keyboard)
}

func (r *Registry) sendItemDetails(ctx context.Context, chatID, itemID int64, name, description, photoURL string, price float64) error {
	caption := fmt.Sprintf("🍕 <b>%s</b>\n\n💡 <b>Склад:</b> <i>%s</i>\n\n💵 <b>Ціна:</b> %s грн",
		name, description, formatPrice(price))
	keyboard := [][]Button{Row(Button{
		Text: btnAddToCart,
		Data: fmt.Sprintf("%s%d", addToCartPrefix, itemID),
	})}

	if photoURL != "" {
		return r.msg.SendPhoto(ctx, chatID, photoURL, caption, keyboard)
	}
	return r.msg.SendText(ctx, chatID, caption, keyboard)
}
