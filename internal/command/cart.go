package command

import (
	"context"
	"fmt"
)

// openCart shows the cart as a table with the checkout shortcuts, or an
// empty-cart notice.
func (r *Registry) openCart(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	entries, err := r.cart.GetCart(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	menuRow := Row(Button{Text: btnMenu, Data: "menu"})
	if len(entries) == 0 {
		return r.msg.SendText(ctx, req.ChatID, textCartEmpty, [][]Button{menuRow})
	}

	keyboard := [][]Button{
		Row(Button{Text: btnStartOrder, Data: "start_order"}),
		Row(Button{Text: btnCleanCart, Data: "clean_cart"}),
		menuRow,
	}
	text := fmt.Sprintf("<code>%s</code>\n\n💵 <b>До сплати:</b> %s грн",
		renderCartTable(entries), formatPrice(cartTotal(entries)))
	return r.msg.SendText(ctx, req.ChatID, text, keyboard)
}

// cleanCart empties the cart wholesale.
func (r *Registry) cleanCart(ctx context.Context, req Request) error {
	r.sessions.Reset(req.UserID)

	if err := r.cart.ClearCart(ctx, req.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	keyboard := [][]Button{Row(Button{Text: btnMenu, Data: "menu"})}
	return r.msg.SendText(ctx, req.ChatID, textCartEmpty, keyboard)
}
