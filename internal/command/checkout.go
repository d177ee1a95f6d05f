package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/adp-pizza/pizzabot/internal/session"
	"github.com/adp-pizza/pizzabot/pkg/types"
)

// startOrder begins checkout. A user whose profile already exists skips the
// capture steps and goes straight to confirmation; the branch is on whether
// a profile exists, not on whether this is their first order.
func (r *Registry) startOrder(ctx context.Context, req Request) error {
	_, err := r.users.GetUser(ctx, req.UserID)
	switch {
	case err == nil:
		r.sessions.Begin(req.UserID, session.PendingConfirmation)
		return r.requestConfirmation(ctx, req)
	case errors.Is(err, types.ErrUserNotFound):
		profile := &types.UserProfile{
			ID:        req.UserID,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		if err := r.users.CreateUser(ctx, profile); err != nil {
			return fmt.Errorf("create user %d: %w", req.UserID, err)
		}
		r.sessions.Begin(req.UserID, session.PendingPhone)
		return r.requestPhone(ctx, req)
	default:
		return fmt.Errorf("get user %d: %w", req.UserID, err)
	}
}

// requestPhone asks the user to share their contact via a one-time reply
// keyboard.
func (r *Registry) requestPhone(ctx context.Context, req Request) error {
	if !r.sessions.Processing(req.UserID) {
		return r.start(ctx, req)
	}
	r.sessions.SetPending(req.UserID, session.PendingPhone)
	return r.msg.RequestContact(ctx, req.ChatID, textRequestPhone, btnSharePhone)
}

// requestLocation asks for a delivery address. Also reachable from the
// confirmation screen as "change address"; the captured phone survives.
func (r *Registry) requestLocation(ctx context.Context, req Request) error {
	if !r.sessions.Processing(req.UserID) {
		return r.start(ctx, req)
	}
	r.sessions.SetPending(req.UserID, session.PendingLocation)
	return r.msg.SendText(ctx, req.ChatID, textRequestLocation, nil)
}

// gotPhone persists a shared contact. When the profile still has no saved
// location the flow continues with the location request, otherwise it goes
// straight to confirmation.
func (r *Registry) gotPhone(ctx context.Context, req Request) error {
	if !r.sessions.Processing(req.UserID) {
		return r.start(ctx, req)
	}

	phone := req.Phone
	if err := r.users.UpdateUserContact(ctx, req.UserID, &phone, nil); err != nil {
		return fmt.Errorf("save phone for user %d: %w", req.UserID, err)
	}
	if err := r.msg.SendTextRemoveKeyboard(ctx, req.ChatID, textPhoneSaved); err != nil {
		return err
	}

	user, err := r.users.GetUser(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", req.UserID, err)
	}
	if user.Location == "" {
		return r.requestLocation(ctx, req)
	}
	return r.requestConfirmation(ctx, req)
}

// gotLocation persists a shared location as a pipe-delimited pair and moves
// on to confirmation.
func (r *Registry) gotLocation(ctx context.Context, req Request) error {
	if !r.sessions.Processing(req.UserID) {
		return r.start(ctx, req)
	}

	location := types.EncodeLocation(req.Latitude, req.Longitude)
	if err := r.users.UpdateUserContact(ctx, req.UserID, nil, &location); err != nil {
		return fmt.Errorf("save location for user %d: %w", req.UserID, err)
	}
	if err := r.msg.SendText(ctx, req.ChatID, textLocationSaved, nil); err != nil {
		return err
	}
	return r.requestConfirmation(ctx, req)
}

// requestConfirmation re-displays the cart, the captured phone and the
// delivery pin with confirm/cancel/change-address buttons.
func (r *Registry) requestConfirmation(ctx context.Context, req Request) error {
	if !r.sessions.Processing(req.UserID) {
		return r.start(ctx, req)
	}
	r.sessions.SetPending(req.UserID, session.PendingConfirmation)

	entries, err := r.cart.GetCart(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	user, err := r.users.GetUser(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", req.UserID, err)
	}

	var latitude, longitude float64
	if user.Location != "" {
		latitude, longitude, err = types.DecodeLocation(user.Location)
		if err != nil {
			return fmt.Errorf("decode location for user %d: %w", req.UserID, err)
		}
	}

	text := fmt.Sprintf("📄 Ваше замовлення:\n<code>%s</code>\n\n💵 <b>До сплати:</b> %s грн\n\n📱 Номер телефону: %s\n🗺️ Адреса доставки:",
		renderCartTable(entries), formatPrice(cartTotal(entries)), user.Phone)
	if err := r.msg.SendText(ctx, req.ChatID, text, nil); err != nil {
		return err
	}

	keyboard := [][]Button{
		Row(Button{Text: btnConfirmOrder, Data: "confirm_order"}),
		Row(Button{Text: btnCancelOrder, Data: "cancel_order"}),
		Row(Button{Text: btnChangeAddress, Data: "request_location"}),
	}
	return r.msg.SendLocation(ctx, req.ChatID, latitude, longitude, keyboard)
}

// confirmOrder snapshots the cart into an immutable order, clears the cart
// and finishes the checkout. The compare-and-set on the session flag makes
// a double-tapped confirm button produce exactly one order.
func (r *Registry) confirmOrder(ctx context.Context, req Request) error {
	if !r.sessions.CompareAndSwapProcessing(req.UserID, true, false) {
		return r.start(ctx, req)
	}

	entries, err := r.cart.GetCart(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	user, err := r.users.GetUser(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", req.UserID, err)
	}

	order := &types.Order{
		UserID:   req.UserID,
		Phone:    user.Phone,
		Items:    orderItems(entries),
		Total:    cartTotal(entries),
		Location: user.Location,
	}
	orderID, err := r.orders.CreateOrder(ctx, order)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if err := r.cart.ClearCart(ctx, req.UserID); err != nil {
		return fmt.Errorf("clear cart after order %d: %w", orderID, err)
	}

	text := fmt.Sprintf("✅ Ваше замовлення #%d оформлено. Очікуйте на дзвінок кур'єра ❣️", orderID)
	return r.msg.SendText(ctx, req.ChatID, text, nil)
}

// cancelOrder abandons the checkout and offers the way back to menu/cart.
func (r *Registry) cancelOrder(ctx context.Context, req Request) error {
	if !r.sessions.CompareAndSwapProcessing(req.UserID, true, false) {
		return r.start(ctx, req)
	}

	keyboard := [][]Button{
		Row(Button{Text: btnMenu, Data: "menu"}),
		Row(Button{Text: btnOpenCart, Data: "open_cart"}),
	}
	return r.msg.SendText(ctx, req.ChatID, textOrderCancelled, keyboard)
}
