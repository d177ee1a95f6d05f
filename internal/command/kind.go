package command

import (
	"strings"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

// Kind identifies a bot command. The set is closed; dispatch is an
// exhaustive switch rather than a lookup table.
type Kind int

const (
	KindStart Kind = iota
	KindMenu
	KindDetails
	KindAllDetails
	KindAddToCart
	KindOpenCart
	KindCleanCart
	KindStartOrder
	KindConfirmOrder
	KindCancelOrder
	KindRequestConfirmation
	KindRequestPhone
	KindRequestLocation
	KindGotPhone
	KindGotLocation
)

// String returns the wire token for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindMenu:
		return "menu"
	case KindDetails:
		return "details"
	case KindAllDetails:
		return "all_details"
	case KindAddToCart:
		return "add_to_cart"
	case KindOpenCart:
		return "open_cart"
	case KindCleanCart:
		return "clean_cart"
	case KindStartOrder:
		return "start_order"
	case KindConfirmOrder:
		return "confirm_order"
	case KindCancelOrder:
		return "cancel_order"
	case KindRequestConfirmation:
		return "request_order_confirmation"
	case KindRequestPhone:
		return "request_phone_number"
	case KindRequestLocation:
		return "request_location"
	case KindGotPhone:
		return "got_phone_number"
	case KindGotLocation:
		return "got_location"
	}
	return "unknown"
}

// addToCartPrefix is the fixed prefix of parameterized add-to-cart tokens;
// the remainder is the product id.
const addToCartPrefix = "add_to_cart_"

// ParseToken resolves a callback token or slash-command name to a command
// kind. Parameterized add_to_cart_<id> tokens yield KindAddToCart with the
// id suffix as the argument. Unmatched tokens return
// types.ErrUnknownCommand; callers fall back to a menu-item name lookup.
func ParseToken(token string) (Kind, string, error) {
	if arg, ok := strings.CutPrefix(token, addToCartPrefix); ok {
		return KindAddToCart, arg, nil
	}

	switch token {
	case "start":
		return KindStart, "", nil
	case "menu":
		return KindMenu, "", nil
	case "all_details":
		return KindAllDetails, "", nil
	case "open_cart":
		return KindOpenCart, "", nil
	case "clean_cart":
		return KindCleanCart, "", nil
	case "start_order":
		return KindStartOrder, "", nil
	case "confirm_order":
		return KindConfirmOrder, "", nil
	case "cancel_order":
		return KindCancelOrder, "", nil
	case "request_location":
		return KindRequestLocation, "", nil
	}
	return 0, "", types.ErrUnknownCommand
}
