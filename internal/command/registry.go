package command

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adp-pizza/pizzabot/internal/session"
	"github.com/adp-pizza/pizzabot/pkg/types"
)

// Request carries the inbound event context a handler needs: who sent it,
// where to reply, and any payload the transport extracted.
type Request struct {
	ChatID    int64
	UserID    int64
	Username  string
	FirstName string
	LastName  string

	// Arg is the command parameter: a product id suffix for add-to-cart,
	// a product name for details.
	Arg string

	// Phone is set for shared-contact events.
	Phone string

	// Latitude/Longitude are set for shared-location events.
	Latitude    float64
	Longitude   float64
	HasLocation bool
}

// Deps bundles every collaborator a Registry needs. All handlers are wired
// at construction; there is no post-construction injection step.
type Deps struct {
	Menu     MenuCatalog
	Cart     CartStore
	Users    UserStore
	Orders   OrderLedger
	Sessions *session.Store
	Msg      Messenger
	Log      *logrus.Entry
}

// Registry executes commands against the repositories and session state.
type Registry struct {
	menu     MenuCatalog
	cart     CartStore
	users    UserStore
	orders   OrderLedger
	sessions *session.Store
	msg      Messenger
	log      *logrus.Entry
}

// NewRegistry builds a fully wired registry.
func NewRegistry(deps Deps) *Registry {
	log := deps.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Registry{
		menu:     deps.Menu,
		cart:     deps.Cart,
		users:    deps.Users,
		orders:   deps.Orders,
		sessions: deps.Sessions,
		msg:      deps.Msg,
		log:      log,
	}
}

// Execute runs one command. Repository failures are logged and answered
// with a generic failure notice instead of being dropped silently; the
// error is still returned to the caller.
func (r *Registry) Execute(ctx context.Context, kind Kind, req Request) error {
	err := r.dispatch(ctx, kind, req)
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"command": kind.String(),
			"user_id": req.UserID,
		}).Error("command failed")
		if sendErr := r.msg.SendText(ctx, req.ChatID, textSomethingWrong, nil); sendErr != nil {
			r.log.WithError(sendErr).Error("failed to send failure notice")
		}
	}
	return err
}

// dispatch is the total match over command kinds.
func (r *Registry) dispatch(ctx context.Context, kind Kind, req Request) error {
	switch kind {
	case KindStart:
		return r.start(ctx, req)
	case KindMenu:
		return r.showMenu(ctx, req)
	case KindDetails:
		return r.details(ctx, req)
	case KindAllDetails:
		return r.allDetails(ctx, req)
	case KindAddToCart:
		return r.addToCart(ctx, req)
	case KindOpenCart:
		return r.openCart(ctx, req)
	case KindCleanCart:
		return r.cleanCart(ctx, req)
	case KindStartOrder:
		return r.startOrder(ctx, req)
	case KindConfirmOrder:
		return r.confirmOrder(ctx, req)
	case KindCancelOrder:
		return r.cancelOrder(ctx, req)
	case KindRequestConfirmation:
		return r.requestConfirmation(ctx, req)
	case KindRequestPhone:
		return r.requestPhone(ctx, req)
	case KindRequestLocation:
		return r.requestLocation(ctx, req)
	case KindGotPhone:
		return r.gotPhone(ctx, req)
	case KindGotLocation:
		return r.gotLocation(ctx, req)
	}
	return fmt.Errorf("%w: kind %d", types.ErrUnknownCommand, kind)
}
