package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/adp-pizza/pizzabot/internal/command"
	"github.com/adp-pizza/pizzabot/pkg/types"
)

// Event is a transport-neutral inbound update. Exactly one of the payload
// groups is meaningful: a shared contact, a shared location, a callback
// token, a slash command, or a plain text message.
type Event struct {
	ChatID    int64
	UserID    int64
	Username  string
	FirstName string
	LastName  string

	// Command and Args are set for slash commands ("/details Маргарита").
	Command string
	Args    string

	// Callback is the inline-keyboard token.
	Callback string

	// Text is a plain message; treated as a menu-item name lookup.
	Text string

	// Phone is set when the user shared a contact.
	Phone string

	// Latitude/Longitude are set when the user shared a location.
	Latitude    float64
	Longitude   float64
	HasLocation bool
}

// Executor runs a resolved command. *command.Registry satisfies it.
type Executor interface {
	Execute(ctx context.Context, kind command.Kind, req command.Request) error
}

// Dispatcher resolves inbound events to command kinds and serializes
// execution per user, so a double-tapped button never runs two handlers for
// the same user concurrently.
type Dispatcher struct {
	exec Executor
	log  *logrus.Entry

	mu    sync.Mutex
	users map[int64]*sync.Mutex
}

// NewDispatcher builds a dispatcher around an executor.
func NewDispatcher(exec Executor, log *logrus.Entry) *Dispatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Dispatcher{
		exec:  exec,
		log:   log,
		users: make(map[int64]*sync.Mutex),
	}
}

// HandleEvent resolves and executes one event while holding the per-user
// lock.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev Event) error {
	kind, req, err := resolve(ev)
	if err != nil {
		d.log.WithError(err).WithField("user_id", ev.UserID).Warn("unroutable event")
		return err
	}

	lock := d.userLock(ev.UserID)
	lock.Lock()
	defer lock.Unlock()

	return d.exec.Execute(ctx, kind, req)
}

func (d *Dispatcher) userLock(userID int64) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		d.users[userID] = lock
	}
	return lock
}

// resolve maps an event to a command kind and request. Unregistered
// callback tokens and plain text fall back to a menu-item name lookup,
// which is how menu buttons labeled with item names work.
func resolve(ev Event) (command.Kind, command.Request, error) {
	req := command.Request{
		ChatID:    ev.ChatID,
		UserID:    ev.UserID,
		Username:  ev.Username,
		FirstName: ev.FirstName,
		LastName:  ev.LastName,
	}

	switch {
	case ev.Phone != "":
		req.Phone = ev.Phone
		return command.KindGotPhone, req, nil

	case ev.HasLocation:
		req.Latitude = ev.Latitude
		req.Longitude = ev.Longitude
		req.HasLocation = true
		return command.KindGotLocation, req, nil

	case ev.Callback != "":
		kind, arg, err := command.ParseToken(ev.Callback)
		if errors.Is(err, types.ErrUnknownCommand) {
			req.Arg = ev.Callback
			return command.KindDetails, req, nil
		}
		if err != nil {
			return 0, req, err
		}
		req.Arg = arg
		return kind, req, nil

	case ev.Command != "":
		if ev.Command == "details" {
			req.Arg = ev.Args
			return command.KindDetails, req, nil
		}
		kind, arg, err := command.ParseToken(ev.Command)
		if errors.Is(err, types.ErrUnknownCommand) {
			req.Arg = ev.Command
			return command.KindDetails, req, nil
		}
		if err != nil {
			return 0, req, err
		}
		req.Arg = arg
		return kind, req, nil

	case ev.Text != "":
		req.Arg = ev.Text
		return command.KindDetails, req, nil
	}

	return 0, req, types.ErrUnknownCommand
}
