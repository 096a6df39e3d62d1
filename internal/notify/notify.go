// Package notify delivers desktop notifications over the session bus.
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
)

// Urgency levels per the Desktop Notifications specification.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notifier delivers one desktop notification.
type Notifier interface {
	Notify(summary, body string, urgency Urgency) error
}

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod  = "org.freedesktop.Notifications.Notify"

	// Non-critical notifications expire on their own.
	defaultExpiryMs = int32(10000)
)

type busNotifier struct {
	conn *dbus.Conn
}

// New connects to the session bus. When the bus is unreachable, a disabled
// notifier is returned and the condition is logged once; the panel keeps
// running without notifications.
func New() Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		logging.Warnf("desktop notifications disabled: %v", err)
		return Disabled()
	}
	return &busNotifier{conn: conn}
}

// Disabled returns a notifier that silently drops everything.
func Disabled() Notifier {
	return disabledNotifier{}
}

func (n *busNotifier) Notify(summary, body string, urgency Urgency) error {
	id := uuid.New().String()
	events.Notify.Send(id, summary, byte(urgency))

	expiry := defaultExpiryMs
	if urgency == UrgencyCritical {
		expiry = 0
	}
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(urgency)),
	}

	obj := n.conn.Object(notifyService, notifyPath)
	call := obj.Call(notifyMethod, 0,
		"niri-panel",
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		hints,
		expiry,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

type disabledNotifier struct{}

func (disabledNotifier) Notify(summary, body string, urgency Urgency) error {
	return nil
}
