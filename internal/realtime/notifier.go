package realtime

import (
	"context"

	"github.com/chrisospina/contact-manager/internal/pkg/logger"
)

// Publisher pushes a message toward other instances; the local hub still
// receives it through the bus forwarder. bus.Bus satisfies this.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Broadcaster turns a successful commit into a contacts-changed signal.
// With no publisher configured it fans out through the local hub; with one,
// it publishes to the bus so every instance (this one included) delivers via
// its forwarder. Failures never propagate to the caller: the commit already
// succeeded, so problems here are logged and the local hub is used as a
// fallback.
type Broadcaster struct {
	hub *Hub
	pub Publisher
	log *logger.Logger
}

func NewBroadcaster(hub *Hub, pub Publisher, log *logger.Logger) *Broadcaster {
	return &Broadcaster{
		hub: hub,
		pub: pub,
		log: log.With("component", "broadcaster"),
	}
}

func (b *Broadcaster) ContactsChanged(ctx context.Context) {
	msg := Message{Event: EventContactsChanged}

	if b.pub != nil {
		err := b.pub.Publish(ctx, msg)
		if err == nil {
			return
		}
		b.log.Warn("bus publish failed; falling back to local broadcast", "error", err)
	}

	b.hub.Broadcast(msg)
}
