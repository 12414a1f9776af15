package bus

import (
	"context"

	"github.com/chrisospina/contact-manager/internal/realtime"
)

// Bus fans the contacts-changed signal out across service instances.
type Bus interface {
	Publish(ctx context.Context, msg realtime.Message) error
	StartForwarder(ctx context.Context, onMsg func(msg realtime.Message)) error
	Close() error
}
