package interfaces

import "context"

type Event interface {
	GetType() string
}

type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}
