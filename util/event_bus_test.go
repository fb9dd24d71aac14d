package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jackoske/AllGoGrand/util"
)

func TestEventBusDeliversToSubscribers(t *testing.T) {
	bus := util.NewEventBus()
	received := make(chan util.Event, 2)

	handler := func(ctx context.Context, event util.Event) error {
		received <- event
		return nil
	}
	bus.Subscribe(util.EventAccessGranted, handler)
	bus.Subscribe(util.EventAccessGranted, handler)

	bus.Publish(context.Background(), util.EventAccessGranted, "payload")

	for i := 0; i < 2; i++ {
		select {
		case event := <-received:
			assert.Equal(t, util.EventAccessGranted, event.Type)
			assert.Equal(t, "payload", event.Payload)
		case <-time.After(2 * time.Second):
			t.Fatal("event was never delivered")
		}
	}
}

func TestEventBusIgnoresUnsubscribedTypes(t *testing.T) {
	bus := util.NewEventBus()
	received := make(chan util.Event, 1)

	bus.Subscribe(util.EventAccessDenied, func(ctx context.Context, event util.Event) error {
		received <- event
		return nil
	})

	bus.Publish(context.Background(), util.EventAccessGranted, "payload")

	select {
	case <-received:
		t.Fatal("handler fired for an event type it never subscribed to")
	case <-time.After(100 * time.Millisecond):
	}
}
