package eventbus

import (
	"context"
	"errors"
	"testing"
)

func TestBusPublishBroadcast(t *testing.T) {
	bus := NewBus()
	calledA := false
	calledB := false

	bus.Subscribe(ContentEventCreated, func(ctx context.Context, event ContentEvent) error {
		calledA = true
		return nil
	})
	bus.Subscribe(ContentEventCreated, func(ctx context.Context, event ContentEvent) error {
		calledB = true
		return nil
	})

	if err := bus.Publish(context.Background(), ContentEvent{Type: ContentEventCreated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !calledA || !calledB {
		t.Fatalf("expected handlers to be called")
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	called := false
	unsubscribe := bus.Subscribe(ContentEventDeleted, func(ctx context.Context, event ContentEvent) error {
		called = true
		return nil
	})
	unsubscribe()

	if err := bus.Publish(context.Background(), ContentEvent{Type: ContentEventDeleted}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("expected handler to be unsubscribed")
	}
}

func TestBusPublishJoinErrors(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(ContentEventUpdated, func(ctx context.Context, event ContentEvent) error {
		return errors.New("err-a")
	})
	bus.Subscribe(ContentEventUpdated, func(ctx context.Context, event ContentEvent) error {
		return errors.New("err-b")
	})

	if err := bus.Publish(context.Background(), ContentEvent{Type: ContentEventUpdated}); err == nil {
		t.Fatalf("expected error")
	}
}
