package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func newTestBus() *Bus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishRunsHandlersInOrder(t *testing.T) {
	bus := newTestBus()
	var got []string

	bus.Subscribe("company.updated", func(ctx context.Context, e Event) error {
		got = append(got, "first")
		return nil
	})
	bus.Subscribe("company.updated", func(ctx context.Context, e Event) error {
		got = append(got, "second")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "company.updated"})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestPublishSkipsOtherEvents(t *testing.T) {
	bus := newTestBus()
	called := false

	bus.Subscribe("position.created", func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "company.created"})

	assert.False(t, called)
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	bus := newTestBus()
	var got []string

	bus.Subscribe("company.calculate", func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe("company.calculate", func(ctx context.Context, e Event) error {
		got = append(got, "ran")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "company.calculate"})

	assert.Equal(t, []string{"ran"}, got)
}

func TestPublishRecoversPanickingHandler(t *testing.T) {
	bus := newTestBus()

	bus.Subscribe("position.updated", func(ctx context.Context, e Event) error {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent{name: "position.updated"})
	})
}

func TestSubscribersCount(t *testing.T) {
	bus := newTestBus()
	bus.Subscribe("company.deleted", func(ctx context.Context, e Event) error { return nil })

	assert.Equal(t, 1, bus.SubscribersCount("company.deleted"))
	assert.Equal(t, 0, bus.SubscribersCount("company.created"))
}
