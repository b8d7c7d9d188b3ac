package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBrokerPublishToSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(SearchCommittedEvent)

	b.Publish(Event{Type: SearchCommittedEvent, Payload: SearchCommittedPayload{Term: "pain"}})

	select {
	case ev := <-ch:
		require.Equal(t, SearchCommittedEvent, ev.Type)
		require.Equal(t, "pain", ev.Payload.(SearchCommittedPayload).Term)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBrokerIgnoresOtherTypes(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(LoaderSnapshotEvent)

	b.Publish(Event{Type: SearchCommittedEvent})

	select {
	case <-ch:
		t.Fatal("received event of a type not subscribed to")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBrokerWildcardSubscription(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	b.Publish(Event{Type: VisibilityEnterEvent})
	b.Publish(Event{Type: LoaderErrorEvent})

	for i := 0; i < 2; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("wildcard subscriber missed an event")
		}
	}
}

func TestBrokerFullBufferDoesNotBlock(t *testing.T) {
	b := NewBroker(WithBufferSize(1))
	ch := b.Subscribe(LoaderSnapshotEvent)

	done := make(chan struct{})
	go func() {
		// Second publish must not block even though nobody drains ch.
		b.Publish(Event{Type: LoaderSnapshotEvent})
		b.Publish(Event{Type: LoaderSnapshotEvent})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	<-ch
}

func TestBrokerUnsubscribeClosesOnce(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(LoaderSnapshotEvent, LoaderErrorEvent)

	// Must not panic on double-registered channels.
	b.Unsubscribe(ch)

	_, open := <-ch
	require.False(t, open, "channel should be closed after unsubscribe")

	b.Publish(Event{Type: LoaderSnapshotEvent}) // no-op, no panic
}

func TestBrokerClear(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(LoaderSnapshotEvent)
	b.Clear()

	_, open := <-ch
	require.False(t, open)
}
