package hub

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftalk/config"
	"shelftalk/internal/message/model"
	"shelftalk/pkg/logger"
)

func newTestHub() *Hub {
	log, _ := logger.NewLogger(&config.Config{})
	return NewHub(*log)
}

func recvEvent(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev := <-sub.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	a := NewSubscriber()
	b := NewSubscriber()
	h.Subscribe(a, ref)
	h.Subscribe(b, ref)

	msg := &model.Message{ID: uuid.New(), Conversation: ref, Body: "hello"}
	h.PublishMessage(msg)

	for _, sub := range []*Subscriber{a, b} {
		ev := recvEvent(t, sub)
		assert.Equal(t, "message:new", ev.Type)
		assert.Equal(t, msg, ev.Data)
	}
}

func TestHub_ConversationsAreIsolated(t *testing.T) {
	h := newTestHub()
	refC := model.ChannelRef(uuid.New())
	refD := model.DirectRef(uuid.New())

	sub := NewSubscriber()
	h.Subscribe(sub, refC)

	h.Publish(refD, Event{Type: "message:new"})
	assertNoEvent(t, sub)

	h.Publish(refC, Event{Type: "message:new"})
	assert.Equal(t, "message:new", recvEvent(t, sub).Type)
}

func TestHub_SubscribeIsIdempotent(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	sub := NewSubscriber()
	h.Subscribe(sub, ref)
	h.Subscribe(sub, ref)

	h.Publish(ref, Event{Type: "message:new"})
	recvEvent(t, sub)
	assertNoEvent(t, sub)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	sub := NewSubscriber()
	h.Subscribe(sub, ref)
	h.Unsubscribe(sub, ref)

	h.Publish(ref, Event{Type: "message:new"})
	assertNoEvent(t, sub)

	// Unsubscribing again, or from a conversation never joined, is a
	// no-op.
	h.Unsubscribe(sub, ref)
	h.Unsubscribe(sub, model.ChannelRef(uuid.New()))
}

func TestHub_NoRetroactiveDelivery(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	early := NewSubscriber()
	h.Subscribe(early, ref)
	h.Publish(ref, Event{Type: "message:new"})

	late := NewSubscriber()
	h.Subscribe(late, ref)

	recvEvent(t, early)
	assertNoEvent(t, late)
}

func TestHub_DropConnection(t *testing.T) {
	h := newTestHub()
	refA := model.ChannelRef(uuid.New())
	refB := model.DirectRef(uuid.New())

	sub := NewSubscriber()
	other := NewSubscriber()
	h.Subscribe(sub, refA)
	h.Subscribe(sub, refB)
	h.Subscribe(other, refA)

	h.DropConnection(sub)

	// Publishing after the drop must not panic and must not reach the
	// dropped subscriber; survivors are unaffected.
	h.Publish(refA, Event{Type: "message:new"})
	h.Publish(refB, Event{Type: "message:new"})

	assertNoEvent(t, sub)
	recvEvent(t, other)

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done must be closed after DropConnection")
	}

	// Closed is terminal: re-subscribing is ignored.
	h.Subscribe(sub, refA)
	h.Publish(refA, Event{Type: "message:new"})
	assertNoEvent(t, sub)

	// Dropping twice is safe.
	h.DropConnection(sub)
}

func TestHub_EmptyRoomsAreRetired(t *testing.T) {
	h := newTestHub()
	refA := model.ChannelRef(uuid.New())
	refB := model.ChannelRef(uuid.New())

	sub := NewSubscriber()
	h.Subscribe(sub, refA)
	h.Subscribe(sub, refB)

	h.Unsubscribe(sub, refA)
	h.mu.RLock()
	require.Len(t, h.rooms, 1)
	h.mu.RUnlock()

	h.DropConnection(sub)
	h.mu.RLock()
	require.Empty(t, h.rooms)
	h.mu.RUnlock()
}

func TestHub_DropConnectionRacingSubscribe(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	// A drop racing a subscribe must leave nothing behind: either the
	// subscribe loses and is ignored, or it wins and the drop sweeps the
	// ref it just recorded. Either way the subscriber is gone and its
	// room, now empty, is retired.
	for i := 0; i < 1000; i++ {
		sub := NewSubscriber()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Subscribe(sub, ref)
		}()
		go func() {
			defer wg.Done()
			h.DropConnection(sub)
		}()
		wg.Wait()

		h.mu.RLock()
		_, lingering := h.rooms[ref]
		h.mu.RUnlock()
		require.False(t, lingering, "dropped subscriber left its room alive (iteration %d)", i)
	}
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	h := newTestHub()
	ref := model.ChannelRef(uuid.New())

	stalled := NewSubscriber()
	healthy := NewSubscriber()
	h.Subscribe(stalled, ref)
	h.Subscribe(healthy, ref)

	// Nothing drains stalled; overflow its mailbox and keep going.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < mailboxSize*2; i++ {
			h.Publish(ref, Event{Type: "message:new", Data: i})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a stalled subscriber")
	}

	// The healthy subscriber still got a full mailbox worth; the
	// stalled one simply lost the overflow.
	assert.Len(t, healthy.events, mailboxSize)
	assert.Len(t, stalled.events, mailboxSize)
}
