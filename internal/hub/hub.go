// Package hub routes newly appended messages to the connections
// currently subscribed to their conversation.
//
// Delivery is best-effort and at-most-once: a subscriber that joins
// after a publish does not receive it, and a subscriber whose mailbox
// is full loses that event. The durable copy already lives in the
// message store, so a client can always re-fetch via history. The hub
// is not a message broker.
package hub

import (
	"sync"

	"shelftalk/internal/message/model"
	"shelftalk/pkg/logger"
)

// mailboxSize bounds each subscriber's pending events. Overflow drops
// for that subscriber only; publish never blocks on a slow reader.
const mailboxSize = 64

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Subscriber is one live connection's mailbox. It may be subscribed to
// any number of conversations at once.
type Subscriber struct {
	events chan Event
	done   chan struct{}
	once   sync.Once

	// mu serializes this subscriber's lifecycle against the hub:
	// Subscribe, Unsubscribe and DropConnection each hold it for their
	// whole room mutation, so a drop either precedes a subscribe (which
	// then sees the closed state) or follows it (and sweeps the ref the
	// subscribe recorded). It is always taken before h.mu.
	mu   sync.Mutex
	refs map[model.ConversationRef]struct{}
}

func NewSubscriber() *Subscriber {
	return &Subscriber{
		events: make(chan Event, mailboxSize),
		done:   make(chan struct{}),
		refs:   make(map[model.ConversationRef]struct{}),
	}
}

// Events yields published events for the connection's write pump.
func (s *Subscriber) Events() <-chan Event { return s.events }

// Done is closed when the subscriber is dropped from the hub.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

func (s *Subscriber) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

type room struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

type Hub struct {
	logger logger.Logger

	// mu guards the rooms table only. Publishing takes it shared plus
	// the single room's lock, so distinct conversations never contend.
	mu    sync.RWMutex
	rooms map[model.ConversationRef]*room
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		logger: logger,
		rooms:  make(map[model.ConversationRef]*room),
	}
}

// Subscribe adds the connection to a conversation's room, creating the
// room lazily on first subscriber. Subscribing twice is a no-op.
func (h *Hub) Subscribe(sub *Subscriber, ref model.ConversationRef) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed() {
		return
	}

	h.mu.Lock()
	r, ok := h.rooms[ref]
	if !ok {
		r = &room{subs: make(map[*Subscriber]struct{})}
		h.rooms[ref] = r
	}
	r.mu.Lock()
	r.subs[sub] = struct{}{}
	r.mu.Unlock()
	h.mu.Unlock()

	sub.refs[ref] = struct{}{}
}

// Unsubscribe removes the connection from one conversation; no-op when
// it was not subscribed. An emptied room is retired.
func (h *Hub) Unsubscribe(sub *Subscriber, ref model.ConversationRef) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	h.mu.Lock()
	h.removeLocked(sub, ref)
	h.mu.Unlock()

	delete(sub.refs, ref)
}

// Publish delivers the event to every subscriber present at this
// moment. Delivery per subscriber is independent: a full mailbox drops
// the event for that subscriber only and never delays the others or
// the publisher.
func (h *Hub) Publish(ref model.ConversationRef, ev Event) {
	h.mu.RLock()
	r, ok := h.rooms[ref]
	h.mu.RUnlock()
	if !ok {
		return
	}

	r.mu.Lock()
	for sub := range r.subs {
		select {
		case sub.events <- ev:
		default:
			h.logger.Debug("subscriber mailbox full, event dropped", "conversation", ref.String())
		}
	}
	r.mu.Unlock()
}

// PublishMessage relays a freshly persisted message to its
// conversation's subscribers.
func (h *Hub) PublishMessage(msg *model.Message) {
	h.Publish(msg.Conversation, Event{Type: "message:new", Data: msg})
}

// DropConnection detaches the subscriber from every conversation and
// marks it closed. Invoked on disconnect; further publishes simply no
// longer see it.
func (h *Hub) DropConnection(sub *Subscriber) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	sub.once.Do(func() { close(sub.done) })

	h.mu.Lock()
	for ref := range sub.refs {
		h.removeLocked(sub, ref)
	}
	h.mu.Unlock()

	sub.refs = make(map[model.ConversationRef]struct{})
}

// removeLocked is called with h.mu held for writing.
func (h *Hub) removeLocked(sub *Subscriber, ref model.ConversationRef) {
	r, ok := h.rooms[ref]
	if !ok {
		return
	}
	r.mu.Lock()
	delete(r.subs, sub)
	empty := len(r.subs) == 0
	r.mu.Unlock()
	if empty {
		delete(h.rooms, ref)
	}
}
