package session

import (
	"context"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/google/uuid"

	"shelftalk/internal/directory"
	"shelftalk/internal/hub"
	"shelftalk/internal/identity"
	"shelftalk/internal/message/model"
	"shelftalk/pkg/errors"
	"shelftalk/pkg/logger"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
	readLimit    = int64(4 << 10) // join/leave commands only, 4KB is generous
	actionJoin   = "join"
	actionLeave  = "leave"
)

// Command is what a client sends over the live channel: join or leave
// one conversation.
type Command struct {
	Action string                 `json:"action"`
	Kind   model.ConversationKind `json:"kind"`
	ID     uuid.UUID              `json:"id"`
}

// Session owns one live connection's lifecycle: Connected, any number
// of join/leave transitions, then Closed. Closed is terminal and
// synchronously drops every subscription from the hub.
type Session struct {
	ident     identity.Identity
	conn      *websocket.Conn
	hub       *hub.Hub
	sub       *hub.Subscriber
	directory directory.DirectoryUsecase
	logger    logger.Logger

	closeOnce sync.Once
}

func New(ident identity.Identity, conn *websocket.Conn, h *hub.Hub, dir directory.DirectoryUsecase, logger logger.Logger) *Session {
	return &Session{
		ident:     ident,
		conn:      conn,
		hub:       h,
		sub:       hub.NewSubscriber(),
		directory: dir,
		logger:    logger,
	}
}

// Run pumps events to the client and reads join/leave commands until
// the connection dies. It blocks until the session is Closed.
func (s *Session) Run(ctx context.Context) {
	defer s.Close()

	go s.writeLoop(ctx)
	go s.keepAliveLoop(ctx)

	s.readLoop(ctx)
}

// Close moves the session to its terminal state. Safe to call from
// any goroutine, more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.hub.DropConnection(s.sub)
		_ = s.conn.Close(websocket.StatusNormalClosure, "bye")
	})
}

func (s *Session) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(readLimit)

	for {
		var cmd Command
		if err := wsjson.Read(ctx, s.conn, &cmd); err != nil {
			// Transport failure or client close: implicit drop, not an
			// application error.
			return
		}
		s.handle(ctx, cmd)
	}
}

func (s *Session) handle(ctx context.Context, cmd Command) {
	ref := model.ConversationRef{Kind: cmd.Kind, ID: cmd.ID}

	switch cmd.Action {
	case actionJoin:
		if err := s.authorize(ctx, ref); err != nil {
			s.send(hub.Event{Type: "error", Data: err})
			return
		}
		s.hub.Subscribe(s.sub, ref)
		s.send(hub.Event{Type: "joined", Data: ref})
	case actionLeave:
		s.hub.Unsubscribe(s.sub, ref)
		s.send(hub.Event{Type: "left", Data: ref})
	default:
		s.send(hub.Event{Type: "error", Data: errors.InvalidArg("unknown action")})
	}
}

// authorize mirrors the send/history gate: channels are open to any
// authenticated identity (joining records membership), direct
// conversations only to their participants.
func (s *Session) authorize(ctx context.Context, ref model.ConversationRef) error {
	switch ref.Kind {
	case model.KindChannel:
		if err := s.directory.JoinChannel(ctx, ref.ID, s.ident.ID); err != nil {
			if errors.Is(err, errors.ErrChannelNotFound) {
				return errors.ErrConversationUnknown
			}
			return err
		}
		return nil
	case model.KindDirect:
		conv, err := s.directory.ResolveDirect(ctx, ref.ID)
		if err != nil {
			return err
		}
		if !conv.Involves(s.ident.ID) {
			return errors.ErrConversationUnknown
		}
		return nil
	default:
		return errors.ErrConversationUnknown
	}
}

// send queues one event to this client only, bypassing the hub.
func (s *Session) send(ev hub.Event) {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_ = wsjson.Write(writeCtx, s.conn, ev)
}

func (s *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.sub.Done():
			return
		case ev := <-s.sub.Events():
			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := wsjson.Write(writeCtx, s.conn, ev)
			cancel()
			if err != nil {
				s.Close()
				return
			}
		}
	}
}

func (s *Session) keepAliveLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.sub.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = s.conn.Ping(pingCtx)
			cancel()
		}
	}
}
