package message

import (
	"context"

	"github.com/google/uuid"

	"shelftalk/internal/message/model"
)

type MessageUsecase interface {
	// Send validates, durably persists, then fans out. The live relay
	// is attempted only after persistence succeeds, so a client that
	// sees a live event can always re-fetch it via History.
	Send(ctx context.Context, cmd SendCommand) (*MessageDTO, error)

	// History returns the most recent messages oldest-first, capped at
	// HistoryCap regardless of the requested limit.
	History(ctx context.Context, actor uuid.UUID, ref model.ConversationRef, limit int) ([]MessageDTO, error)
}

// EventPublisher is the live-delivery side of a send: best-effort
// fanout to currently subscribed connections. Implemented by the hub.
type EventPublisher interface {
	PublishMessage(msg *model.Message)
}
