package message

import (
	"context"

	"shelftalk/internal/message/model"
)

type MessageRepository interface {
	// Insert durably persists the message before returning. A nil
	// error is a durability guarantee; there is no buffered path.
	Insert(ctx context.Context, msg *model.Message) error

	// RecentHistory returns at most limit of the newest messages in
	// the conversation, oldest-first. Empty slice when there are none.
	RecentHistory(ctx context.Context, ref model.ConversationRef, limit int) ([]model.Message, error)
}
