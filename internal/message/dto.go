package message

import (
	"time"

	"github.com/google/uuid"

	"shelftalk/internal/message/model"
)

// NOTE: commands travel from handler to usecase, DTOs travel back.
type SendCommand struct {
	Sender       uuid.UUID
	Conversation model.ConversationRef
	Body         string
}

type MessageDTO struct {
	ID           uuid.UUID             `json:"id"`
	Conversation model.ConversationRef `json:"conversation"`
	SenderID     uuid.UUID             `json:"sender_id"`
	Body         string                `json:"body"`
	CreatedAt    time.Time             `json:"created_at"`
}
