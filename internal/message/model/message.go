package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationKind string

const (
	KindChannel ConversationKind = "channel"
	KindDirect  ConversationKind = "direct"
)

// ConversationRef names exactly one conversation: a channel or a
// direct conversation, never both. It is a closed tagged value rather
// than two optional id fields, and is comparable (used as a map key by
// the fanout hub).
type ConversationRef struct {
	Kind ConversationKind `bun:"kind,notnull" json:"kind"`
	ID   uuid.UUID        `bun:"id,type:uuid,notnull" json:"id"`
}

func ChannelRef(id uuid.UUID) ConversationRef {
	return ConversationRef{Kind: KindChannel, ID: id}
}

func DirectRef(id uuid.UUID) ConversationRef {
	return ConversationRef{Kind: KindDirect, ID: id}
}

func (r ConversationRef) IsZero() bool {
	return r.Kind == "" || r.ID == uuid.Nil
}

func (r ConversationRef) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// Message is an immutable, append-only record. The ordering key is
// (created_at, id); id breaks timestamp ties deterministically.
//
//	CREATE INDEX idx_messages_conv_time ON messages(conversation_kind, conversation_id, created_at, id);
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`

	Conversation ConversationRef `bun:"embed:conversation_" json:"conversation"`

	SenderID uuid.UUID `bun:",notnull,type:uuid" json:"sender_id"`
	Body     string    `bun:",notnull" json:"body"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
