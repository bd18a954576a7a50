package model

import (
	"time"

	"github.com/google/uuid"
)

// ChannelMember records who has joined a channel. It is informational
// (unread markers, member lists), not an access-control list: any
// authenticated identity may read or post to any channel.
type ChannelMember struct {
	ChannelID uuid.UUID `bun:",pk,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	JoinedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	LastReadAt time.Time `bun:",nullzero"` // for unread count
}
