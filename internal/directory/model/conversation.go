package model

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// DirectConversation is the single conversation between two
// identities. (UserLo, UserHi) is the participant pair sorted
// ascending — the normalized natural key. A unique index on the pair
// makes creation idempotent regardless of which side dials first:
//
//	CREATE UNIQUE INDEX idx_direct_pair ON direct_conversations(user_lo, user_hi);
type DirectConversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserLo uuid.UUID `bun:",notnull,type:uuid"`
	UserHi uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	LastMessageAt time.Time `bun:",nullzero"`
}

// NormalizePair orders two participant ids bytewise ascending so that
// {A,B} and {B,A} map to the same (lo, hi) key.
func NormalizePair(a, b uuid.UUID) (lo, hi uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
