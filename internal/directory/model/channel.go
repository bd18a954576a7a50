package model

import (
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Name is the unique @handle of the channel, immutable after creation
	Name        string `bun:",unique,notnull"`
	Description string `bun:",null"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
