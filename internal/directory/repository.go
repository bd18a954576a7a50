package directory

import (
	"context"

	"github.com/google/uuid"

	"shelftalk/internal/directory/model"
)

type DirectoryRepository interface {
	GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error)
	// ListChannels returns every channel in creation order (stable for
	// a given dataset).
	ListChannels(ctx context.Context) ([]model.Channel, error)
	// EnsureChannel creates the channel unless one with the same name
	// already exists. Used by the startup seed path only.
	EnsureChannel(ctx context.Context, ch *model.Channel) error

	// CreateDirect inserts the conversation for a normalized pair.
	// When another writer won the race on the pair's unique index, the
	// winner's row is returned instead of a duplicate.
	CreateDirect(ctx context.Context, conv *model.DirectConversation) (*model.DirectConversation, error)
	FindDirect(ctx context.Context, lo, hi uuid.UUID) (*model.DirectConversation, error)
	GetDirectByID(ctx context.Context, id uuid.UUID) (*model.DirectConversation, error)

	// UpsertChannelMember records channel membership (informational,
	// not an access-control list).
	UpsertChannelMember(ctx context.Context, channelID, userID uuid.UUID) error
}
