package directory

import (
	"context"

	"github.com/google/uuid"
)

type DirectoryUsecase interface {
	ResolveChannel(ctx context.Context, id uuid.UUID) (*ChannelDTO, error)

	// ListChannels is an anonymous read: no identity required.
	ListChannels(ctx context.Context) ([]ChannelDTO, error)

	// ResolveOrCreateDirect returns the one conversation for the
	// unordered pair {me, other}, creating it on first contact. Safe
	// under concurrent calls for the same pair from either direction.
	ResolveOrCreateDirect(ctx context.Context, me, other uuid.UUID) (*DirectConversationDTO, error)

	// ResolveDirect looks up an existing direct conversation by id.
	ResolveDirect(ctx context.Context, id uuid.UUID) (*DirectConversationDTO, error)

	// JoinChannel records membership (informational, not an ACL).
	JoinChannel(ctx context.Context, channelID, userID uuid.UUID) error
}
