package usecase

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"

	"shelftalk/internal/directory"
	"shelftalk/internal/directory/model"
	"shelftalk/internal/directory/repository"
	"shelftalk/pkg/errors"
	"shelftalk/pkg/logger"
)

const pairLockStripes = 64

type DirectoryUsecase struct {
	repo   directory.DirectoryRepository
	logger logger.Logger

	// Striped mutexes keyed by the normalized pair, so in-process
	// racers for the same pair serialize before hitting the unique
	// index. Different pairs almost never contend.
	pairLocks [pairLockStripes]sync.Mutex
}

func NewDirectoryUsecase(repo directory.DirectoryRepository, logger logger.Logger) *DirectoryUsecase {
	return &DirectoryUsecase{repo: repo, logger: logger}
}

func (uc *DirectoryUsecase) ResolveChannel(ctx context.Context, id uuid.UUID) (*directory.ChannelDTO, error) {

	ch, err := uc.repo.GetChannelByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error resolving channel", "channel_id", id, "err", err)
		return nil, errors.Internal("failed to resolve channel")
	}
	return toChannelDTO(ch), nil
}

func (uc *DirectoryUsecase) ListChannels(ctx context.Context) ([]directory.ChannelDTO, error) {

	channels, err := uc.repo.ListChannels(ctx)
	if err != nil {
		uc.logger.Error("database error listing channels", "err", err)
		return nil, errors.Internal("failed to list channels")
	}

	dtos := make([]directory.ChannelDTO, 0, len(channels))
	for i := range channels {
		dtos = append(dtos, *toChannelDTO(&channels[i]))
	}
	return dtos, nil
}

func (uc *DirectoryUsecase) ResolveOrCreateDirect(ctx context.Context, me, other uuid.UUID) (*directory.DirectConversationDTO, error) {
	if me == uuid.Nil || other == uuid.Nil || me == other {
		return nil, errors.ErrInvalidParticipants
	}

	lo, hi := model.NormalizePair(me, other)

	lock := uc.pairLock(lo, hi)
	lock.Lock()
	defer lock.Unlock()

	conv, err := uc.repo.FindDirect(ctx, lo, hi)
	if err == nil {
		return toDirectDTO(conv), nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		uc.logger.Error("database error resolving direct conversation", "err", err)
		return nil, errors.Internal("failed to resolve conversation")
	}

	// First contact for this pair. The repository's conflict handling
	// covers racers on other nodes; the pair lock covers this one.
	conv, err = uc.repo.CreateDirect(ctx, &model.DirectConversation{UserLo: lo, UserHi: hi})
	if err != nil {
		uc.logger.Errorf("error while creating direct conversation: %v", err)
		return nil, errors.Internal("failed to create conversation")
	}
	return toDirectDTO(conv), nil
}

func (uc *DirectoryUsecase) ResolveDirect(ctx context.Context, id uuid.UUID) (*directory.DirectConversationDTO, error) {

	conv, err := uc.repo.GetDirectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.ErrConversationUnknown
		}
		uc.logger.Error("database error resolving direct conversation", "conversation_id", id, "err", err)
		return nil, errors.Internal("failed to resolve conversation")
	}
	return toDirectDTO(conv), nil
}

func (uc *DirectoryUsecase) JoinChannel(ctx context.Context, channelID, userID uuid.UUID) error {

	if _, err := uc.ResolveChannel(ctx, channelID); err != nil {
		return err
	}
	if err := uc.repo.UpsertChannelMember(ctx, channelID, userID); err != nil {
		uc.logger.Error("database error recording channel membership", "channel_id", channelID, "err", err)
		return errors.Internal("failed to join channel")
	}
	return nil
}

func (uc *DirectoryUsecase) pairLock(lo, hi uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(lo[:])
	h.Write(hi[:])
	return &uc.pairLocks[h.Sum32()%pairLockStripes]
}

func toChannelDTO(ch *model.Channel) *directory.ChannelDTO {
	return &directory.ChannelDTO{
		ID:          ch.ID,
		Name:        ch.Name,
		Description: ch.Description,
	}
}

func toDirectDTO(conv *model.DirectConversation) *directory.DirectConversationDTO {
	return &directory.DirectConversationDTO{
		ID:           conv.ID,
		Participants: [2]uuid.UUID{conv.UserLo, conv.UserHi},
	}
}
