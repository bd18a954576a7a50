package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shelftalk/internal/directory"
	"shelftalk/internal/message"
	"shelftalk/internal/message/model"
	"shelftalk/pkg/errors"
	"shelftalk/pkg/logger"
)

// HistoryCap bounds every history read; larger requested limits are
// clamped, not rejected.
const HistoryCap = 100

type MessageUsecase struct {
	repo      message.MessageRepository
	directory directory.DirectoryUsecase
	publisher message.EventPublisher
	logger    logger.Logger
}

func NewMessageUsecase(
	repo message.MessageRepository,
	directory directory.DirectoryUsecase,
	publisher message.EventPublisher,
	logger logger.Logger,
) *MessageUsecase {
	return &MessageUsecase{repo: repo, directory: directory, publisher: publisher, logger: logger}
}

func (uc *MessageUsecase) Send(ctx context.Context, cmd message.SendCommand) (*message.MessageDTO, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.ErrEmptyBody
	}
	if err := uc.authorize(ctx, cmd.Sender, cmd.Conversation); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:           uuid.New(),
		Conversation: cmd.Conversation,
		SenderID:     cmd.Sender,
		Body:         cmd.Body,
	}

	// Durability precedes fanout: a failed insert fails the whole
	// send, never a live-only delivery.
	if err := uc.repo.Insert(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "conversation", cmd.Conversation.String(), "err", err)
		return nil, errors.ErrStorageUnavailable(err)
	}

	uc.publisher.PublishMessage(msg)

	return toDTO(msg), nil
}

func (uc *MessageUsecase) History(ctx context.Context, actor uuid.UUID, ref model.ConversationRef, limit int) ([]message.MessageDTO, error) {
	if limit <= 0 || limit > HistoryCap {
		limit = HistoryCap
	}
	if err := uc.authorize(ctx, actor, ref); err != nil {
		return nil, err
	}

	msgs, err := uc.repo.RecentHistory(ctx, ref, limit)
	if err != nil {
		uc.logger.Error("failed to read history", "conversation", ref.String(), "err", err)
		return nil, errors.ErrStorageUnavailable(err)
	}

	dtos := make([]message.MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, *toDTO(&msgs[i]))
	}
	return dtos, nil
}

// authorize resolves the conversation ref and checks the actor may use
// it. An unresolved ref of either kind surfaces as ErrConversationUnknown.
func (uc *MessageUsecase) authorize(ctx context.Context, actor uuid.UUID, ref model.ConversationRef) error {
	switch ref.Kind {
	case model.KindChannel:
		// Channels are open to every authenticated identity; the
		// member relation is informational only.
		if _, err := uc.directory.ResolveChannel(ctx, ref.ID); err != nil {
			if errors.Is(err, errors.ErrChannelNotFound) {
				return errors.ErrConversationUnknown
			}
			return err
		}
		return nil
	case model.KindDirect:
		conv, err := uc.directory.ResolveDirect(ctx, ref.ID)
		if err != nil {
			return err
		}
		// A direct conversation is visible only to its two
		// participants; outsiders cannot tell it exists.
		if !conv.Involves(actor) {
			return errors.ErrConversationUnknown
		}
		return nil
	default:
		return errors.ErrConversationUnknown
	}
}

func toDTO(msg *model.Message) *message.MessageDTO {
	return &message.MessageDTO{
		ID:           msg.ID,
		Conversation: msg.Conversation,
		SenderID:     msg.SenderID,
		Body:         msg.Body,
		CreatedAt:    msg.CreatedAt,
	}
}
