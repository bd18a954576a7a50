package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"shelftalk/internal/message/model"
	"shelftalk/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) Insert(ctx context.Context, msg *model.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Insert.Exec: ")
	}
	return nil
}

func (r *MessageRepository) RecentHistory(ctx context.Context, ref model.ConversationRef, limit int) ([]model.Message, error) {

	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_kind = ? AND conversation_id = ?", ref.Kind, ref.ID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.RecentHistory.Scan: ")
	}

	// Fetched newest-first for the bounded tail; reverse so callers
	// see oldest-first presentation order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
