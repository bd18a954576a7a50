package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"shelftalk/internal/directory/model"
	"shelftalk/pkg/logger"
)

type DirectoryRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrChannelNotFound      = errors.New("channel not found")
	ErrConversationNotFound = errors.New("direct conversation not found")
)

func NewDirectoryRepository(db *bun.DB, logger logger.Logger) *DirectoryRepository {
	return &DirectoryRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DirectoryRepository) GetChannelByID(ctx context.Context, id uuid.UUID) (*model.Channel, error) {

	ch := new(model.Channel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "directoryRepo.GetChannelByID.Scan: ")
	}
	return ch, nil
}

func (r *DirectoryRepository) ListChannels(ctx context.Context) ([]model.Channel, error) {

	var channels []model.Channel
	err := r.db.NewSelect().
		Model(&channels).
		Order("created_at ASC").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "directoryRepo.ListChannels.Scan: ")
	}
	return channels, nil
}

func (r *DirectoryRepository) EnsureChannel(ctx context.Context, ch *model.Channel) error {

	_, err := r.db.NewInsert().
		Model(ch).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "directoryRepo.EnsureChannel.Insert: ")
	}
	return nil
}

func (r *DirectoryRepository) CreateDirect(ctx context.Context, conv *model.DirectConversation) (*model.DirectConversation, error) {

	res, err := r.db.NewInsert().
		Model(conv).
		On("CONFLICT (user_lo, user_hi) DO NOTHING").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "directoryRepo.CreateDirect.Insert: ")
	}

	// Zero rows means another writer won the unique-index race; hand
	// back the winner's row.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return r.FindDirect(ctx, conv.UserLo, conv.UserHi)
	}
	return conv, nil
}

func (r *DirectoryRepository) FindDirect(ctx context.Context, lo, hi uuid.UUID) (*model.DirectConversation, error) {

	conv := new(model.DirectConversation)
	err := r.db.NewSelect().
		Model(conv).
		Where("user_lo = ? AND user_hi = ?", lo, hi).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "directoryRepo.FindDirect.Scan: ")
	}
	return conv, nil
}

func (r *DirectoryRepository) GetDirectByID(ctx context.Context, id uuid.UUID) (*model.DirectConversation, error) {

	conv := new(model.DirectConversation)
	err := r.db.NewSelect().Model(conv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "directoryRepo.GetDirectByID.Scan: ")
	}
	return conv, nil
}

func (r *DirectoryRepository) UpsertChannelMember(ctx context.Context, channelID, userID uuid.UUID) error {

	member := &model.ChannelMember{ChannelID: channelID, UserID: userID}
	_, err := r.db.NewInsert().
		Model(member).
		On("CONFLICT (channel_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "directoryRepo.UpsertChannelMember.Insert: ")
	}
	return nil
}
