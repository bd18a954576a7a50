package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftalk/config"
	"shelftalk/internal/directory"
	directorymocks "shelftalk/internal/directory/mocks"
	"shelftalk/internal/message"
	"shelftalk/internal/message/mocks"
	"shelftalk/internal/message/model"
	appErrors "shelftalk/pkg/errors"
	"shelftalk/pkg/logger"
)

type testDeps struct {
	repo      *mocks.MockMessageRepository
	directory *directorymocks.MockDirectoryUsecase
	publisher *mocks.MockEventPublisher
	uc        *MessageUsecase
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	dir := directorymocks.NewMockDirectoryUsecase(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	log, _ := logger.NewLogger(&config.Config{})
	uc := NewMessageUsecase(repo, dir, pub, *log)

	return testDeps{repo: repo, directory: dir, publisher: pub, uc: uc}
}

func TestMessageUsecase_Send(t *testing.T) {
	sender := uuid.New()
	channelID := uuid.New()
	ref := model.ChannelRef(channelID)

	t.Run("happy path - persisted then published", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(&directory.ChannelDTO{ID: channelID, Name: "general"}, nil)

		var persisted *model.Message
		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.AssignableToTypeOf(&model.Message{})).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				msg.CreatedAt = time.Now()
				persisted = msg
				return nil
			})
		d.publisher.EXPECT().
			PublishMessage(gomock.AssignableToTypeOf(&model.Message{})).
			Do(func(msg *model.Message) {
				// Fanout sees exactly the persisted record.
				assert.Same(t, persisted, msg)
			})

		dto, err := d.uc.Send(context.Background(), message.SendCommand{
			Sender:       sender,
			Conversation: ref,
			Body:         "has anyone read the new volume?",
		})
		require.NoError(t, err)
		assert.Equal(t, sender, dto.SenderID)
		assert.Equal(t, ref, dto.Conversation)
		assert.Equal(t, "has anyone read the new volume?", dto.Body)
		assert.False(t, dto.CreatedAt.IsZero())
	})

	t.Run("sad path - empty body, no store call and no fanout", func(t *testing.T) {
		d := newTestDeps(t)

		for _, body := range []string{"", "   ", "\n\t "} {
			_, err := d.uc.Send(context.Background(), message.SendCommand{
				Sender:       sender,
				Conversation: ref,
				Body:         body,
			})
			if !appErrors.Is(err, appErrors.ErrEmptyBody) {
				t.Errorf("body %q: expected ErrEmptyBody, got %v", body, err)
			}
		}
	})

	t.Run("sad path - unknown channel, no side effects", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(nil, appErrors.ErrChannelNotFound)

		_, err := d.uc.Send(context.Background(), message.SendCommand{
			Sender:       sender,
			Conversation: ref,
			Body:         "hello?",
		})
		if !appErrors.Is(err, appErrors.ErrConversationUnknown) {
			t.Errorf("expected ErrConversationUnknown, got %v", err)
		}
	})

	t.Run("sad path - storage failure fails the send, nothing published", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(&directory.ChannelDTO{ID: channelID}, nil)
		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := d.uc.Send(context.Background(), message.SendCommand{
			Sender:       sender,
			Conversation: ref,
			Body:         "will not make it",
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
	})

	t.Run("sad path - direct conversation outsider", func(t *testing.T) {
		d := newTestDeps(t)

		convID := uuid.New()
		d.directory.EXPECT().
			ResolveDirect(gomock.Any(), convID).
			Return(&directory.DirectConversationDTO{
				ID:           convID,
				Participants: [2]uuid.UUID{uuid.New(), uuid.New()},
			}, nil)

		_, err := d.uc.Send(context.Background(), message.SendCommand{
			Sender:       sender,
			Conversation: model.DirectRef(convID),
			Body:         "let me in",
		})
		if !appErrors.Is(err, appErrors.ErrConversationUnknown) {
			t.Errorf("expected ErrConversationUnknown, got %v", err)
		}
	})

	t.Run("happy path - direct conversation participant", func(t *testing.T) {
		d := newTestDeps(t)

		convID := uuid.New()
		other := uuid.New()
		d.directory.EXPECT().
			ResolveDirect(gomock.Any(), convID).
			Return(&directory.DirectConversationDTO{
				ID:           convID,
				Participants: [2]uuid.UUID{other, sender},
			}, nil)
		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().PublishMessage(gomock.Any())

		_, err := d.uc.Send(context.Background(), message.SendCommand{
			Sender:       sender,
			Conversation: model.DirectRef(convID),
			Body:         "hey",
		})
		require.NoError(t, err)
	})
}

func TestMessageUsecase_History(t *testing.T) {
	actor := uuid.New()
	channelID := uuid.New()
	ref := model.ChannelRef(channelID)

	t.Run("happy path - order preserved, limit clamped to cap", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(&directory.ChannelDTO{ID: channelID}, nil)

		base := time.Now()
		stored := []model.Message{
			{ID: uuid.New(), Conversation: ref, SenderID: actor, Body: "first", CreatedAt: base},
			{ID: uuid.New(), Conversation: ref, SenderID: actor, Body: "second", CreatedAt: base.Add(time.Second)},
		}
		// Requested 150 must reach the repository as the cap.
		d.repo.EXPECT().
			RecentHistory(gomock.Any(), ref, HistoryCap).
			Return(stored, nil)

		msgs, err := d.uc.History(context.Background(), actor, ref, 150)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "first", msgs[0].Body)
		assert.Equal(t, "second", msgs[1].Body)
	})

	t.Run("happy path - empty conversation yields empty slice", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(&directory.ChannelDTO{ID: channelID}, nil)
		d.repo.EXPECT().
			RecentHistory(gomock.Any(), ref, 10).
			Return(nil, nil)

		msgs, err := d.uc.History(context.Background(), actor, ref, 10)
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("sad path - unknown conversation", func(t *testing.T) {
		d := newTestDeps(t)

		d.directory.EXPECT().
			ResolveChannel(gomock.Any(), channelID).
			Return(nil, appErrors.ErrChannelNotFound)

		_, err := d.uc.History(context.Background(), actor, ref, 10)
		if !appErrors.Is(err, appErrors.ErrConversationUnknown) {
			t.Errorf("expected ErrConversationUnknown, got %v", err)
		}
	})
}
