package database

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"shelftalk/config"
	directorymodel "shelftalk/internal/directory/model"
	messagemodel "shelftalk/internal/message/model"
)

func Connect(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap creates the three record kinds and the indexes the design
// relies on: the unique normalized DM pair and the message ordering
// key. Everything is idempotent.
func Bootstrap(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*directorymodel.Channel)(nil),
		(*directorymodel.ChannelMember)(nil),
		(*directorymodel.DirectConversation)(nil),
		(*messagemodel.Message)(nil),
	}

	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	if _, err := db.NewCreateIndex().
		Model((*directorymodel.DirectConversation)(nil)).
		Index("idx_direct_pair").
		Unique().
		Column("user_lo", "user_hi").
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	if _, err := db.NewCreateIndex().
		Model((*messagemodel.Message)(nil)).
		Index("idx_messages_conv_time").
		Column("conversation_kind", "conversation_id", "created_at", "id").
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	return nil
}
