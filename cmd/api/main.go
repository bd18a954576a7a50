package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"shelftalk/config"
	"shelftalk/internal/database"
	directorymodel "shelftalk/internal/directory/model"
	directoryrepo "shelftalk/internal/directory/repository"
	directoryuc "shelftalk/internal/directory/usecase"
	"shelftalk/internal/hub"
	"shelftalk/internal/identity"
	messagerepo "shelftalk/internal/message/repository"
	messageuc "shelftalk/internal/message/usecase"
	"shelftalk/internal/server"
	"shelftalk/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := database.Bootstrap(ctx, db); err != nil {
		log.Fatalf("failed to bootstrap schema: %v", err)
	}

	dirRepo := directoryrepo.NewDirectoryRepository(db, *appLogger)
	msgRepo := messagerepo.NewMessageRepository(db, *appLogger)

	// Channels are administrative data; the seed list is the
	// out-of-band path that creates them.
	for _, seed := range cfg.Channels {
		ch := &directorymodel.Channel{Name: seed.Name, Description: seed.Description}
		if err := dirRepo.EnsureChannel(ctx, ch); err != nil {
			log.Fatalf("failed to seed channel %q: %v", seed.Name, err)
		}
	}

	fanout := hub.NewHub(*appLogger)
	gate := identity.NewJWTGate(cfg)

	dirUC := directoryuc.NewDirectoryUsecase(dirRepo, *appLogger)
	msgUC := messageuc.NewMessageUsecase(msgRepo, dirUC, fanout, *appLogger)

	r := server.NewRouter(cfg, *appLogger, gate, dirUC, msgUC, fanout)

	addr := ":" + cfg.Server.Port
	appLogger.Info("listening", "addr", addr)
	log.Fatal(r.Run(addr))
}
