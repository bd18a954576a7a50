package server

import (
	"github.com/gin-gonic/gin"

	"shelftalk/config"
	"shelftalk/internal/directory"
	"shelftalk/internal/hub"
	"shelftalk/internal/identity"
	"shelftalk/internal/message"
	"shelftalk/internal/session"
	"shelftalk/pkg/logger"
)

// NewRouter wires the exposed contract: anonymous channel listing, the
// gated REST surface, and the live websocket channel.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	verifier identity.TokenVerifier,
	dir directory.DirectoryUsecase,
	msgs message.MessageUsecase,
	h *hub.Hub,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	chatH := &ChatHandler{Directory: dir, Messages: msgs, Logger: log}

	r.GET("/api/v1/channels", chatH.ListChannels)

	wsH := &session.Handler{
		Hub:                  h,
		Directory:            dir,
		Verifier:             verifier,
		Logger:               log,
		WSInsecureSkipVerify: cfg.Server.Environment != "production",
	}
	r.GET("/ws", wsH.Handle)

	authed := r.Group("/api/v1")
	authed.Use(identity.Middleware(verifier))

	authed.POST("/conversations/direct", chatH.CreateDirectConversation)
	authed.GET("/conversations/:kind/:id/messages", chatH.ListMessages)
	authed.POST("/conversations/:kind/:id/messages", chatH.SendMessage)

	return r
}
