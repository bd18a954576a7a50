package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"

	"shelftalk/internal/directory"
	"shelftalk/internal/hub"
	"shelftalk/internal/identity"
	"shelftalk/pkg/logger"
)

// Handler upgrades the live-channel endpoint. Browser WebSocket
// clients cannot set an Authorization header, so the credential rides
// in the token query param.
type Handler struct {
	Hub                  *hub.Hub
	Directory            directory.DirectoryUsecase
	Verifier             identity.TokenVerifier
	Logger               logger.Logger
	WSInsecureSkipVerify bool
}

func (h *Handler) Handle(c *gin.Context) {
	ident, err := h.Verifier.Verify(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	opts := &websocket.AcceptOptions{}
	// Default Accept rejects cross-origin; dev frontends usually run
	// on another port. Production should configure OriginPatterns.
	if h.WSInsecureSkipVerify {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return // Accept already wrote the error response
	}

	h.Logger.Debug("live connection opened", "user_id", ident.ID)

	s := New(ident, conn, h.Hub, h.Directory, h.Logger)
	s.Run(c.Request.Context())

	h.Logger.Debug("live connection closed", "user_id", ident.ID)
}
