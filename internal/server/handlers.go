package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shelftalk/internal/directory"
	"shelftalk/internal/identity"
	"shelftalk/internal/message"
	"shelftalk/internal/message/model"
	"shelftalk/pkg/errors"
	"shelftalk/pkg/logger"
)

type ChatHandler struct {
	Directory directory.DirectoryUsecase
	Messages  message.MessageUsecase
	Logger    logger.Logger
}

// ListChannels is the one anonymous read; everything else is gated.
func (h *ChatHandler) ListChannels(c *gin.Context) {
	channels, err := h.Directory.ListChannels(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": channels})
}

type createDirectReq struct {
	OtherUserID uuid.UUID `json:"other_user_id" binding:"required"`
}

func (h *ChatHandler) CreateDirectConversation(c *gin.Context) {
	ident := identity.MustIdentity(c)

	var req createDirectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	conv, err := h.Directory.ResolveOrCreateDirect(c.Request.Context(), ident.ID, req.OtherUserID)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": conv})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	ident := identity.MustIdentity(c)

	ref, ok := refFromPath(c)
	if !ok {
		return
	}

	// Bad or missing limit falls back to the usecase cap.
	limit := 0
	if v := c.Query("limit"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			limit = x
		}
	}

	msgs, err := h.Messages.History(c.Request.Context(), ident.ID, ref, limit)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msgs})
}

type sendMessageReq struct {
	Body string `json:"body" binding:"required"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	ident := identity.MustIdentity(c)

	ref, ok := refFromPath(c)
	if !ok {
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	msg, err := h.Messages.Send(c.Request.Context(), message.SendCommand{
		Sender:       ident.ID,
		Conversation: ref,
		Body:         req.Body,
	})
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": msg})
}

func refFromPath(c *gin.Context) (model.ConversationRef, bool) {
	kind := model.ConversationKind(c.Param("kind"))
	if kind != model.KindChannel && kind != model.KindDirect {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown conversation kind"})
		return model.ConversationRef{}, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid conversation id"})
		return model.ConversationRef{}, false
	}
	return model.ConversationRef{Kind: kind, ID: id}, true
}

func abortWithAppError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case errors.CodePermissionDenied:
		status = http.StatusForbidden
	case errors.CodeAlreadyExists:
		status = http.StatusConflict
	case errors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err})
}
