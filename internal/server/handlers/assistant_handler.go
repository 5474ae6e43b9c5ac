package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/service/chat"
	"github.com/pranathi988/Kamadhenu-app/internal/service/identify"
)

// AssistantHandler serves the AI-backed endpoints: the multilingual
// chatbot and image breed identification. Either service may be nil
// when its API keys are not configured.
type AssistantHandler struct {
	chat     *chat.Service
	identify *identify.Service
	logger   *zap.Logger
}

// NewAssistantHandler constructs the HTTP handler adapter.
func NewAssistantHandler(chatSvc *chat.Service, identifySvc *identify.Service, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{chat: chatSvc, identify: identifySvc, logger: logger}
}

// Chat handles one chatbot turn.
func (h *AssistantHandler) Chat(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat assistant is not configured"})
		return
	}

	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat request"})
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, chat.ErrUnsupportedLanguage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "languages": chat.Languages()})
		default:
			h.logger.Error("chat turn failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is unavailable, try again later"})
		}
		return
	}

	c.JSON(http.StatusOK, reply)
}

// ChatHistory returns the stored turns for a session.
func (h *AssistantHandler) ChatHistory(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat assistant is not configured"})
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "messages": h.chat.History(sessionID)})
}

// ListLanguages returns the supported interaction language codes.
func (h *AssistantHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": chat.Languages()})
}

// Identify runs breed detection over an uploaded image.
func (h *AssistantHandler) Identify(c *gin.Context) {
	if h.identify == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "breed identification is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed opening upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed reading upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded image"})
		return
	}

	result, err := h.identify.Identify(c.Request.Context(), fileHeader.Filename, image)
	if err != nil {
		switch {
		case errors.Is(err, identify.ErrEmptyImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded image is empty"})
		case errors.Is(err, identify.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 10 MiB limit"})
		default:
			h.logger.Error("identification failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "detection service is unavailable, try again later"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
