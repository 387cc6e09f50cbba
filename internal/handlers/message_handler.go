package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saferide/internal/models"
	"saferide/internal/services"
)

type MessageHandler struct {
	service *services.MessageService
}

type sendMessageRequest struct {
	ChatID         *int   `json:"chatId" binding:"required"`
	SenderID       *int   `json:"senderId" binding:"required"`
	Text           string `json:"text" binding:"required"`
	SenderLanguage string `json:"senderLanguage"`
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// @Summary      Append a message to a chat
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        message  body      sendMessageRequest  true  "Message"
// @Success      201      {object}  models.Message
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.Send(*req.ChatID, *req.SenderID, req.Text, req.SenderLanguage)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sender not found"})
		default:
			log.Printf("SendMessage: service error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	chatID, err := strconv.Atoi(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	messages, err := h.service.List(chatID)
	if err != nil {
		log.Printf("ListMessages: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	if messages == nil {
		messages = []*models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}
