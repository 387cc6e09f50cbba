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

type ChatHandler struct {
	service *services.ChatService
}

type createChatRequest struct {
	SenderID   *int `json:"senderId" binding:"required"`
	ReceiverID *int `json:"receiverId" binding:"required"`
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// CreateChat is idempotent: posting the same pair (in either order) returns
// the existing chat.
//
// @Summary      Create or get a chat for a user pair
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chat  body      createChatRequest  true  "Member pair"
// @Success      200   {object}  models.Chat
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /chats [post]
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.service.FindOrCreate(*req.SenderID, *req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfChat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("CreateChat: service error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat"})
		}
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (h *ChatHandler) ListUserChats(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	chats, err := h.service.ListForUser(userID)
	if err != nil {
		log.Printf("ListUserChats: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chats"})
		return
	}
	if chats == nil {
		chats = []*models.Chat{}
	}
	c.JSON(http.StatusOK, chats)
}

func (h *ChatHandler) ListAllChats(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	chats, err := h.service.ListAll(limit, offset)
	if err != nil {
		log.Printf("ListAllChats: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chats"})
		return
	}
	if chats == nil {
		chats = []*models.Chat{}
	}
	c.JSON(http.StatusOK, chats)
}

func (h *ChatHandler) FindChat(c *gin.Context) {
	firstID, err := strconv.Atoi(c.Param("first_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	secondID, err := strconv.Atoi(c.Param("second_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	chat, err := h.service.Find(firstID, secondID)
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		log.Printf("FindChat: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find chat"})
		return
	}
	c.JSON(http.StatusOK, chat)
}
