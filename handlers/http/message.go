package httpHandler

import (
	"encoding/json"
	"net/http"

	"estate-server/middleware"
	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	useCase *usecases.MessagingUseCase
	mgr     *ws.Manager
}

func NewMessageHandler(useCase *usecases.MessagingUseCase, mgr *ws.Manager) *MessageHandler {
	return &MessageHandler{useCase: useCase, mgr: mgr}
}

type sendMessageRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type meetingRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Notes      string `json:"notes"`
}

// SendMessage handles POST /messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "To user ID and content are required"})
		return
	}

	message, err := h.useCase.SendMessage(c.GetString(middleware.CtxUserID), req.ToUserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	// Push a live notification if the recipient is connected. Best-effort:
	// the message row is already durable.
	if h.mgr != nil {
		if payload, err := json.Marshal(gin.H{
			"type":         "message",
			"id":           message.ID,
			"from_user_id": message.FromUserID,
			"content":      message.Content,
			"timestamp":    message.Timestamp,
		}); err == nil {
			_ = h.mgr.SendToUser(message.ToUserID, payload)
		}
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Message sent"})
}

// Conversation handles GET /messages/conversation/:withUserId
func (h *MessageHandler) Conversation(c *gin.Context) {
	messages, err := h.useCase.Conversation(c.GetString(middleware.CtxUserID), c.Param("withUserId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ScheduleMeeting handles POST /messages/meeting
func (h *MessageHandler) ScheduleMeeting(c *gin.Context) {
	var req meetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Property ID and date are required"})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	if err := h.useCase.ScheduleMeeting(userID, req.PropertyID, req.Date, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Meeting scheduled"})
}

// ListMeetings handles GET /messages/meetings
func (h *MessageHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.useCase.MeetingsOf(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}
