package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"stayhub/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the site origin; CORS middleware already
	// gates the rest of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes mounts on a group running OptionalAuth: the assistant is
// available to anonymous visitors.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/sessions", h.StartSession)
	rg.GET("/chat/sessions/:key/messages", h.History)
	rg.POST("/chat/sessions/:key/messages", h.SendMessage)
	rg.GET("/chat/ws", h.WebSocket)
}

func (h *Handler) StartSession(c *gin.Context) {
	var userID *int64
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			userID = &id
		}
	}

	session, err := h.service.StartSession(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start chat session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": session})
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message content is required")
		return
	}

	reply, err := h.service.SendMessage(c.Request.Context(), c.Param("key"), req.Content)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Chat session not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process message")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

func (h *Handler) History(c *gin.Context) {
	msgs, err := h.service.History(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Chat session not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

// WebSocket upgrades the connection and streams assistant replies for the
// session named in the query string. Incoming frames are treated as user
// messages.
func (h *Handler) WebSocket(c *gin.Context) {
	sessionKey := c.Query("session")
	if sessionKey == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "session query parameter is required")
		return
	}
	if _, err := h.service.History(c.Request.Context(), sessionKey); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Chat session not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("level=warn msg=\"websocket upgrade failed\" err=%v", err)
		return
	}

	h.hub.Register(sessionKey, conn)
	defer h.hub.Unregister(sessionKey)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if len(data) == 0 {
			continue
		}
		// Reply goes back through the hub inside SendMessage.
		if _, err := h.service.SendMessage(c.Request.Context(), sessionKey, string(data)); err != nil {
			log.Printf("level=warn msg=\"websocket message failed\" session_key=%s err=%v", sessionKey, err)
		}
	}
}
