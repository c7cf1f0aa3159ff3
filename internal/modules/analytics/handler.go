package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.RecordEvent)
}

type eventRequest struct {
	SessionID string         `json:"session_id"`
	Name      string         `json:"name"`
	Props     map[string]any `json:"props"`
}

// RecordEvent always answers 202: analytics is advisory and the client
// should never retry or surface a failure.
func (h *Handler) RecordEvent(c *gin.Context) {
	var req eventRequest
	_ = c.ShouldBindJSON(&req)

	var userID *int64
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			userID = &id
		}
	}

	h.service.Record(c.Request.Context(), RecordInput{
		SessionID: req.SessionID,
		UserID:    userID,
		Name:      req.Name,
		Props:     req.Props,
	})

	response.Success(c, http.StatusAccepted, gin.H{"accepted": true})
}
