package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/properties", h.Browse)
	rg.GET("/properties/:id", h.GetProperty)
}

func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.ListMine)
	rg.POST("/properties", h.CreateProperty)
	rg.PUT("/properties/:id", h.UpdateProperty)
	rg.DELETE("/properties/:id", h.DeactivateProperty)
}

// Search answers GET /search with the filtered catalog as a plain JSON
// array (the shape the front end consumes directly, no envelope).
func (h *Handler) Search(c *gin.Context) {
	criteria := ParseCriteria(c.Query)

	props, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search properties")
		return
	}

	c.JSON(http.StatusOK, props)
}

// Browse lists the active catalog unfiltered, newest first.
func (h *Handler) Browse(c *gin.Context) {
	props, err := h.service.Browse(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": props})
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property id")
		return
	}

	p, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) ListMine(c *gin.Context) {
	hostID := c.GetInt64("user_id")

	props, err := h.service.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": props})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProperty(c.Request.Context(), hostID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPropertyType), errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create property")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": p})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property id")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProperty(c.Request.Context(), hostID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this property")
		case errors.Is(err, ErrInvalidPropertyType), errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update property")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) DeactivateProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property id")
		return
	}

	if err := h.service.DeactivateProperty(c.Request.Context(), hostID, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this property")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate property")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
