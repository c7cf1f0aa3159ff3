package favorite

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/response"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, propertyID int64) error
	Remove(ctx context.Context, userID, propertyID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

// Handler is thin enough that no service layer sits between it and the
// repository.
type Handler struct {
	favorites FavoriteRepository
}

func NewHandler(favorites FavoriteRepository) *Handler {
	return &Handler{favorites: favorites}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me/favorites", h.List)
	rg.POST("/me/favorites/:propertyId", h.Add)
	rg.DELETE("/me/favorites/:propertyId", h.Remove)
}

func (h *Handler) List(c *gin.Context) {
	favs, err := h.favorites.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": favs})
}

func (h *Handler) Add(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property id")
		return
	}

	if err := h.favorites.Add(c.Request.Context(), c.GetInt64("user_id"), propertyID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save favorite")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"saved": true})
}

func (h *Handler) Remove(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property id")
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), c.GetInt64("user_id"), propertyID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": false})
}
