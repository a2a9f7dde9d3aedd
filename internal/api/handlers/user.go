package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/middleware"
	"github.com/tokentide/tokentide-api/internal/models"
	"github.com/tokentide/tokentide-api/internal/services"
)

type UserHandler struct {
	db       *gorm.DB
	activity *services.ActivityService
}

func NewUserHandler(db *gorm.DB, activity *services.ActivityService) *UserHandler {
	return &UserHandler{
		db:       db,
		activity: activity,
	}
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type saveContentRequest struct {
	Type     string `json:"type" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

// SaveContent persists a generated item the user wants to keep
func (h *UserHandler) SaveContent(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req saveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.SavedContent{
		UserID:   userID,
		Type:     req.Type,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := h.activity.SaveContent(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": item})
}

// ListSavedContent returns the user's saved items, newest first
func (h *UserHandler) ListSavedContent(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	items, err := h.activity.SavedContent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": items})
}

// DeleteSavedContent removes one of the user's saved items
func (h *UserHandler) DeleteSavedContent(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	contentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	if err := h.activity.DeleteSavedContent(c.Request.Context(), userID, uint(contentID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saved content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete saved content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// GetActivity returns the user's recent generation runs
func (h *UserHandler) GetActivity(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit > maxActivityPageSize {
		limit = maxActivityPageSize
	}

	entries, err := h.activity.Recent(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
