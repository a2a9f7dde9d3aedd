package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/models"
)

const defaultActivityLimit = 20

// ActivityService records and serves the dashboard's recent activity feed
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record stores one generation run. Activity logging is advisory: callers
// should log failures and move on rather than fail the request.
func (s *ActivityService) Record(ctx context.Context, entry *models.ActivityLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// Recent returns the user's latest generation runs, newest first
func (s *ActivityService) Recent(ctx context.Context, userID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var entries []models.ActivityLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// SaveContent persists a generated item the user chose to keep
func (s *ActivityService) SaveContent(ctx context.Context, item *models.SavedContent) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// SavedContent lists the user's saved items, newest first
func (s *ActivityService) SavedContent(ctx context.Context, userID uint) ([]models.SavedContent, error) {
	var items []models.SavedContent
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteSavedContent removes a saved item, scoped to its owner
func (s *ActivityService) DeleteSavedContent(ctx context.Context, userID, contentID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contentID, userID).
		Delete(&models.SavedContent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
