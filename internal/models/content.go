package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedContent is a generated item a user chose to keep from the dashboard
type SavedContent struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Type      string         `gorm:"not null;index" json:"type"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	ImageURL  string         `json:"image_url,omitempty"`
}

// ActivityLog records generation runs for the dashboard's recent activity feed
type ActivityLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ContentType string    `gorm:"not null" json:"content_type"`
	TokenName   string    `json:"token_name"`
	ItemCount   int       `gorm:"not null" json:"item_count"`
	DurationMS  int       `gorm:"not null" json:"duration_ms"`
	RequestID   string    `gorm:"index" json:"request_id"`
}

// Subscriber is a waitlist signup forwarded to the mailing-list provider
type Subscriber struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Source    string         `gorm:"default:'landing'" json:"source"`
}
