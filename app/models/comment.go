package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reader comment attached to a news article. Anyone can read
// comments, only the author may edit or delete them.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	NewsID    uint           `gorm:"index" json:"news_id"`
	News      News           `gorm:"foreignKey:NewsID" json:"news,omitempty"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string         `gorm:"type:text" json:"content" validate:"required,min=1"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}
