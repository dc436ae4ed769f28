package models

import (
	"time"

	"gorm.io/gorm"
)

// Note represents a private, slugged document owned by a single user.
// Only the author may see or touch it; the slug is set once at creation
// and preserved on later edits.
type Note struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Content   string         `gorm:"type:text" json:"content" validate:"required"`
	Slug      string         `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=1,max=255"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Note model
func (Note) TableName() string {
	return "notes"
}
