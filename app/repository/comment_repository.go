package repository

import (
	"errors"

	"github.com/notepress/notepress/app/models"
	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByNewsID retrieves the comments of a news article, oldest first
func (r *commentRepository) GetByNewsID(newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("news_id = ?", newsID).
		Order("created_at ASC, id ASC").Find(&comments).Error
	return comments, err
}

// Update updates an existing comment in the database
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete soft deletes a comment by its ID
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// CountByNewsID returns the number of comments on one news article
func (r *commentRepository) CountByNewsID(newsID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("news_id = ?", newsID).Count(&count).Error
	return count, err
}

// Count returns the total number of comments
func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
