package repository

import (
	"errors"

	"github.com/notepress/notepress/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetHome retrieves the newest articles for the home page
func (r *newsRepository) GetHome(limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&news).Error
	return news, err
}

// GetAll retrieves news articles with pagination, newest first
func (r *newsRepository) GetAll(offset, limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).Find(&news).Error
	return news, err
}

// Update updates an existing news article in the database
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete soft deletes a news article by its ID
func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}

// Count returns the total number of news articles
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}

// AddViews applies a batched view-count increment to an article
func (r *newsRepository) AddViews(id uint, delta int64) error {
	return r.db.Model(&models.News{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
