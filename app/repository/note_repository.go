package repository

import (
	"errors"

	"github.com/notepress/notepress/app/models"
	"gorm.io/gorm"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a note; the unique slug index is the last line of
// defense against a generate/commit race.
func (r *noteRepository) Create(note *models.Note) error {
	return translateNoteError(r.db.Create(note).Error)
}

// GetByID retrieves a note by its ID
func (r *noteRepository) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetBySlug retrieves a note by its slug
func (r *noteRepository) GetBySlug(slug string) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("slug = ?", slug).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByUserID retrieves all notes of one user in creation order
func (r *noteRepository) GetByUserID(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&notes).Error
	return notes, err
}

// Slugs returns every slug currently in use
func (r *noteRepository) Slugs() (map[string]struct{}, error) {
	var slugs []string
	if err := r.db.Model(&models.Note{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}
	return set, nil
}

// SlugExists checks if a slug already exists
func (r *noteRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Update updates an existing note in the database
func (r *noteRepository) Update(note *models.Note) error {
	return translateNoteError(r.db.Save(note).Error)
}

// Delete soft deletes a note by its ID
func (r *noteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}

// Count returns the total number of notes
func (r *noteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Count(&count).Error
	return count, err
}

// translateNoteError maps the driver's duplicate-key error onto the
// repository sentinel. Requires TranslateError in the gorm config.
func translateNoteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	return err
}
