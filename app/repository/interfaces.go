package repository

import (
	"github.com/notepress/notepress/app/models"
	"gorm.io/gorm"
)

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	// GetHome returns the newest articles first, capped at limit, with
	// id-descending tiebreak on equal timestamps.
	GetHome(limit int) ([]models.News, error)
	GetAll(offset, limit int) ([]models.News, error)
	Update(news *models.News) error
	Delete(id uint) error
	Count() (int64, error)
	AddViews(id uint, delta int64) error
}

// NoteRepository defines the interface for note-related database operations
type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(id uint) (*models.Note, error)
	GetBySlug(slug string) (*models.Note, error)
	// GetByUserID returns the user's notes in stable creation order.
	GetByUserID(userID uint) ([]models.Note, error)
	// Slugs returns the set of every slug currently in use.
	Slugs() (map[string]struct{}, error)
	SlugExists(slug string) (bool, error)
	Update(note *models.Note) error
	Delete(id uint) error
	Count() (int64, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	// GetByNewsID returns comments oldest first (chronological).
	GetByNewsID(newsID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	CountByNewsID(newsID uint) (int64, error)
	Count() (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	News    NewsRepository
	Note    NoteRepository
	Comment CommentRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Note:    NewNoteRepository(db),
		Comment: NewCommentRepository(db),
	}
}

// NewMemoryRepositories creates in-memory repositories. Tests and the
// database-less dev mode use these; semantics match the SQL versions.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:    NewMemoryUserRepository(),
		News:    NewMemoryNewsRepository(),
		Note:    NewMemoryNoteRepository(),
		Comment: NewMemoryCommentRepository(),
	}
}
