package service

import (
	"errors"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/internal/pkg/access"
	"github.com/notepress/notepress/internal/pkg/moderation"
)

// CommentService handles reader comments on news articles. Creation
// passes the moderation filter before anything is persisted; edits and
// deletes are restricted to the comment's author.
type CommentService struct {
	comments repository.CommentRepository
	news     repository.NewsRepository
	filter   *moderation.Filter
}

// NewCommentService creates a comment service with the injected
// moderation policy.
func NewCommentService(comments repository.CommentRepository, news repository.NewsRepository, filter *moderation.Filter) *CommentService {
	return &CommentService{comments: comments, news: news, filter: filter}
}

// Create adds a comment to an existing news article. Anonymous actors
// are sent to login; rejected text persists nothing.
func (s *CommentService) Create(actor access.Actor, newsID uint, text string) (*models.Comment, error) {
	switch access.Evaluate(actor, access.NoOwner, access.OpCreate) {
	case access.Allow:
	case access.DenyAsAuthRequired:
		return nil, ErrAuthRequired
	default:
		return nil, ErrNotFound
	}

	if _, err := s.news.GetByID(newsID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if text == "" {
		return nil, &ValidationError{Field: "text", Message: "comment text is required"}
	}
	if ok, warning := s.filter.Check(text); !ok {
		return nil, &ValidationError{Field: "text", Message: warning}
	}

	comment := &models.Comment{
		NewsID:  newsID,
		UserID:  actor.UserID,
		Content: text, // accepted text is stored verbatim
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetForEdit loads a comment for the edit form. Only the author gets
// it; everyone else sees not-found.
func (s *CommentService) GetForEdit(actor access.Actor, commentID uint) (*models.Comment, error) {
	return s.getOwned(actor, commentID, access.OpEdit)
}

// Update edits the actor's own comment. The new text passes moderation
// like a fresh submission.
func (s *CommentService) Update(actor access.Actor, commentID uint, text string) (*models.Comment, error) {
	comment, err := s.getOwned(actor, commentID, access.OpEdit)
	if err != nil {
		return nil, err
	}

	if text == "" {
		return nil, &ValidationError{Field: "text", Message: "comment text is required"}
	}
	if ok, warning := s.filter.Check(text); !ok {
		return nil, &ValidationError{Field: "text", Message: warning}
	}

	comment.Content = text
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the actor's own comment.
func (s *CommentService) Delete(actor access.Actor, commentID uint) error {
	comment, err := s.getOwned(actor, commentID, access.OpDelete)
	if err != nil {
		return err
	}
	return s.comments.Delete(comment.ID)
}

func (s *CommentService) getOwned(actor access.Actor, commentID uint, op access.Operation) (*models.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthRequired
	}
	comment, err := s.comments.GetByID(commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	switch access.Evaluate(actor, comment.UserID, op) {
	case access.Allow:
		return comment, nil
	case access.DenyAsAuthRequired:
		return nil, ErrAuthRequired
	default:
		return nil, ErrNotFound
	}
}
