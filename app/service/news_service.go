package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/internal/pkg/access"
	"github.com/notepress/notepress/internal/pkg/listing"
)

// NewsDetail is the full payload of a single news page.
type NewsDetail struct {
	News     models.News
	Comments []models.Comment
	// ShowCommentForm is true only for authenticated actors; anonymous
	// readers see the comments but no form.
	ShowCommentForm bool
}

// NewsService serves the public news pages and the privileged
// publishing path.
type NewsService struct {
	news      repository.NewsRepository
	comments  repository.CommentRepository
	homeLimit int
	validate  *validator.Validate
}

// NewNewsService creates a news service. homeLimit <= 0 uses the
// default page cap.
func NewNewsService(news repository.NewsRepository, comments repository.CommentRepository, homeLimit int) *NewsService {
	if homeLimit <= 0 {
		homeLimit = listing.NewsHomeLimit
	}
	return &NewsService{
		news:      news,
		comments:  comments,
		homeLimit: homeLimit,
		validate:  validator.New(),
	}
}

// Home returns the home page listing: newest first, capped. Readable by
// everyone including anonymous actors.
func (s *NewsService) Home(actor access.Actor) ([]models.News, error) {
	if access.Evaluate(actor, access.NoOwner, access.OpRead) != access.Allow {
		return nil, ErrNotFound
	}
	return s.news.GetHome(s.homeLimit)
}

// Detail returns one article with its comments in chronological order.
func (s *NewsService) Detail(actor access.Actor, newsID uint) (*NewsDetail, error) {
	if access.Evaluate(actor, access.NoOwner, access.OpRead) != access.Allow {
		return nil, ErrNotFound
	}
	news, err := s.news.GetByID(newsID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	comments, err := s.comments.GetByNewsID(news.ID)
	if err != nil {
		return nil, err
	}
	return &NewsDetail{
		News:            *news,
		Comments:        comments,
		ShowCommentForm: actor.IsAuthenticated(),
	}, nil
}

// Publish creates a news article. Publishing is a privileged path: the
// router only exposes it to admins; ownerless afterwards.
func (s *NewsService) Publish(title, content string) (*models.News, error) {
	news := &models.News{Title: title, Content: content}
	if err := s.validate.Struct(news); err != nil {
		return nil, validationError(err)
	}
	if err := s.news.Create(news); err != nil {
		return nil, err
	}
	return news, nil
}

// validationError converts the first validator violation into the
// field-level rejection the form layer re-renders with.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Form field names are lowercase.
		return &ValidationError{
			Field:   strings.ToLower(verrs[0].Field()),
			Message: "invalid value",
		}
	}
	return err
}
