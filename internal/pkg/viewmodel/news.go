package viewmodel

import (
	"time"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/internal/pkg/utils"
)

// CommentView is a comment prepared for rendering: author name, avatar
// and a formatted timestamp.
type CommentView struct {
	ID        uint
	Author    string
	AvatarURL string
	Content   string
	CreatedAt string
	// Editable is true only for the comment's author.
	Editable bool
}

// NewsDetailView is the full payload of a news detail page.
type NewsDetailView struct {
	News            models.News
	Comments        []CommentView
	ShowCommentForm bool
	// FormText and FormError re-render a rejected comment submission.
	FormText  string
	FormError string
}

// NewCommentView builds the render model for one comment.
func NewCommentView(c models.Comment, viewerID uint) CommentView {
	author := c.User.Name
	if author == "" {
		author = "Unknown"
	}
	avatar := c.User.AvatarURL
	if avatar == "" {
		avatar = utils.GetGravatarURL(c.User.Email, 48)
	}
	return CommentView{
		ID:        c.ID,
		Author:    author,
		AvatarURL: avatar,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC822),
		Editable:  viewerID != 0 && viewerID == c.UserID,
	}
}

// NewCommentViews converts a comment listing, keeping its order.
func NewCommentViews(comments []models.Comment, viewerID uint) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentView(c, viewerID))
	}
	return out
}
