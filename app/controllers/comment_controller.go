package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/app/service"
	"github.com/notepress/notepress/internal/pkg/usercontext"
	"github.com/notepress/notepress/internal/pkg/viewmodel"
)

// CommentController handles comment submission, editing and deletion
type CommentController struct {
	comments *service.CommentService
	news     *service.NewsService
}

var commentController *CommentController

// InitializeCommentController wires the comment controller with its services
func InitializeCommentController() {
	repos := repository.GetGlobalRepositories()
	commentController = &CommentController{
		comments: service.NewCommentService(repos.Comment, repos.News, NewModerationFilter()),
		news:     service.NewNewsService(repos.News, repos.Comment, 0),
	}
}

// HandleCommentStore persists a new comment on a news article. A
// moderation rejection re-renders the news page with the submitted
// text and the warning attached to the text field.
func HandleCommentStore(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	newsID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}
	text := c.FormValue("text")

	_, err = commentController.comments.Create(userCtx.Actor(), uint(newsID), text)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return rerenderNewsWithFormError(c, uint(newsID), text, ve.Message)
		}
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Comment posted", fmt.Sprintf("/news/%d", newsID))
}

// rerenderNewsWithFormError shows the news page again with the
// offending input retained, so nothing the user typed is lost.
func rerenderNewsWithFormError(c *fiber.Ctx, newsID uint, text, message string) error {
	userCtx := usercontext.GetUserContext(c)

	detail, err := commentController.news.Detail(userCtx.Actor(), newsID)
	if err != nil {
		return handleServiceError(c, err)
	}

	view := viewmodel.NewsDetailView{
		News:            detail.News,
		Comments:        viewmodel.NewCommentViews(detail.Comments, userCtx.UserID),
		ShowCommentForm: detail.ShowCommentForm,
		FormText:        text,
		FormError:       message,
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("news_show", fiber.Map{
		"Page":          detail.News.Title,
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"IsAdmin":       userCtx.IsAdmin,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Detail":        view,
	}, "layouts/main")
}

// HandleCommentEdit renders the edit form for the author's own comment
func HandleCommentEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}

	comment, err := commentController.comments.GetForEdit(userCtx.Actor(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("comment_edit", fiber.Map{
		"Page":          "Edit comment",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Comment":       comment,
	}, "layouts/main")
}

// HandleCommentUpdate applies an edit to the author's own comment
func HandleCommentUpdate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}
	text := c.FormValue("text")

	comment, err := commentController.comments.Update(userCtx.Actor(), uint(id), text)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).Render("comment_edit", fiber.Map{
				"Page":          "Edit comment",
				"FromProtected": userCtx.IsLoggedIn,
				"Username":      userCtx.Username,
				"FormText":      text,
				"FormError":     ve.Message,
				"Csrf":          csrfToken(c),
				"CommentID":     uint(id),
			}, "layouts/main")
		}
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Comment updated", fmt.Sprintf("/news/%d", comment.NewsID))
}

// HandleCommentDeleteConfirm renders the delete confirmation page
func HandleCommentDeleteConfirm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}

	comment, err := commentController.comments.GetForEdit(userCtx.Actor(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("comment_delete", fiber.Map{
		"Page":          "Delete comment",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Csrf":          csrfToken(c),
		"Comment":       comment,
	}, "layouts/main")
}

// HandleCommentDelete removes the author's own comment
func HandleCommentDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}

	comment, err := commentController.comments.GetForEdit(userCtx.Actor(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}
	if err := commentController.comments.Delete(userCtx.Actor(), uint(id)); err != nil {
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Comment deleted", fmt.Sprintf("/news/%d", comment.NewsID))
}
