package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/app/service"
	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// AdminNewsController handles publishing news articles
type AdminNewsController struct {
	news *service.NewsService
}

var adminNewsController *AdminNewsController

// InitializeAdminNewsController wires the admin news controller
func InitializeAdminNewsController() {
	repos := repository.GetGlobalRepositories()
	adminNewsController = &AdminNewsController{
		news: service.NewNewsService(repos.News, repos.Comment, 0),
	}
}

// HandleAdminNewsCreate renders the publish form
func HandleAdminNewsCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Render("admin_news_form", fiber.Map{
		"Page":          "Publish news",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"IsAdmin":       userCtx.IsAdmin,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
	}, "layouts/main")
}

// HandleAdminNewsStore publishes a news article
func HandleAdminNewsStore(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	title := c.FormValue("title")
	content := c.FormValue("content")

	news, err := adminNewsController.news.Publish(title, content)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).Render("admin_news_form", fiber.Map{
				"Page":          "Publish news",
				"FromProtected": userCtx.IsLoggedIn,
				"Username":      userCtx.Username,
				"IsAdmin":       userCtx.IsAdmin,
				"Title":         title,
				"Content":       content,
				"FormError":     ve.Message,
				"Csrf":          csrfToken(c),
				"FormErrorFor":  ve.Field,
			}, "layouts/main")
		}
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "News published", "/news/"+strconv.FormatUint(uint64(news.ID), 10))
}
